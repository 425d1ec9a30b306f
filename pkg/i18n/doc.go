// Package i18n resolves message keys into localized, parameterized text.
// It is the message backend for the validator package but carries no
// dependency on it: any code that renders keyed messages can use it.
//
// # Architecture
//
// The Translator type holds a nested catalog keyed by language code and
// delegates loading to a TranslationAdapter. Ready-made adapters cover an
// in-memory map (MapAdapter, handy for tests), a single file (FileAdapter),
// and a directory of catalog files (DirectoryAdapter); file-based adapters
// parse JSON and YAML through the Parser interface. Catalogs are loaded
// once at construction; lookups afterwards are goroutine-safe.
//
// Templates use named placeholders in the form %{name}:
//
//	"title-min": "%{field} must be at least %{min} characters"
//
// # Usage
//
//	adapter := i18n.NewFileAdapter(i18n.NewYAMLParser(), "./translations.yml")
//	translator, err := i18n.NewTranslator(ctx, adapter,
//	    i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//	    // handle error
//	}
//
//	msg := translator.T("en", "title-min", "min", "3")
//
// Bind fixes the language once so downstream code works with the simpler
// single-language signature:
//
//	loc := translator.Bind("de")
//	msg := loc.T("title-min", "min", "3")
//
// When a key or language is missing, the translator falls back to the key
// itself (configurable via WithFallbackToKey), so unlocalized deployments
// still produce stable, testable message identifiers.
package i18n
