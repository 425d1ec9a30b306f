package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no default is configured explicitly.
const DefaultLanguage = "en"

// Translator resolves message keys into localized, parameterized text.
// Catalogs are loaded once through a TranslationAdapter; lookups are
// goroutine-safe afterwards.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
}

// NewTranslator creates a Translator, loading the catalog from the adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, keys := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if keys == nil {
			return nil, fmt.Errorf("%w: nil catalog for language %q", ErrInvalidCatalog, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.languages())
	return t, nil
}

func (t *Translator) languages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages lists the language codes present in the catalog.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.languages()
}

// DefaultLang returns the configured default language.
func (t *Translator) DefaultLang() string {
	return t.defaultLang
}

// lookup traverses a nested catalog using dot-separated key segments, so
// "errors.title-empty" resolves m["errors"]["title-empty"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// HasTranslation reports whether the key resolves for the given language.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// paramRegex matches named placeholders of the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate substitutes %{name} placeholders from key/value argument
// pairs. Unknown placeholders are left untouched; an odd trailing argument
// is ignored.
func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates a key for the given language. Arguments are key/value pairs
// substituted into %{name} placeholders:
//
//	translator.T("en", "title-min", "min", "3")
//
// When the language or key is missing and fallback-to-key is enabled (the
// default), the key itself is interpolated and returned; otherwise the
// empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return t.miss(lang, key, "language not loaded", args)
	}

	val, ok := lookup(langMap, key)
	if !ok {
		return t.miss(lang, key, "translation not found", args)
	}

	switch v := val.(type) {
	case string:
		return interpolate(v, args)
	case fmt.Stringer:
		return interpolate(v.String(), args)
	default:
		return t.miss(lang, key, fmt.Sprintf("translation is %T, not a string", val), args)
	}
}

// Td translates with an explicit default template used when the key is
// missing, instead of falling back to the key itself.
func (t *Translator) Td(lang, key, defaultTmpl string, args ...string) string {
	t.mu.RLock()
	langMap, ok := t.translations[lang]
	var val any
	if ok {
		val, ok = lookup(langMap, key)
	}
	t.mu.RUnlock()

	if ok {
		if s, isStr := val.(string); isStr {
			return interpolate(s, args)
		}
	}
	return interpolate(defaultTmpl, args)
}

func (t *Translator) miss(lang, key, reason string, args []string) string {
	if t.logMissing {
		t.logger.Warn("translation miss", "lang", lang, "key", key, "reason", reason)
	}
	if t.fallbackToKey {
		return interpolate(key, args)
	}
	return ""
}

// Bind returns a view of the translator fixed to one language. An empty
// lang binds the default language.
func (t *Translator) Bind(lang string) *Localized {
	if lang == "" {
		lang = t.defaultLang
	}
	return &Localized{translator: t, lang: lang}
}

// Localized is a language-bound view of a Translator. Its T method has the
// single-language signature downstream consumers (such as the validator's
// Translator interface) expect.
type Localized struct {
	translator *Translator
	lang       string
}

// T translates a key in the bound language.
func (l *Localized) T(key string, args ...string) string {
	return l.translator.T(l.lang, key, args...)
}

// Lang returns the bound language code.
func (l *Localized) Lang() string {
	return l.lang
}
