package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/i18n"
)

func newTestTranslator(t *testing.T, options ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"greeting":  "Hello, %{name}!",
			"title-min": "title must be at least %{min} characters",
			"errors": map[string]any{
				"title-empty": "title is required",
			},
		},
		"de": {
			"greeting": "Hallo, %{name}!",
		},
	}}

	translator, err := i18n.NewTranslator(context.Background(), adapter, options...)
	require.NoError(t, err)
	return translator
}

func TestNewTranslator(t *testing.T) {
	t.Run("rejects nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("lists supported languages sorted", func(t *testing.T) {
		translator := newTestTranslator(t)
		assert.Equal(t, []string{"de", "en"}, translator.SupportedLanguages())
	})

	t.Run("rejects empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
			"": {"key": "value"},
		}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})
}

func TestT(t *testing.T) {
	translator := newTestTranslator(t)

	t.Run("substitutes named placeholders", func(t *testing.T) {
		assert.Equal(t, "Hello, John!", translator.T("en", "greeting", "name", "John"))
		assert.Equal(t, "Hallo, John!", translator.T("de", "greeting", "name", "John"))
	})

	t.Run("resolves nested dot keys", func(t *testing.T) {
		assert.Equal(t, "title is required", translator.T("en", "errors.title-empty"))
	})

	t.Run("keeps unknown placeholders in place", func(t *testing.T) {
		assert.Equal(t, "Hello, %{name}!", translator.T("en", "greeting"))
	})

	t.Run("falls back to key for missing translation", func(t *testing.T) {
		assert.Equal(t, "title-invalid", translator.T("en", "title-invalid"))
	})

	t.Run("falls back to key for unknown language", func(t *testing.T) {
		assert.Equal(t, "greeting", translator.T("fr", "greeting", "name", "John"))
	})

	t.Run("returns empty string when fallback disabled", func(t *testing.T) {
		strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Equal(t, "", strict.T("en", "missing-key"))
	})
}

func TestTd(t *testing.T) {
	translator := newTestTranslator(t)

	t.Run("uses translation when present", func(t *testing.T) {
		got := translator.Td("en", "greeting", "Hi, %{name}", "name", "John")
		assert.Equal(t, "Hello, John!", got)
	})

	t.Run("uses default template when missing", func(t *testing.T) {
		got := translator.Td("en", "nope", "Hi, %{name}", "name", "John")
		assert.Equal(t, "Hi, John", got)
	})
}

func TestHasTranslation(t *testing.T) {
	translator := newTestTranslator(t)

	assert.True(t, translator.HasTranslation("en", "greeting"))
	assert.True(t, translator.HasTranslation("en", "errors.title-empty"))
	assert.False(t, translator.HasTranslation("en", "missing"))
	assert.False(t, translator.HasTranslation("fr", "greeting"))
}

func TestBind(t *testing.T) {
	translator := newTestTranslator(t, i18n.WithDefaultLanguage("de"))

	t.Run("binds the given language", func(t *testing.T) {
		loc := translator.Bind("en")
		assert.Equal(t, "en", loc.Lang())
		assert.Equal(t, "Hello, Ada!", loc.T("greeting", "name", "Ada"))
	})

	t.Run("empty language binds the default", func(t *testing.T) {
		loc := translator.Bind("")
		assert.Equal(t, "de", loc.Lang())
		assert.Equal(t, "Hallo, Ada!", loc.T("greeting", "name", "Ada"))
	})
}
