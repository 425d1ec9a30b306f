package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/i18n"
)

func TestJSONParser(t *testing.T) {
	parser := i18n.NewJSONParser()

	t.Run("parses nested catalog", func(t *testing.T) {
		got, err := parser.Parse(context.Background(), `{"en":{"errors":{"title-empty":"title is required"}}}`)
		require.NoError(t, err)

		nested, ok := got["en"]["errors"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "title is required", nested["title-empty"])
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), `{"en":`)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("rejects non-object language value", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), `{"en":"flat"}`)
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("supports json extension only", func(t *testing.T) {
		assert.True(t, parser.SupportsFileExtension("json"))
		assert.True(t, parser.SupportsFileExtension(".JSON"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestYAMLParser(t *testing.T) {
	parser := i18n.NewYAMLParser()

	t.Run("parses nested catalog", func(t *testing.T) {
		content := "en:\n  errors:\n    title-empty: title is required\n"
		got, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)

		nested, ok := got["en"]["errors"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "title is required", nested["title-empty"])
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), "en:\n\tbad: indent")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects scalar language value", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), "en: flat\n")
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("supports yaml and yml extensions", func(t *testing.T) {
		assert.True(t, parser.SupportsFileExtension("yaml"))
		assert.True(t, parser.SupportsFileExtension(".yml"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestParserForFile(t *testing.T) {
	assert.IsType(t, &i18n.JSONParser{}, i18n.ParserForFile("catalog.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.ParserForFile("catalog.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.ParserForFile("catalog.yml"))
	assert.Nil(t, i18n.ParserForFile("catalog.toml"))
	assert.Nil(t, i18n.ParserForFile("noext"))
}
