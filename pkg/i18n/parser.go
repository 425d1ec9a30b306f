package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser turns raw catalog content into the nested translation structure.
// The outer map is keyed by language code, the inner map holds translation
// keys whose values are either strings or nested maps.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles files with the
	// given extension. The extension may carry a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser matching the file's extension, or nil when
// the format is not supported.
func ParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
