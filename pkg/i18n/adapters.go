package i18n

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TranslationAdapter loads the translation catalog from some source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map. It is the adapter of
// choice for tests and for catalogs compiled into the binary.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation catalog file through a Parser.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: file %q is empty", ErrNoTranslations, a.path)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, err
	}
	return translations, nil
}

// DirectoryAdapter loads every supported catalog file from a directory,
// merging languages across files. Per-language keys from later files win
// over earlier ones; directory order follows os.ReadDir (lexical).
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter returns nil if parser is nil or path is empty.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface.
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := os.ReadDir(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	merged := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		content, err := os.ReadFile(filepath.Join(a.path, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := a.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", entry.Name(), err)
		}

		for lang, keys := range translations {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any, len(keys))
			}
			for k, v := range keys {
				merged[lang][k] = v
			}
		}
	}

	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: directory %q has no supported catalog files", ErrNoTranslations, a.path)
	}
	return merged, nil
}
