package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding
// implementation details. Cancellation errors are separated so callers can
// distinguish timeouts from malformed catalogs.
var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrLoadingCancelled  = errors.New("loading translations cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON translations")
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToReadDir   = errors.New("failed to read translation directory")
	ErrInvalidCatalog    = errors.New("invalid translation catalog structure")
	ErrNoTranslations    = errors.New("no translations found")
)
