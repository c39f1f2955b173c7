package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("translation adapter is nil")
	ErrNilParser  = errors.New("translation parser is nil")

	ErrParsingCancelled   = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrInvalidTranslation = errors.New("invalid translation structure")

	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrFailedToReadDir    = errors.New("failed to read translation directory")
	ErrNoTranslationFiles = errors.New("no translation files found")
)
