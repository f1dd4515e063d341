package i18n

import "errors"

// Configuration errors. The request path never returns errors; only loading
// and validating the language set can fail.
var (
	ErrNoLanguages              = errors.New("no languages configured")
	ErrNoDefaultLanguage        = errors.New("no language is marked as default")
	ErrMultipleDefaultLanguages = errors.New("more than one language is marked as default")
	ErrDuplicateLanguage        = errors.New("duplicate language code")
	ErrInvalidLanguageCode      = errors.New("invalid language code")

	ErrFailedToReadLanguages  = errors.New("failed to read languages file")
	ErrFailedToParseLanguages = errors.New("failed to parse languages file")
)
