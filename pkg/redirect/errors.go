package redirect

import "errors"

var (
	// ErrInvalidRule is returned when a redirect rule cannot be served.
	ErrInvalidRule = errors.New("invalid redirect rule")

	ErrFailedToReadRules  = errors.New("failed to read redirects file")
	ErrFailedToParseRules = errors.New("failed to parse redirects file")
)
