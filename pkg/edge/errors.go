package edge

import "errors"

var (
	ErrLoadLanguages = errors.New("failed to load languages")
	ErrLoadRedirects = errors.New("failed to load redirect rules")
	ErrLoadMatcher   = errors.New("failed to load route matcher")
	ErrInvalidConfig = errors.New("invalid edge configuration")
)
