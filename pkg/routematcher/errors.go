package routematcher

import "errors"

var (
	ErrInvalidPattern        = errors.New("invalid route pattern")
	ErrFailedToReadRoutes    = errors.New("failed to read routes file")
	ErrFailedToParseRoutes   = errors.New("failed to parse routes file")
	ErrFailedToWriteRoutes   = errors.New("failed to write routes file")
	ErrFailedToScanDirectory = errors.New("failed to scan directory")
	ErrLocaleLikeName        = errors.New("route name looks like an unconfigured locale code")
)
