package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Stage records the middleware stage name under "stage".
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}

// Path records a request path under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Method records the HTTP method under "method".
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Status records an HTTP status code under "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Location records a redirect target under "location".
func Location(u string) slog.Attr {
	return slog.String("location", u)
}

// Locale records a language code under "locale".
func Locale(code string) slog.Attr {
	return slog.String("locale", code)
}

// Duration records an elapsed time under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Count records a number of items under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
