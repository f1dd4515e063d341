package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the request/response header carrying the ID.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Option configures the middleware.
type Option func(*config)

type config struct {
	header        string
	trustIncoming bool
	generate      func() string
}

// WithHeader overrides the header name, e.g. when a CDN sets its own trace ID.
func WithHeader(name string) Option {
	return func(c *config) {
		if name != "" {
			c.header = name
		}
	}
}

// WithoutIncoming ignores client-supplied IDs and always generates a new one.
func WithoutIncoming() Option {
	return func(c *config) { c.trustIncoming = false }
}

// WithGenerator replaces the ID generator.
func WithGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.generate = fn
		}
	}
}

// Middleware tags each request with an ID. A valid incoming header value is
// reused; otherwise a time-ordered UUID is generated. The ID is echoed back in
// the response header and stored in the request context.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	c := &config{
		header:        Header,
		trustIncoming: true,
		generate:      newID,
	}
	for _, opt := range opts {
		opt(c)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c.trustIncoming {
				id = r.Header.Get(c.header)
			}
			if !isValid(id) {
				id = c.generate()
			}
			w.Header().Set(c.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func isValid(id string) bool {
	return id != "" && len(id) <= maxIDLength && validID.MatchString(id)
}
