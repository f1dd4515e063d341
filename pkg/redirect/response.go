package redirect

import (
	"net/http"
	"net/url"
	"strings"
)

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// StatusCoder is implemented by responses that know their status code up front.
type StatusCoder interface {
	StatusCode() int
}

// RedirectResponse is an HTTP redirect to Location.
type RedirectResponse struct {
	Location string
	Code     int
	Header   http.Header
}

// Redirect creates a redirect response to target with the given status code.
func Redirect(target *url.URL, code int) *RedirectResponse {
	return &RedirectResponse{
		Location: target.String(),
		Code:     code,
		Header:   http.Header{},
	}
}

// WithHeader adds a header written alongside the redirect.
func (r *RedirectResponse) WithHeader(key, value string) *RedirectResponse {
	r.Header.Add(key, value)
	return r
}

// Render writes the extra headers and performs the redirect.
func (r *RedirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	for key, values := range r.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	http.Redirect(w, req, r.Location, r.Code)
	return nil
}

// StatusCode returns the redirect status.
func (r *RedirectResponse) StatusCode() int {
	return r.Code
}

// TextResponse is a short plain-text answer, used to reject malformed requests.
type TextResponse struct {
	Code int
	Body string
}

// Text creates a plain-text response.
func Text(code int, body string) *TextResponse {
	return &TextResponse{Code: code, Body: body}
}

// Render writes the status and body.
func (t *TextResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(t.Code)
	_, err := w.Write([]byte(t.Body))
	return err
}

// StatusCode returns the response status.
func (t *TextResponse) StatusCode() int {
	return t.Code
}

// AbsoluteURL returns the request URL on the same origin with its path replaced.
// The query string is kept; the fragment and any raw path encoding are dropped.
func AbsoluteURL(r *http.Request, path string) *url.URL {
	u := *r.URL
	u.User = nil
	u.Opaque = ""
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = path
	u.RawPath = ""

	if r.Host != "" {
		u.Host = r.Host
		u.Scheme = requestScheme(r)
	}

	return &u
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	proto, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Proto"), ",")
	switch strings.ToLower(strings.TrimSpace(proto)) {
	case "https":
		return "https"
	case "http":
		return "http"
	}
	if r.URL.Scheme != "" {
		return r.URL.Scheme
	}
	return "http"
}
