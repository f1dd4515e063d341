package redirect

import (
	"net/http"

	"github.com/dmitrymomot/docsedge/pkg/i18n"
)

// Decision is the locale routing decision for a single request.
type Decision struct {
	// Current is the language implied by the path prefix (default when unprefixed).
	Current string
	// Candidate is the raw preference signal; it may be unsupported.
	Candidate string
	// Preferred is Candidate when supported, otherwise the default language.
	Preferred string
	// Target is the path to redirect to, empty when the request should be served as is.
	Target string
}

// Decide computes where a request should be served given the visitor's language preference.
//
// An unsupported preference never redirects, and a target equal to the
// current path is dropped so a satisfied request is a fixed point.
func Decide(r *http.Request, langs *i18n.Languages) Decision {
	def := langs.DefaultCode()
	path := r.URL.Path

	current, remainder := i18n.ExtractPathLocale(path, def)
	candidate := i18n.ResolvePreference(r, def)

	d := Decision{
		Current:   current,
		Candidate: candidate,
		Preferred: def,
	}
	if langs.IsSupported(candidate) {
		d.Preferred = candidate
	}

	switch {
	case current == candidate:
	case candidate == def:
		d.Target = remainder
	case langs.IsNonDefault(candidate):
		d.Target = "/" + candidate + remainder
	}

	if d.Target == path {
		d.Target = ""
	}
	return d
}

// Locale returns the stage redirecting visitors to the language they prefer.
// Redirects are 302 because they depend on the visitor, and they are marked
// as varying on the preference signals.
func Locale(langs *i18n.Languages) Func {
	return func(r *http.Request) Response {
		d := Decide(r, langs)
		if d.Target == "" {
			return nil
		}
		return Redirect(AbsoluteURL(r, d.Target), http.StatusFound).
			WithHeader("Vary", VaryPreference).
			WithHeader("Cache-Control", "private, no-store")
	}
}
