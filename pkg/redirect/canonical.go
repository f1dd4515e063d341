package redirect

import (
	"net/http"
	"regexp"

	"github.com/dmitrymomot/docsedge/pkg/i18n"
)

// CanonicalDefault returns the stage that removes the default language prefix:
// /en/sample-page -> /sample-page and /en -> /. The redirect is permanent
// since the default language is always served unprefixed.
func CanonicalDefault(langs *i18n.Languages) Func {
	prefix := regexp.MustCompile(`^/` + regexp.QuoteMeta(langs.DefaultCode()) + `(/.*|$)`)

	return func(r *http.Request) Response {
		m := prefix.FindStringSubmatch(r.URL.Path)
		if m == nil {
			return nil
		}
		rest := m[1]
		if rest == "" {
			rest = "/"
		}
		return Redirect(AbsoluteURL(r, rest), http.StatusMovedPermanently)
	}
}
