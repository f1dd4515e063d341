package i18n

import (
	"net/http"
)

// Middleware returns an HTTP middleware that determines the language a request is
// served in and stores it in the request context.
//
// If extr is nil, PreferenceExtractor(fallback) is used. If the extractor returns an
// empty string, fallback is stored instead; an empty fallback means DefaultLanguage.
//
// The stored language can be retrieved with GetLocale.
func Middleware(extr LangExtractor, fallback string) func(http.Handler) http.Handler {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	if extr == nil {
		extr = PreferenceExtractor(fallback)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = fallback
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
