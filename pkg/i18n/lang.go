package i18n

import (
	"net/http"
	"regexp"
	"strings"
)

// PreferenceCookie is the cookie the language switcher writes.
const PreferenceCookie = "preferred_locale"

// maxAcceptLanguageLength bounds the header slice we look at.
// Only the first entry is used, so anything longer is noise.
const maxAcceptLanguageLength = 4096

var (
	preferenceCookieRegex = regexp.MustCompile(PreferenceCookie + `=([a-z-]+)`)
	pathLocaleRegex       = regexp.MustCompile(`^/([a-z]{2})(/.*|$)`)
)

// CookiePreference returns the locale stored in the preferred_locale cookie.
// The raw Cookie header is matched as-is; values outside [a-z-] are treated as absent.
func CookiePreference(cookieHeader string) string {
	m := preferenceCookieRegex.FindStringSubmatch(cookieHeader)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// AcceptLanguagePrimary returns the primary subtag of the first Accept-Language entry,
// e.g. "fr-FR,en;q=0.8" -> "fr". Quality values are not considered.
func AcceptLanguagePrimary(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	lang, _, _ := strings.Cut(header, ",")
	lang, _, _ = strings.Cut(lang, ";")
	lang, _, _ = strings.Cut(lang, "-")

	return strings.ToLower(strings.TrimSpace(lang))
}

// ResolvePreference determines the language a request asks for.
// Precedence: preferred_locale cookie, first Accept-Language entry, defaultCode.
// The result is not checked against the supported set.
func ResolvePreference(r *http.Request, defaultCode string) string {
	if lang := CookiePreference(r.Header.Get("Cookie")); lang != "" {
		return lang
	}
	if lang := AcceptLanguagePrimary(r.Header.Get("Accept-Language")); lang != "" {
		return lang
	}
	return defaultCode
}

// ExtractPathLocale splits a path into its two-letter locale prefix and the remainder.
//
//	/ja/build/cli -> ("ja", "/build/cli")
//	/ja           -> ("ja", "/")
//	/build/cli    -> (defaultCode, "/build/cli")
func ExtractPathLocale(path, defaultCode string) (current, remainder string) {
	m := pathLocaleRegex.FindStringSubmatch(path)
	if m == nil {
		return defaultCode, path
	}
	if m[2] == "" {
		return m[1], "/"
	}
	return m[1], m[2]
}
