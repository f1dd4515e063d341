package i18n

import "net/http"

// PreferenceExtractor returns a LangExtractor resolving the visitor's preferred
// language (cookie, then Accept-Language, then defaultCode).
func PreferenceExtractor(defaultCode string) LangExtractor {
	return func(r *http.Request) string {
		return ResolvePreference(r, defaultCode)
	}
}

// PathLocaleExtractor returns a LangExtractor reporting the language a request is served in.
// Unknown path prefixes resolve to the default language.
func PathLocaleExtractor(langs *Languages) LangExtractor {
	def := langs.DefaultCode()
	return func(r *http.Request) string {
		current, _ := ExtractPathLocale(r.URL.Path, def)
		if !langs.IsSupported(current) {
			return def
		}
		return current
	}
}
