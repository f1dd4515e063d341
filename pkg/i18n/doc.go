// Package i18n holds the language configuration of the documentation site and the
// request-level helpers that work out which language a visitor wants and which
// language a URL is served in.
//
// # Languages
//
// The supported set is fixed at deploy time. Exactly one language is the default
// one; it is served at unprefixed paths while every other language lives under a
// two-letter prefix ("/ja/build/cli").
//
//	langs, err := i18n.LoadLanguagesFile("config/languages.yaml")
//	if err != nil {
//		log.Fatalf("failed to load languages: %v", err)
//	}
//
// # Preference
//
// ResolvePreference reads the preferred_locale cookie first, then the first entry
// of the Accept-Language header (primary subtag only), then falls back to the
// default code. It never fails and never validates the result: callers check
// membership with Languages.IsSupported.
//
// # Path locale
//
// ExtractPathLocale splits "/ja/build/cli" into ("ja", "/build/cli"). Paths without a
// two-letter prefix are attributed to the default language.
//
// # HTTP Middleware
//
// Middleware stores the served language in the request context so that downstream
// handlers and log records can use it:
//
//	http.Handle("/", i18n.Middleware(i18n.PathLocaleExtractor(langs), langs.DefaultCode())(site))
package i18n
