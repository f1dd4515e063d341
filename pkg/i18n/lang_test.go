package i18n_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/docsedge/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestCookiePreference(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "empty header", header: "", expected: ""},
		{name: "single cookie", header: "preferred_locale=ja", expected: "ja"},
		{name: "among other cookies", header: "theme=dark; preferred_locale=zh; _ga=GA1", expected: "zh"},
		{name: "region value kept", header: "preferred_locale=pt-br", expected: "pt-br"},
		{name: "upper case is not a match", header: "preferred_locale=JA", expected: ""},
		{name: "empty value", header: "preferred_locale=", expected: ""},
		{name: "other cookie only", header: "lang=ja", expected: ""},
		{name: "stops at first invalid char", header: "preferred_locale=ja_JP", expected: "ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.CookiePreference(tt.header))
		})
	}
}

func TestAcceptLanguagePrimary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "empty", header: "", expected: ""},
		{name: "plain", header: "ja", expected: "ja"},
		{name: "region stripped", header: "fr-FR,en;q=0.8", expected: "fr"},
		{name: "quality stripped", header: "zh;q=0.9,en;q=0.8", expected: "zh"},
		{name: "only first entry is used", header: "en;q=0.1,ja;q=0.9", expected: "en"},
		{name: "case folded", header: "EN-us", expected: "en"},
		{name: "whitespace trimmed", header: "  ko-KR , en", expected: "ko"},
		{name: "wildcard", header: "*", expected: "*"},
		{name: "leading comma", header: ",en", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.AcceptLanguagePrimary(tt.header))
		})
	}

	t.Run("oversized header", func(t *testing.T) {
		t.Parallel()
		header := "de" + strings.Repeat("x", 10000)
		assert.Len(t, i18n.AcceptLanguagePrimary(header), 4096)
	})
}

func TestResolvePreference(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cookie   string
		accept   string
		expected string
	}{
		{name: "cookie wins over header", cookie: "preferred_locale=ja", accept: "zh-CN", expected: "ja"},
		{name: "header when no cookie", accept: "zh-CN,en;q=0.5", expected: "zh"},
		{name: "malformed cookie falls through to header", cookie: "preferred_locale=JA", accept: "ko", expected: "ko"},
		{name: "unsupported values are not filtered", accept: "fr-FR,en;q=0.8", expected: "fr"},
		{name: "default when no signal", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/build/cli", nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", tt.cookie)
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.expected, i18n.ResolvePreference(req, "en"))
		})
	}
}

func TestExtractPathLocale(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path      string
		current   string
		remainder string
	}{
		{path: "/", current: "en", remainder: "/"},
		{path: "/ja", current: "ja", remainder: "/"},
		{path: "/ja/", current: "ja", remainder: "/"},
		{path: "/ja/build/cli", current: "ja", remainder: "/build/cli"},
		{path: "/build/cli", current: "en", remainder: "/build/cli"},
		{path: "/jab/cli", current: "en", remainder: "/jab/cli"},
		{path: "/pt-br/cli", current: "en", remainder: "/pt-br/cli"},
		{path: "/JA/cli", current: "en", remainder: "/JA/cli"},
		{path: "/xx/cli", current: "xx", remainder: "/cli"},
		{path: "", current: "en", remainder: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			current, remainder := i18n.ExtractPathLocale(tt.path, "en")
			assert.Equal(t, tt.current, current)
			assert.Equal(t, tt.remainder, remainder)
		})
	}
}
