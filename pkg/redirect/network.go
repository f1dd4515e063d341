package redirect

import (
	"net/http"
	"regexp"
	"slices"
	"strings"
)

// NetworkConfig describes the network-scoped reference section.
type NetworkConfig struct {
	Networks   []string
	Default    string
	PathPrefix string
	CookieName string
}

// DefaultNetworkConfig returns mainnet/testnet/devnet under /move-reference.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Networks:   []string{"mainnet", "testnet", "devnet"},
		Default:    "mainnet",
		PathPrefix: "/move-reference",
		CookieName: "preferred_network",
	}
}

var langPrefixRegex = regexp.MustCompile(`^/([a-z]{2})(/.*|$)`)

// Network returns the stage that keeps the reference section on the visitor's
// preferred network. A valid network segment that differs from the preference is
// replaced, and the bare section root gets the preferred network appended.
// A two-letter locale prefix is preserved.
func Network(cfg NetworkConfig) Func {
	if cfg.CookieName == "" {
		cfg.CookieName = "preferred_network"
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = "/move-reference"
	}
	cfg.PathPrefix = "/" + strings.Trim(cfg.PathPrefix, "/")

	cookieRegex := regexp.MustCompile(regexp.QuoteMeta(cfg.CookieName) + `=([a-z-]+)`)
	sectionRegex := regexp.MustCompile(`^` + regexp.QuoteMeta(cfg.PathPrefix) + `/([a-z-]+)(/.*|$)`)

	return func(r *http.Request) Response {
		langPrefix, rest := "", r.URL.Path
		if m := langPrefixRegex.FindStringSubmatch(rest); m != nil {
			langPrefix, rest = "/"+m[1], m[2]
		}

		if rest != cfg.PathPrefix && !strings.HasPrefix(rest, cfg.PathPrefix+"/") {
			return nil
		}

		preferred := cfg.Default
		if m := cookieRegex.FindStringSubmatch(r.Header.Get("Cookie")); m != nil && slices.Contains(cfg.Networks, m[1]) {
			preferred = m[1]
		}

		if rest == cfg.PathPrefix || rest == cfg.PathPrefix+"/" {
			return Redirect(AbsoluteURL(r, langPrefix+cfg.PathPrefix+"/"+preferred+"/"), http.StatusFound)
		}

		m := sectionRegex.FindStringSubmatch(rest)
		if m == nil {
			return nil
		}
		network, remaining := m[1], m[2]
		if remaining == "" {
			remaining = "/"
		}
		if !slices.Contains(cfg.Networks, network) || network == preferred {
			return nil
		}

		return Redirect(AbsoluteURL(r, langPrefix+cfg.PathPrefix+"/"+preferred+remaining), http.StatusFound).
			WithHeader("Vary", "Cookie")
	}
}
