package redirect

import (
	"net/http"
	"net/url"
	"strings"
)

// MarkdownConfig locates the raw sources of documentation pages.
type MarkdownConfig struct {
	RawBaseURL string `env:"RAW_BASE_URL" envDefault:"https://raw.githubusercontent.com"`
	Repo       string `env:"GITHUB_REPO" envDefault:"aptos-labs/aptos-docs"`
	Branch     string `env:"GITHUB_BRANCH" envDefault:"main"`
	DocsPrefix string `env:"DOCS_PATH_PREFIX" envDefault:"/src/content/docs"`
	Extension  string `env:"DOCS_SOURCE_EXT" envDefault:".mdx"`
}

// DefaultMarkdownConfig returns the configuration of the upstream docs repository.
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		RawBaseURL: "https://raw.githubusercontent.com",
		Repo:       "aptos-labs/aptos-docs",
		Branch:     "main",
		DocsPrefix: "/src/content/docs",
		Extension:  ".mdx",
	}
}

// SourceURL returns the raw source URL for a normalized page path such as "/build/cli".
func (c MarkdownConfig) SourceURL(pagePath string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(c.RawBaseURL, "/"))
	if err != nil {
		return nil, err
	}
	u.Path += "/" + strings.Trim(c.Repo, "/") + "/" + c.Branch + c.DocsPrefix + pagePath + c.Extension
	u.RawPath = ""
	return u, nil
}

// Markdown returns the stage that sends "<page>.md" requests to the raw page source,
// e.g. /build/cli.md -> {raw}/{repo}/{branch}/src/content/docs/build/cli.mdx.
// Traversal attempts are rejected with 400.
func Markdown(cfg MarkdownConfig) Func {
	return func(r *http.Request) Response {
		path := r.URL.Path
		if !strings.HasSuffix(path, ".md") {
			return nil
		}

		base := strings.TrimSuffix(path, ".md")
		if base == "" || base == "/" {
			return nil
		}

		normalized, ok := normalizePagePath(base, r.URL.RawPath)
		if !ok {
			return Text(http.StatusBadRequest, "Invalid path")
		}

		target, err := cfg.SourceURL(normalized)
		if err != nil {
			return nil
		}
		return Redirect(target, http.StatusFound)
	}
}

// normalizePagePath drops empty and "." segments. Any ".." segment or
// encoded dot rejects the whole path.
func normalizePagePath(path, rawPath string) (string, bool) {
	if strings.Contains(strings.ToLower(rawPath), "%2e") || strings.Contains(strings.ToLower(path), "%2e") {
		return "", false
	}

	segments := strings.Split(path, "/")
	resolved := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
		case "..":
			return "", false
		default:
			resolved = append(resolved, seg)
		}
	}

	return "/" + strings.Join(resolved, "/"), true
}
