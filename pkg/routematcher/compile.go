package routematcher

import (
	"fmt"
	"regexp"
	"strings"
)

// Compile turns path matchers into one anchored regexp.
//
//	/build/:path*   -> matches /build, /build/, /build/a/b
//	/blog/:slug     -> matches /blog/x but not /blog/x/y
//	/files:rest*    -> matches /files, /files.zip, /files/a
//
// Every pattern must start with "/". An empty list matches every path.
func Compile(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return regexp.MustCompile(`^.*$`), nil
	}

	parts := make([]string, 0, len(patterns))
	for _, p := range patterns {
		expr, err := patternToRegexp(p)
		if err != nil {
			return nil, err
		}
		parts = append(parts, expr)
	}

	re, err := regexp.Compile(`^(?:` + strings.Join(parts, "|") + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re, nil
}

func patternToRegexp(pattern string) (string, error) {
	if !strings.HasPrefix(pattern, "/") {
		return "", fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, pattern)
	}

	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]

		if c == '/' || c == ':' {
			start := i
			if c == '/' {
				if i+1 >= len(pattern) || pattern[i+1] != ':' {
					b.WriteByte('/')
					i++
					continue
				}
				i++
			}

			end := i + 1
			for end < len(pattern) && isNameByte(pattern[end]) {
				end++
			}
			if end == i+1 {
				// a colon without a name is literal
				b.WriteString(regexp.QuoteMeta(pattern[start : i+1]))
				i++
				continue
			}

			star := end < len(pattern) && pattern[end] == '*'
			switch {
			case star && c == '/':
				b.WriteString(`(?:/.*)?`)
			case star:
				b.WriteString(`.*`)
			default:
				if c == '/' {
					b.WriteByte('/')
				}
				b.WriteString(`[^/]+`)
			}

			i = end
			if star {
				i++
			}
			continue
		}

		if strings.IndexByte(regexpSpecial, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nil
}

const regexpSpecial = `\.+*?()|[]{}^$`

func isNameByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Matcher reports whether a request path is handled by the redirect chain.
type Matcher struct {
	re       *regexp.Regexp
	patterns []string
}

// NewMatcher compiles patterns into a Matcher.
func NewMatcher(patterns []string) (*Matcher, error) {
	re, err := Compile(patterns)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re, patterns: append([]string(nil), patterns...)}, nil
}

// Match reports whether path is covered by any pattern.
func (m *Matcher) Match(path string) bool { return m.re.MatchString(path) }

// MatchString is Match under the name regexp-based matchers use.
func (m *Matcher) MatchString(path string) bool { return m.Match(path) }

// Patterns returns a copy of the source patterns.
func (m *Matcher) Patterns() []string { return append([]string(nil), m.patterns...) }

// String returns the compiled expression.
func (m *Matcher) String() string { return m.re.String() }
