package redirect

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/docsedge/pkg/i18n"
)

// Rule is a fixed path-to-path redirect. Rules that set ApplyToAllLangs or Langs
// are templates: ExpandRules turns them into one rule per language.
type Rule struct {
	From            string   `yaml:"from"`
	To              string   `yaml:"to"`
	Status          int      `yaml:"status,omitempty"`
	Description     string   `yaml:"description,omitempty"`
	ApplyToAllLangs bool     `yaml:"applyToAllLangs,omitempty"`
	Langs           []string `yaml:"langs,omitempty"`
}

type rulesFile struct {
	Redirects []Rule `yaml:"redirects"`
}

// LoadRules reads redirect rules from a YAML file with a top-level "redirects" list.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadRules, err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrFailedToParseRules, err)
	}

	for i, rule := range f.Redirects {
		if err := rule.validate(); err != nil {
			return nil, fmt.Errorf("redirect #%d: %w", i, err)
		}
	}
	return f.Redirects, nil
}

func (r Rule) validate() error {
	if !strings.HasPrefix(r.From, "/") {
		return fmt.Errorf("%w: from %q must start with /", ErrInvalidRule, r.From)
	}
	if r.To == "" {
		return fmt.Errorf("%w: empty destination for %q", ErrInvalidRule, r.From)
	}
	if _, err := url.Parse(r.To); err != nil {
		return errors.Join(fmt.Errorf("%w: destination %q", ErrInvalidRule, r.To), err)
	}
	switch r.Status {
	case 0, http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
	default:
		return fmt.Errorf("%w: status %d for %q", ErrInvalidRule, r.Status, r.From)
	}
	return nil
}

// ExpandRules resolves language templates and default statuses.
// The default language keeps unprefixed paths; every other language gets
// its code prefixed to both sides. Later rules with the same From win.
func ExpandRules(rules []Rule, langs *i18n.Languages) []Rule {
	out := make([]Rule, 0, len(rules))
	index := make(map[string]int, len(rules))

	add := func(r Rule) {
		if r.Status == 0 {
			r.Status = http.StatusMovedPermanently
		}
		r.ApplyToAllLangs = false
		r.Langs = nil
		if i, ok := index[r.From]; ok {
			out[i] = r
			return
		}
		index[r.From] = len(out)
		out = append(out, r)
	}

	for _, rule := range rules {
		var codes []string
		switch {
		case rule.ApplyToAllLangs:
			codes = langs.Codes()
		case len(rule.Langs) > 0:
			codes = rule.Langs
		default:
			add(rule)
			continue
		}

		for _, code := range codes {
			expanded := rule
			if code != langs.DefaultCode() {
				expanded.From = "/" + code + rule.From
				expanded.To = "/" + code + rule.To
			}
			if rule.Description != "" {
				expanded.Description = fmt.Sprintf("%s (%s)", rule.Description, code)
			}
			add(expanded)
		}
	}

	return out
}

// Froms returns the source paths of expanded rules, for the route matcher.
func Froms(rules []Rule) []string {
	froms := make([]string, len(rules))
	for i, r := range rules {
		froms[i] = r.From
	}
	return froms
}

// Static returns the stage serving expanded redirect rules by exact path match.
// Relative destinations resolve against the request origin; the query string is not carried over.
func Static(rules []Rule) Func {
	type target struct {
		to     *url.URL
		status int
	}
	table := make(map[string]target, len(rules))
	for _, r := range rules {
		to, err := url.Parse(r.To)
		if err != nil {
			continue
		}
		status := r.Status
		if status == 0 {
			status = http.StatusMovedPermanently
		}
		table[r.From] = target{to: to, status: status}
	}

	return func(r *http.Request) Response {
		t, ok := table[r.URL.Path]
		if !ok {
			return nil
		}
		base := AbsoluteURL(r, r.URL.Path)
		base.RawQuery = ""
		return Redirect(base.ResolveReference(t.to), t.status)
	}
}
