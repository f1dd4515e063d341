package routematcher

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Routes is the generated allowlist.
type Routes struct {
	Patterns    []string  `yaml:"patterns"`
	Pattern     string    `yaml:"pattern"`
	GeneratedAt time.Time `yaml:"generated_at"`

	// Warnings collected during generation. Not persisted.
	Warnings []string `yaml:"-"`
}

// Matcher compiles the route patterns.
func (r Routes) Matcher() (*Matcher, error) {
	return NewMatcher(r.Patterns)
}

const fileHeader = "# Generated by matchergen. Do not edit by hand.\n"

// WriteFile stores routes as YAML, creating parent directories.
func WriteFile(path string, routes Routes) error {
	data, err := yaml.Marshal(routes)
	if err != nil {
		return errors.Join(ErrFailedToWriteRoutes, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Join(ErrFailedToWriteRoutes, err)
		}
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0o644); err != nil {
		return errors.Join(ErrFailedToWriteRoutes, err)
	}
	return nil
}

// ReadFile loads routes written by WriteFile and validates the patterns.
func ReadFile(path string) (Routes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Routes{}, errors.Join(ErrFailedToReadRoutes, err)
	}

	var routes Routes
	if err := yaml.Unmarshal(data, &routes); err != nil {
		return Routes{}, errors.Join(ErrFailedToParseRoutes, err)
	}
	if _, err := Compile(routes.Patterns); err != nil {
		return Routes{}, errors.Join(ErrFailedToParseRoutes, err)
	}
	return routes, nil
}
