package routematcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/docsedge/pkg/i18n"
)

// APIReferencePattern is added when GenerateOptions.APIReference is set.
const APIReferencePattern = "/api-reference/:path*"

var localeLikeName = regexp.MustCompile(`^[a-z]{2}$`)

// GenerateOptions describes where routes are discovered.
type GenerateOptions struct {
	// ContentDir holds one directory per documentation section.
	ContentDir string
	// PagesDir holds standalone pages (.astro or .html files) and page directories.
	PagesDir string
	// Languages decides which directories are locale trees and which prefixes to add.
	Languages *i18n.Languages
	// APIReference adds /api-reference/:path*.
	APIReference bool
	// Manual patterns are added as-is and localized like discovered ones.
	Manual []string
	// RedirectFroms are expanded redirect sources. They already carry their
	// locale prefix, so they are appended without localization.
	RedirectFroms []string
	// Exclude lists directory and page names to skip, e.g. search index folders.
	Exclude []string
	// Now stamps GeneratedAt. Defaults to time.Now.
	Now func() time.Time
}

// Generate discovers the routes the redirect chain must see. The default
// language prefix is always included so prefixed links can be canonicalized.
// Missing directories are reported in Routes.Warnings. A section or page named
// like a locale code that is not configured fails with ErrLocaleLikeName: its
// first path segment would be read as a locale prefix.
func Generate(opts GenerateOptions) (Routes, error) {
	if opts.Languages == nil {
		opts.Languages = i18n.DefaultLanguages()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var warnings []string
	skip := func(name string) bool {
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			return true
		}
		return opts.Languages.IsNonDefault(name) || slices.Contains(opts.Exclude, name)
	}
	checkName := func(dir, name string) error {
		if localeLikeName.MatchString(name) && !opts.Languages.IsSupported(name) {
			return fmt.Errorf("%w: %q in %s", ErrLocaleLikeName, name, dir)
		}
		return nil
	}

	content := []string{"/"}

	if opts.ContentDir != "" {
		entries, err := readDir(opts.ContentDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			warnings = append(warnings, fmt.Sprintf("content directory %s does not exist", opts.ContentDir))
		case err != nil:
			return Routes{}, err
		}
		for _, e := range entries {
			if !e.IsDir() || skip(e.Name()) {
				continue
			}
			if err := checkName(opts.ContentDir, e.Name()); err != nil {
				return Routes{}, err
			}
			content = append(content, "/"+e.Name()+"/:path*")
		}
	}

	if opts.PagesDir != "" {
		entries, err := readDir(opts.PagesDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			warnings = append(warnings, fmt.Sprintf("pages directory %s does not exist", opts.PagesDir))
		case err != nil:
			return Routes{}, err
		}
		var files, dirs []string
		for _, e := range entries {
			name := e.Name()
			if skip(name) {
				continue
			}
			if e.IsDir() {
				if err := checkName(opts.PagesDir, name); err != nil {
					return Routes{}, err
				}
				dirs = append(dirs, "/"+name+"/:path*")
				continue
			}
			ext := filepath.Ext(name)
			if ext != ".astro" && ext != ".html" {
				continue
			}
			page := strings.TrimSuffix(name, ext)
			if page == "index" || skip(page) || strings.HasPrefix(page, "[") {
				continue
			}
			if err := checkName(opts.PagesDir, page); err != nil {
				return Routes{}, err
			}
			files = append(files, "/"+page)
		}
		content = append(content, files...)
		content = append(content, dirs...)
	}

	if opts.APIReference {
		content = append(content, APIReferencePattern)
	}
	content = append(content, opts.Manual...)

	patterns := slices.Clone(content)
	for _, code := range opts.Languages.NonDefaultCodes() {
		patterns = append(patterns, "/"+code, "/"+code+"/")
		for _, p := range content {
			if p != "/" {
				patterns = append(patterns, "/"+code+p)
			}
		}
	}
	def := opts.Languages.DefaultCode()
	patterns = append(patterns, "/"+def, "/"+def+"/:path*")
	patterns = append(patterns, opts.RedirectFroms...)
	patterns = dedupe(patterns)

	re, err := Compile(patterns)
	if err != nil {
		return Routes{}, err
	}

	return Routes{
		Patterns:    patterns,
		Pattern:     re.String(),
		GeneratedAt: opts.Now().UTC(),
		Warnings:    warnings,
	}, nil
}

func readDir(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, errors.Join(ErrFailedToScanDirectory, err)
	}
	return entries, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
