package edge

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/dmitrymomot/docsedge/pkg/i18n"
)

// staticSite serves the built site. Unknown paths get the localized 404 page
// (<locale>/404.html, then 404.html) instead of a directory listing.
// HTML responses are labelled with the served locale in Content-Language.
func staticSite(fsys fs.FS, langs *i18n.Languages) http.Handler {
	files := http.FileServerFS(fsys)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, ok := resolve(fsys, r.URL.Path)
		if !ok {
			notFound(w, r, fsys, langs)
			return
		}
		if path.Ext(name) == ".html" {
			setContentLanguage(w, r, langs)
		}
		files.ServeHTTP(w, r)
	})
}

// resolve maps a URL path to the file that would be served, following
// directories to their index.html.
func resolve(fsys fs.FS, urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(fsys, name)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		index := path.Join(name, "index.html")
		if _, err := fs.Stat(fsys, index); err != nil {
			return "", false
		}
		return index, true
	}
	return name, true
}

func setContentLanguage(w http.ResponseWriter, r *http.Request, langs *i18n.Languages) {
	if lang, ok := langs.Get(i18n.GetLocale(r.Context())); ok {
		w.Header().Set("Content-Language", lang.Code)
	}
}

func notFound(w http.ResponseWriter, r *http.Request, fsys fs.FS, langs *i18n.Languages) {
	candidates := []string{"404.html"}
	locale := i18n.GetLocale(r.Context())
	if langs.IsNonDefault(locale) {
		candidates = append([]string{locale + "/404.html"}, candidates...)
	}

	for _, name := range candidates {
		page, err := fs.ReadFile(fsys, name)
		if err != nil {
			continue
		}
		if name == "404.html" {
			w.Header().Set("Content-Language", langs.DefaultCode())
		} else {
			setContentLanguage(w, r, langs)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(page)
		return
	}

	http.NotFound(w, r)
}
