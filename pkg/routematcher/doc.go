// Package routematcher builds the allowlist of paths the redirect chain
// handles. Anything outside it (assets, search index, API endpoints) is served
// without redirects.
//
// Patterns use the path-matcher syntax of edge middleware configs:
// a literal path, ":name" for one segment and ":name*" for the rest of the
// path. Generate discovers patterns from the site sources and WriteFile /
// ReadFile persist them between build and serve.
package routematcher
