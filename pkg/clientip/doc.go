// Package clientip extracts the visitor address from requests that reach the
// edge through a CDN or reverse proxy.
package clientip
