// Package metrics exposes Prometheus collectors for the docs edge:
// redirect chain outcomes, request counts and latency.
package metrics
