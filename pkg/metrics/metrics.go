package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/docsedge/pkg/redirect"
)

// Metrics holds the edge collectors on an isolated registry,
// so every App (and every test) gets its own counters.
type Metrics struct {
	Registry *prometheus.Registry

	ChainOutcomesTotal *prometheus.CounterVec

	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	BuildInfo *prometheus.GaugeVec
}

// New registers all collectors. version and service label docsedge_info.
func New(service, version string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		ChainOutcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docsedge_chain_outcomes_total",
				Help: "Requests seen by the redirect chain, by outcome, answering stage and status.",
			},
			[]string{"outcome", "stage", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docsedge_http_requests_total",
				Help: "HTTP requests served, by method and status code.",
			},
			[]string{"method", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docsedge_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method"},
		),
		BuildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "docsedge_info",
				Help: "Build information.",
			},
			[]string{"service", "version"},
		),
	}

	reg.MustRegister(
		m.ChainOutcomesTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.BuildInfo,
	)
	m.BuildInfo.WithLabelValues(service, version).Set(1)

	return m
}

// Observe records a redirect chain outcome. It implements redirect.Observer.
func (m *Metrics) Observe(o redirect.Outcome) {
	status := ""
	if o.Status != 0 {
		status = strconv.Itoa(o.Status)
	}
	m.ChainOutcomesTotal.WithLabelValues(string(o.Kind), o.Stage, status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Middleware counts requests and their latency.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		m.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		m.HTTPRequestDurationSeconds.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
