package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsedge/pkg/metrics"
	"github.com/dmitrymomot/docsedge/pkg/redirect"
)

func TestObserve(t *testing.T) {
	t.Parallel()

	m := metrics.New("docsedge", "test")
	var obs redirect.Observer = m

	obs.Observe(redirect.Outcome{Kind: redirect.OutcomeResponded, Stage: "locale", Status: http.StatusFound})
	obs.Observe(redirect.Outcome{Kind: redirect.OutcomeResponded, Stage: "locale", Status: http.StatusFound})
	obs.Observe(redirect.Outcome{Kind: redirect.OutcomePassed})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChainOutcomesTotal.WithLabelValues("responded", "locale", "302")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChainOutcomesTotal.WithLabelValues("passed", "", "")))
}

func TestIsolation(t *testing.T) {
	t.Parallel()

	m1 := metrics.New("docsedge", "1")
	m2 := metrics.New("docsedge", "2")

	m1.Observe(redirect.Outcome{Kind: redirect.OutcomeBypassed})

	assert.Equal(t, 1.0, testutil.ToFloat64(m1.ChainOutcomesTotal.WithLabelValues("bypassed", "", "")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m2.ChainOutcomesTotal.WithLabelValues("bypassed", "", "")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	t.Parallel()

	m := metrics.New("docsedge", "test")
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "418")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "docsedge_http_requests_total")
	assert.Contains(t, string(body), `docsedge_info{service="docsedge",version="test"} 1`)
}
