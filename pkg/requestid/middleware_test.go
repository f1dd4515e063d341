package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsedge/pkg/requestid"
)

func capture(t *testing.T, mw func(http.Handler) http.Handler, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var seen string
	h := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when missing", func(t *testing.T) {
		t.Parallel()

		id, rec := capture(t, requestid.Middleware(), "")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses valid incoming id", func(t *testing.T) {
		t.Parallel()

		id, rec := capture(t, requestid.Middleware(), "edge-abc_123")
		assert.Equal(t, "edge-abc_123", id)
		assert.Equal(t, "edge-abc_123", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid incoming id", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"has space", "semi;colon", strings.Repeat("a", 129)} {
			id, _ := capture(t, requestid.Middleware(), bad)
			assert.NotEqual(t, bad, id)
			assert.NotEmpty(t, id)
		}
	})

	t.Run("ignores incoming when not trusted", func(t *testing.T) {
		t.Parallel()

		id, _ := capture(t, requestid.Middleware(
			requestid.WithoutIncoming(),
			requestid.WithGenerator(func() string { return "fixed" }),
		), "client-id")
		assert.Equal(t, "fixed", id)
	})

	t.Run("custom header", func(t *testing.T) {
		t.Parallel()

		h := requestid.Middleware(requestid.WithHeader("X-Trace-ID"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-ID", "trace-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "trace-1", rec.Header().Get("X-Trace-ID"))
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
