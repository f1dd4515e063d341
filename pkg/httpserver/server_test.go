package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsedge/pkg/httpserver"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestServerRun(t *testing.T) {
	t.Parallel()

	t.Run("serves until context is cancelled", func(t *testing.T) {
		t.Parallel()

		started := make(chan string, 1)
		srv := httpserver.New(
			httpserver.WithListener(listen(t)),
			httpserver.WithShutdownTimeout(time.Second),
			httpserver.WithStartHook(func(addr string) { started <- addr }),
		)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, "hello")
			}))
		}()

		var addr string
		select {
		case addr = <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("server did not start")
		}

		resp, err := http.Get("http://" + addr + "/")
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "hello", string(body))

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("second run is rejected", func(t *testing.T) {
		t.Parallel()

		started := make(chan string, 1)
		srv := httpserver.New(
			httpserver.WithListener(listen(t)),
			httpserver.WithStartHook(func(addr string) { started <- addr }),
		)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx, nil) }()
		<-started

		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
		assert.ErrorIs(t, err, httpserver.ErrStart)

		cancel()
		assert.NoError(t, <-done)
	})

	t.Run("start error on busy address", func(t *testing.T) {
		t.Parallel()

		ln := listen(t)
		defer ln.Close()

		srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
		err := srv.Run(context.Background(), nil)
		assert.True(t, errors.Is(err, httpserver.ErrStart))
	})

	t.Run("shutdown before run is a no-op", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New()
		assert.NoError(t, srv.Shutdown(context.Background()))
	})
}

func TestOptionValidation(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		httpserver.NewFromConfig(httpserver.Config{})
	})
	assert.Panics(t, func() {
		httpserver.WithReadTimeout(0)
	})
	assert.Panics(t, func() {
		httpserver.WithAddr("")
	})
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	t.Run("ok without checks", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.HealthHandler(nil, nil)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()

		checks := map[string]httpserver.HealthFunc{
			"site": func(context.Context) error { return errors.New("missing index") },
			"fine": func(context.Context) error { return nil },
		}
		rec := httptest.NewRecorder()
		httpserver.HealthHandler(nil, checks)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable","failed":{"site":"missing index"}}`, rec.Body.String())
	})
}
