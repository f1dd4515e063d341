package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/docsedge/pkg/logger"
)

// HealthFunc reports whether a dependency is ready.
type HealthFunc func(ctx context.Context) error

// HealthHandler answers liveness probes. With checks it also reports readiness:
// any failing check turns the response into 503 with the failed check names.
func HealthHandler(log *slog.Logger, checks map[string]HealthFunc) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		failed := make(map[string]string)
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				failed[name] = err.Error()
				log.WarnContext(ctx, "health check failed", logger.Component(name), logger.Error(err))
			}
		}

		body := map[string]any{"status": "ok"}
		if len(failed) > 0 {
			body["status"] = "unavailable"
			body["failed"] = failed
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
