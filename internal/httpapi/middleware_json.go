package httpapi

import (
	"io"
	"net/http"
	"time"

	"task-manager/internal/observability/jsonlog"
)

func LoggingJSON(logger *jsonlog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = jsonlog.New(io.Discard)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Info("http_request", map[string]any{
				"rid":    RequestIDFromContext(r.Context()),
				"method": r.Method,
				"path":   r.URL.Path,
				"status": sw.status,
				"dur_ms": time.Since(start).Milliseconds(),
				"ua":     r.UserAgent(),
			})
		})
	}
}
