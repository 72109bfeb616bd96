package http

import (
	"net/http"
	"time"

	"github.com/thingfulapp/thingful-server/internal/logger"
)

// withLogging emits one access-log entry per request with the method, URI,
// response status, body size, and handling duration. It runs after
// withTraceID so every entry carries the trace ID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		rec := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rec.status).
			Int("size", rec.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
