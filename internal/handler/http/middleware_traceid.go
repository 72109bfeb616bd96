package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// headerTraceID carries the request trace ID in both directions: an inbound
// value is honored so callers can correlate across services, and the final
// value is echoed back on the response.
const headerTraceID = "X-Trace-ID"

// withTraceID tags every request with a trace ID and attaches a
// request-scoped logger carrying it, recoverable downstream via
// [logger.FromRequest].
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerTraceID)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		child := h.logger.GetChildLogger()
		child.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(headerTraceID, traceID)
		next.ServeHTTP(w, r.WithContext(child.WithContext(r.Context())))
	})
}
