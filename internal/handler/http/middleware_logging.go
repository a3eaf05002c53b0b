package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
)

// withLogging writes one access-log line per request with the status and
// response size captured by [responseWriter]. It reads the logger from the
// request context so the line carries the trace id set by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()
		uri, method := r.RequestURI, r.Method

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
