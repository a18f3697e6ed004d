package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/metrics"
)

// withLogging writes one access log entry per request and counts it in
// metrics.HTTPRequestsTotal.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusCode()

		metrics.HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
