package middleware

import (
	"net/http"
	"time"

	"github.com/greeter/greeter/internal/metrics"
)

// Instrument returns a middleware that reports every request to rec.
func Instrument(rec metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			rec.ObserveRequest(wrapped.status, time.Since(start))
		})
	}
}
