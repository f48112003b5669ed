package middleware

import (
	"net/http"
	"time"

	"rhdesk/internal/platform/metrics"
)

// Metrics records request outcomes into the collector.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			collector.Record(rec.status, time.Since(start))
		})
	}
}
