package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-job-board/internal/metrics"
)

// withMetrics records request count, latency and in-flight requests, labeled
// by the chi route pattern so path parameters do not blow up cardinality.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		route := routePattern(r)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(mw.statusOrOK())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
