package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/buy4good/backend/internal/metrics"
)

// Metrics returns middleware that records request counts and latency under
// the given route label. Applied per registered route so the label is the
// route pattern, not the raw path, keeping cardinality bounded.
func Metrics(reg *metrics.Registry, route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			reg.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			reg.HTTPDurationSec.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}
