package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetricsMiddleware returns a chi middleware that counts requests and
// observes their duration with method, path and status_code labels. The path
// is the chi route pattern (e.g. /get/{uuid}) to keep cardinality bounded.
func HTTPMetricsMiddleware(registerer prometheus.Registerer, namespace string) (func(http.Handler) http.Handler, error) {
	requestCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status_code"})

	durationHisto := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status_code"})

	if err := registerer.Register(requestCounter); err != nil {
		return nil, fmt.Errorf("failed to register http request counter: %w", err)
	}
	if err := registerer.Register(durationHisto); err != nil {
		return nil, fmt.Errorf("failed to register http duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			labels := []string{r.Method, routePattern(r), strconv.Itoa(status)}
			requestCounter.WithLabelValues(labels...).Inc()
			durationHisto.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		})
	}, nil
}

// routePattern returns the matched chi route pattern, or "unknown" when the
// request did not match any route.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unknown"
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return "unknown"
}
