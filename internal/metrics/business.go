package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation statuses.
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusNotFound = "not_found"
)

// BusinessMetrics records relay operations (updates, reads, decryptions).
type BusinessMetrics interface {
	// RecordOperation counts one operation. Domain examples: "relay", "codec".
	// Operation examples: "update", "get", "decrypt_legacy". Status is one
	// of the Status constants.
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes the duration of one operation in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

type businessMetrics struct {
	operationCounter *prometheus.CounterVec
	durationHisto    *prometheus.HistogramVec
}

// NewBusinessMetrics registers the operation counter and duration histogram
// in registerer.
func NewBusinessMetrics(registerer prometheus.Registerer, namespace string) (BusinessMetrics, error) {
	operationCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of relay operations",
	}, []string{"domain", "operation", "status"})

	durationHisto := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of relay operations in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"domain", "operation", "status"})

	if err := registerer.Register(operationCounter); err != nil {
		return nil, fmt.Errorf("failed to register operation counter: %w", err)
	}
	if err := registerer.Register(durationHisto); err != nil {
		return nil, fmt.Errorf("failed to register duration histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

func (b *businessMetrics) RecordOperation(_ context.Context, domain, operation, status string) {
	b.operationCounter.WithLabelValues(domain, operation, status).Inc()
}

func (b *businessMetrics) RecordDuration(_ context.Context, domain, operation string, duration time.Duration, status string) {
	b.durationHisto.WithLabelValues(domain, operation, status).Observe(duration.Seconds())
}

type noopBusinessMetrics struct{}

// NewNoopBusinessMetrics returns a BusinessMetrics that records nothing.
// It is used when metrics are disabled.
func NewNoopBusinessMetrics() BusinessMetrics {
	return noopBusinessMetrics{}
}

func (noopBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (noopBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

// StatusOf maps an operation error to a status label.
func StatusOf(err error) string {
	if err != nil {
		return StatusError
	}

	return StatusSuccess
}
