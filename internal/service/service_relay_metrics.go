package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/cookie-relay/internal/metrics"
	"github.com/MKhiriev/cookie-relay/internal/store"
	"github.com/MKhiriev/cookie-relay/models"
)

const relayDomain = "relay"

// RelayMetricsService records the count and duration of every relay call.
type RelayMetricsService struct {
	inner   RelayService
	metrics metrics.BusinessMetrics
}

func NewRelayMetricsService(bm metrics.BusinessMetrics) RelayServiceWrapper {
	return &RelayMetricsService{metrics: bm}
}

func (m *RelayMetricsService) Update(ctx context.Context, req models.UpdateRequest) error {
	start := time.Now()
	err := m.inner.Update(ctx, req)
	m.record(ctx, "update", start, err)

	return err
}

func (m *RelayMetricsService) Get(ctx context.Context, req models.GetRequest) (models.StoredRecord, error) {
	start := time.Now()
	record, err := m.inner.Get(ctx, req)
	m.record(ctx, "get", start, err)

	return record, err
}

func (m *RelayMetricsService) GetDecrypted(ctx context.Context, req models.GetRequest) (json.RawMessage, error) {
	start := time.Now()
	payload, err := m.inner.GetDecrypted(ctx, req)
	m.record(ctx, "get_decrypted", start, err)

	return payload, err
}

func (m *RelayMetricsService) Wrap(wrapped RelayService) RelayService {
	m.inner = wrapped
	return m
}

func (m *RelayMetricsService) record(ctx context.Context, operation string, start time.Time, err error) {
	status := relayStatus(err)
	m.metrics.RecordOperation(ctx, relayDomain, operation, status)
	m.metrics.RecordDuration(ctx, relayDomain, operation, time.Since(start), status)
}

// relayStatus separates a missing record from a failed operation.
func relayStatus(err error) string {
	if errors.Is(err, store.ErrRecordNotFound) {
		return metrics.StatusNotFound
	}

	return metrics.StatusOf(err)
}
