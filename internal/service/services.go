package service

import (
	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/metrics"
	"github.com/MKhiriev/cookie-relay/internal/store"
	"github.com/MKhiriev/cookie-relay/models"
)

type Services struct {
	RelayService   RelayService
	AppInfoService AppInfoService
}

// NewServices wires the relay service with its validation and metrics
// decorators and meters the codec it decrypts with. A nil storages or nil
// record store is allowed.
func NewServices(storages *store.Storages, codec crypto.Codec, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, bm metrics.BusinessMetrics, logger *logger.Logger) *Services {
	var recordStore store.RecordStore
	if storages != nil {
		recordStore = storages.RecordStore
	}
	if bm == nil {
		bm = metrics.NewNoopBusinessMetrics()
	}

	relay := NewRelayService(recordStore, NewCodecMetrics(codec, bm), logger)
	relay = NewRelayValidationService().Wrap(relay)
	relay = NewRelayMetricsService(bm).Wrap(relay)

	return &Services{
		RelayService:   relay,
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
