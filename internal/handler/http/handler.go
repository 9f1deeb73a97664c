package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/metrics"
	"github.com/MKhiriev/cookie-relay/internal/service"
	"github.com/MKhiriev/cookie-relay/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	metricsProvider *metrics.Provider
	httpMetrics     func(http.Handler) http.Handler
	limiter         *ipRateLimiter
	traceIDs        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metricsProvider may be nil, in which
// case neither the HTTP metrics middleware nor /metrics are mounted.
func NewHandler(services *service.Services, cfg config.Server, metricsProvider *metrics.Provider, logger *logger.Logger) (*Handler, error) {
	h := &Handler{
		services:        services,
		cfg:             cfg,
		metricsProvider: metricsProvider,
		traceIDs:        utils.NewUUIDGenerator(),
		logger:          logger,
	}

	if metricsProvider != nil {
		mw, err := metrics.HTTPMetricsMiddleware(metricsProvider.Registerer(), metricsProvider.Namespace())
		if err != nil {
			return nil, fmt.Errorf("error creating http metrics middleware: %w", err)
		}
		h.httpMetrics = mw
	}

	if cfg.RateLimit > 0 {
		h.limiter = newIPRateLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	logger.Info().Msg("http handler created")
	return h, nil
}
