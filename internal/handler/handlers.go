package handler

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/handler/http"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/metrics"
	"github.com/MKhiriev/cookie-relay/internal/service"
)

// errNoHandlersAreCreated means the relay has nothing to listen on.
var errNoHandlersAreCreated = errors.New("http address is not configured")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, metricsProvider *metrics.Provider, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, cfg, metricsProvider, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
