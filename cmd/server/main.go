package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/handler"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/metrics"
	"github.com/MKhiriev/cookie-relay/internal/server"
	"github.com/MKhiriev/cookie-relay/internal/service"
	"github.com/MKhiriev/cookie-relay/internal/store"
	"github.com/MKhiriev/cookie-relay/models"
)

const metricsNamespace = "cookie_relay"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("cookie-relay-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	var (
		metricsProvider *metrics.Provider
		businessMetrics metrics.BusinessMetrics
	)
	if cfg.Server.MetricsEnabled {
		metricsProvider = metrics.NewProvider(metricsNamespace)
		businessMetrics, err = metrics.NewBusinessMetrics(metricsProvider.Registerer(), metricsProvider.Namespace())
		if err != nil {
			log.Fatal().Err(err).Msg("error creating business metrics")
		}
	}

	services := service.NewServices(storages, crypto.NewCodec(), *cfg, buildInfo, businessMetrics, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, metricsProvider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
