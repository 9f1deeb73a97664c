package main

import (
	"context"

	"github.com/MKhiriev/cookie-relay/internal/adapter"
	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/service"
	"github.com/MKhiriev/cookie-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewLogger("cookie-relay-client")

	connect := func(flags *config.FlagValues) (service.ClientRelayService, error) {
		cfg, err := config.GetClientConfig(flags)
		if err != nil {
			return nil, err
		}

		if err = logger.SetLevel(cfg.LogLevel); err != nil {
			return nil, err
		}

		relayAdapter, err := adapter.NewHTTPRelayAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, err
		}

		return service.NewClientServices(relayAdapter, crypto.NewCodec(), log).RelayService, nil
	}

	if err := newRootCmd(buildInfo, connect).ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client command failed")
	}
}
