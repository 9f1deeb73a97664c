package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	appVersion string
	now        func() time.Time

	logger *logger.Logger
}

// NewAppInfoService reports the linker-injected build version, falling back
// to cfg.Version and then to "N/A".
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := buildInfo.BuildVersion()
	if version == notAvailable && cfg.Version != "" {
		version = cfg.Version
	}
	if version == "" {
		version = notAvailable
	}

	return &appInfoService{
		appVersion: version,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.NewHealthResponse(s.now())
}
