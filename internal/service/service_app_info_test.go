package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/models"
)

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_PrefersBuildVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "0.9.0"}, models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_FallsBackToConfig(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "0.9.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "0.9.0", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_NotAvailable(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth_FormatsTimestamp(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop()).(*appInfoService)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 4, 5, 6, 7, 891_000_000, time.FixedZone("X", 3*3600))
	}

	got := svc.Health(context.Background())

	assert.Equal(t, models.HealthResponse{Status: "OK", Timestamp: "2026-03-04T02:06:07.891Z"}, got)
}
