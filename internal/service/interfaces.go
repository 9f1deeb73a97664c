package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/cookie-relay/models"
)

// RelayService stores encrypted records and hands them back, optionally
// decrypted.
type RelayService interface {
	// Update stores req.Encrypted and req.CryptoType under req.UUID,
	// replacing any previous record.
	Update(ctx context.Context, req models.UpdateRequest) error

	// Get returns the stored record as is.
	Get(ctx context.Context, req models.GetRequest) (models.StoredRecord, error)

	// GetDecrypted decrypts the stored record with req.Password. The mode is
	// req.CryptoTypeOverride, then the stored crypto type, then legacy.
	GetDecrypted(ctx context.Context, req models.GetRequest) (json.RawMessage, error)
}

// AppInfoService reports build and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// RelayServiceWrapper defines middleware composition for RelayService.
// Implementations wrap an existing RelayService to add behavior such as
// validation or metrics.
type RelayServiceWrapper interface {
	Wrap(RelayService) RelayService // returns a decorated RelayService applying additional behavior
}
