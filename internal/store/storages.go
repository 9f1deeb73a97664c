package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/logger"
)

// Storages bundles the record store with the resources that must be released
// on shutdown.
type Storages struct {
	// RecordStore is nil when no storage driver is configured.
	RecordStore RecordStore

	db *DB
}

// NewStorages builds the record store selected by cfg.Driver. An empty
// driver yields Storages with a nil RecordStore.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case "":
		log.Warn().Str("func", "NewStorages").Msg("no storage driver configured, store-backed requests will fail")
		return &Storages{}, nil
	case config.DriverMemory:
		log.Info().Str("func", "NewStorages").Msg("using in-memory record store")
		return &Storages{RecordStore: NewMemoryRecordStore()}, nil
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting postgres: %w", err)
		}
		return &Storages{RecordStore: NewRecordRepository(db, log), db: db}, nil
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.SQLite, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting sqlite: %w", err)
		}
		return &Storages{RecordStore: NewRecordRepository(db, log), db: db}, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", ErrStoreUnavailable, cfg.Driver)
	}
}

// Close releases the database connection pool, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
