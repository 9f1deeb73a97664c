// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 15 * time.Second
	defaultAdapterAddress = "http://localhost:8080"
)

// applyDefaults fills settings that have a sensible default and infers the
// storage driver from a lone DSN or SQLite path.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = int(cfg.Server.RateLimit) + 1
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Storage.Driver == "" {
		switch {
		case cfg.Storage.DB.DSN != "":
			cfg.Storage.Driver = DriverPostgres
		case cfg.Storage.SQLite.Path != "":
			cfg.Storage.Driver = DriverSQLite
		}
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An empty storage driver is valid: the relay then runs without a store.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case "", DriverMemory:
	case DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres driver requires a DSN", ErrInvalidStorageConfigs)
		}
	case DriverSQLite:
		if cfg.Storage.SQLite.Path == "" {
			return fmt.Errorf("%w: sqlite driver requires a database path", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return fmt.Errorf("%w: rate limit and burst must not be negative", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
