// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. See [parseEnvFrom].
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom fills cfg from environment, or from the process environment
// when environment is nil. Variable names come from the `env` and
// `envPrefix` tags of [StructuredConfig], e.g. SERVER_ADDRESS or
// STORAGE_DB_DATABASE_URI. Unset variables leave their fields zero so that
// later sources and applyDefaults can fill them.
func parseEnvFrom(cfg *StructuredConfig, environment map[string]string) error {
	opts := env.Options{
		Environment: environment,
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
