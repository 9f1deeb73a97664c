package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the relay base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the relay address and timeout.
	Adapter ClientAdapter
	// LogLevel is the minimum zerolog level of the client.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from
// environment, the already parsed flags and the JSON file they point to.
func GetClientConfig(flags *FlagValues) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlagValues(flags).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
