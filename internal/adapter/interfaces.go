// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to a
// cookie relay server.
//
// The primary abstraction is [RelayAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP
// implementation built on resty ([NewHTTPRelayAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrStoreNotConfigured] for a relay
// running without a store).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/cookie-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter defines transport-agnostic communication with the relay.
type RelayAdapter interface {
	// Update stores an already encrypted record under req.UUID.
	Update(ctx context.Context, req models.UpdateRequest) error

	// Get fetches the raw stored record without decrypting it.
	Get(ctx context.Context, uuid string) (models.StoredRecord, error)

	// GetDecrypted asks the relay to decrypt the record with req.Password and
	// returns the plaintext JSON document. req.CryptoTypeOverride is sent as
	// the crypto_type query parameter when set.
	GetDecrypted(ctx context.Context, req models.GetRequest) (json.RawMessage, error)

	// Health calls the relay health endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the relay build version.
	Version(ctx context.Context) (string, error)
}
