package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/cookie-relay/models"
)

// ClientRelayService is the client-side contract behind the command-line
// tool. Encryption happens locally; the relay only sees ciphertext unless
// the caller asks it to decrypt.
type ClientRelayService interface {
	// Push encrypts req.Payload with (uuid, password) under req.CryptoType and
	// stores it on the relay. A missing UUID is generated. Returns the UUID
	// the record was stored under.
	Push(ctx context.Context, req models.PushRequest) (string, error)

	// Pull fetches a record. With a password the relay decrypts it and the
	// plaintext JSON is returned; without one the raw stored record is
	// returned as JSON.
	Pull(ctx context.Context, req models.GetRequest) (json.RawMessage, error)

	// PullLocal fetches the raw record and decrypts it on the client. The
	// mode precedence is the same as on the relay.
	PullLocal(ctx context.Context, req models.GetRequest) (json.RawMessage, error)

	// Health reports the relay health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the relay build version.
	Version(ctx context.Context) (string, error)
}
