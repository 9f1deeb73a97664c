package models

import "encoding/json"

// RequestFields is the typed result of parsing an inbound request body,
// regardless of its encoding (JSON, urlencoded or multipart form, gzip).
// An empty string means the field was absent.
type RequestFields struct {
	Encrypted  string `json:"encrypted"`
	UUID       string `json:"uuid"`
	CryptoType string `json:"crypto_type"`
	Password   string `json:"password"`
}

// UpdateRequest asks the relay to store Encrypted under UUID.
type UpdateRequest struct {
	// UUID is the store key. Required.
	UUID string

	// Encrypted is the opaque ciphertext. Required.
	Encrypted string

	// CryptoType is the mode tag stored next to the ciphertext.
	// Empty means "legacy".
	CryptoType string
}

// GetRequest asks the relay for the record stored under UUID.
type GetRequest struct {
	// UUID is the store key. Required.
	UUID string

	// CryptoTypeOverride, if non-empty, takes precedence over the stored
	// crypto type when decrypting.
	CryptoTypeOverride string

	// Password, if non-empty, makes the relay decrypt the record and return
	// the plaintext payload instead of the stored record.
	Password string
}

// PushRequest is what the client encrypts and pushes to the relay.
type PushRequest struct {
	// UUID is the store key. Generated when empty.
	UUID string

	// Password is combined with UUID to derive the encryption key.
	Password string

	// CryptoType selects the cipher mode. Empty means "legacy".
	CryptoType string

	// Payload is the plaintext JSON document.
	Payload json.RawMessage
}
