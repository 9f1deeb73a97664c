package crypto

import "encoding/json"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec encrypts and decrypts JSON payloads bound to a record identifier.
//
// Key material is always derived from (identifier, password) with
// [DeriveKey]; callers never handle keys directly.
type Codec interface {
	// Encrypt serializes payload to JSON and encrypts it under mode.
	// The returned string is what clients store in the "encrypted" field.
	Encrypt(identifier string, payload any, password string, mode Mode) (string, error)

	// Decrypt reverses Encrypt and returns the decrypted JSON document.
	// Wrong password, wrong mode and corrupted input all yield an error
	// wrapping [ErrDecryption].
	Decrypt(identifier, ciphertext, password string, mode Mode) (json.RawMessage, error)
}
