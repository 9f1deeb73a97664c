// Package models holds the data types shared by the transport, service and
// storage layers of the relay.
package models

// StoredRecord is the value kept in the record store under a client-supplied
// identifier. It is replaced as a whole on every update.
type StoredRecord struct {
	// Encrypted is the client ciphertext. Its format depends on CryptoType.
	Encrypted string `json:"encrypted"`

	// CryptoType names the cipher mode that produced Encrypted
	// ("legacy" or "aes-128-cbc-fixed"). It is the default mode used to
	// decrypt the record when the reader does not override it.
	CryptoType string `json:"crypto_type"`
}

// DecryptionRequest carries everything needed to decrypt one stored record.
// It only lives for the duration of a single decrypt call.
type DecryptionRequest struct {
	Identifier string
	Ciphertext string
	Password   string
	CryptoType string
}
