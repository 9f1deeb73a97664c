package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/models"
)

func TestNewDecryptionRequest(t *testing.T) {
	got := newDecryptionRequest(
		models.GetRequest{UUID: "abc123", Password: "secret", CryptoTypeOverride: crypto.FixedIVCBCTag},
		models.StoredRecord{Encrypted: "ct", CryptoType: crypto.LegacyTag},
	)

	assert.Equal(t, models.DecryptionRequest{
		Identifier: "abc123",
		Ciphertext: "ct",
		Password:   "secret",
		CryptoType: crypto.FixedIVCBCTag,
	}, got)
}

func TestDecryptRecord(t *testing.T) {
	codec := crypto.NewCodec()

	payload, err := decryptRecord(codec, models.DecryptionRequest{
		Identifier: "abc123",
		Ciphertext: fixedVector,
		Password:   "secret",
		CryptoType: crypto.FixedIVCBCTag,
	})
	require.NoError(t, err)
	assert.Equal(t, plainVector, string(payload))

	_, err = decryptRecord(codec, models.DecryptionRequest{Identifier: "abc123", Ciphertext: fixedVector, CryptoType: "rot13"})
	require.ErrorIs(t, err, crypto.ErrDecryption)
	require.ErrorIs(t, err, crypto.ErrUnknownMode)
}
