package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/models"
)

// newDecryptionRequest pairs a read request with the record it fetched.
func newDecryptionRequest(req models.GetRequest, record models.StoredRecord) models.DecryptionRequest {
	return models.DecryptionRequest{
		Identifier: req.UUID,
		Ciphertext: record.Encrypted,
		Password:   req.Password,
		CryptoType: resolveCryptoType(req.CryptoTypeOverride, record.CryptoType),
	}
}

// decryptRecord runs one decryption through codec. An unknown crypto type is
// reported as a decryption failure.
func decryptRecord(codec crypto.Codec, req models.DecryptionRequest) (json.RawMessage, error) {
	mode, err := crypto.ParseMode(req.CryptoType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrDecryption, err)
	}

	return codec.Decrypt(req.Identifier, req.Ciphertext, req.Password, mode)
}

// resolveCryptoType applies the precedence override > stored > legacy.
func resolveCryptoType(override, stored string) string {
	if override != "" {
		return override
	}
	if stored != "" {
		return stored
	}

	return crypto.LegacyTag
}
