package validators

import (
	"context"

	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUUID targets the store key of a request.
	FieldUUID = "uuid"

	// FieldEncrypted targets the ciphertext of an update.
	FieldEncrypted = "encrypted"

	// FieldCryptoType targets the crypto type tag of an update.
	FieldCryptoType = "crypto_type"
)

const (
	// MaxUUIDLength bounds the store key. Postgres TEXT has no limit of its
	// own, so the relay enforces one.
	MaxUUIDLength = 512

	// MaxEncryptedLength bounds a single stored ciphertext (1 MiB).
	MaxEncryptedLength = 1 << 20
)

// RecordValidator validates the relay requests.
type RecordValidator struct{}

// NewRecordValidator returns a [Validator] for [models.UpdateRequest] and
// [models.GetRequest].
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UpdateRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.GetRequest:
		return v.validateGetRequest(ctx, value, fields...)
	case *models.GetRequest:
		return v.validateGetRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUpdateRequest checks UUID, Encrypted and CryptoType by default.
// An empty CryptoType is valid and means legacy.
func (v *RecordValidator) validateUpdateRequest(_ context.Context, req models.UpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUUID, FieldEncrypted, FieldCryptoType}
	}

	for _, f := range fields {
		switch f {
		case FieldUUID:
			if err := validateUUID(req.UUID); err != nil {
				return err
			}
		case FieldEncrypted:
			if req.Encrypted == "" {
				return ErrEmptyEncrypted
			}
			if len(req.Encrypted) > MaxEncryptedLength {
				return ErrCiphertextTooLarge
			}
		case FieldCryptoType:
			if req.CryptoType == "" {
				continue
			}
			if _, err := crypto.ParseMode(req.CryptoType); err != nil {
				return ErrUnknownCryptoType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateGetRequest only checks the key. An unknown crypto type override
// is reported by the decryption step instead.
func (v *RecordValidator) validateGetRequest(_ context.Context, req models.GetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUUID}
	}

	for _, f := range fields {
		switch f {
		case FieldUUID:
			if err := validateUUID(req.UUID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUUID(uuid string) error {
	if uuid == "" {
		return ErrEmptyUUID
	}
	if len(uuid) > MaxUUIDLength {
		return ErrIdentifierTooLong
	}

	return nil
}
