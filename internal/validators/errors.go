package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUUID          = errors.New("uuid is required")
	ErrEmptyEncrypted     = errors.New("encrypted is required")
	ErrUnknownCryptoType  = errors.New("unknown crypto type")
	ErrIdentifierTooLong  = errors.New("uuid is too long")
	ErrCiphertextTooLarge = errors.New("encrypted is too large")
)
