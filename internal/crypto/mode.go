package crypto

import "fmt"

// Mode selects the cipher construction used for a record.
// The zero value is [Legacy], which is also the default crypto type.
type Mode int

const (
	// Legacy is the OpenSSL-compatible salted passphrase envelope.
	Legacy Mode = iota
	// FixedIVCBC is AES-128-CBC with a zero IV and no envelope.
	FixedIVCBC
)

// Wire tags of the supported modes, as stored in the crypto_type field.
const (
	LegacyTag     = "legacy"
	FixedIVCBCTag = "aes-128-cbc-fixed"
)

// ParseMode maps a crypto_type tag to a [Mode].
func ParseMode(tag string) (Mode, error) {
	switch tag {
	case LegacyTag:
		return Legacy, nil
	case FixedIVCBCTag:
		return FixedIVCBC, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, tag)
	}
}

// String returns the wire tag of m.
func (m Mode) String() string {
	switch m {
	case Legacy:
		return LegacyTag
	case FixedIVCBC:
		return FixedIVCBCTag
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
