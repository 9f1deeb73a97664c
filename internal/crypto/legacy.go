package crypto

import (
	"bytes"
	"crypto/aes"
	"fmt"
	"io"

	"github.com/Luzifer/go-openssl/v4"
)

const (
	// saltedMagic prefixes every salted OpenSSL envelope.
	saltedMagic = "Salted__"
	saltLen     = 8
)

// legacyEnvelope speaks the "openssl enc -aes-256-cbc -md md5" format that
// CryptoJS produces for passphrase encryption.
var legacyEnvelope = openssl.New()

// sealLegacy builds "Salted__" || salt || AES-256-CBC(plaintext) with key and
// IV taken from EVP_BytesToKey over MD5.
func sealLegacy(passphrase, plaintext []byte, random io.Reader) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, fmt.Errorf("%w: reading salt: %w", ErrEncryption, err)
	}

	envelope, err := legacyEnvelope.EncryptBinaryBytesWithSaltAndDigestFunc(string(passphrase), salt, plaintext, openssl.BytesToKeyMD5)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return envelope, nil
}

// openLegacy reverses sealLegacy. Envelopes without the magic prefix are
// treated as unsalted, the same way OpenSSL-format readers handle them.
func openLegacy(passphrase, envelope []byte) ([]byte, error) {
	if !bytes.HasPrefix(envelope, []byte(saltedMagic)) {
		creds, err := openssl.BytesToKeyMD5(passphrase, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
		}
		return cbcDecrypt(creds.Key, creds.IV, envelope)
	}

	header := len(saltedMagic) + saltLen
	if len(envelope) < header {
		return nil, fmt.Errorf("%w: truncated salted envelope", ErrMalformedCiphertext)
	}
	if body := len(envelope) - header; body == 0 || body%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d byte body is not a whole number of blocks", ErrMalformedCiphertext, body)
	}

	plaintext, err := legacyEnvelope.DecryptBinaryBytes(string(passphrase), envelope, openssl.BytesToKeyMD5)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPadding, err)
	}

	return plaintext, nil
}
