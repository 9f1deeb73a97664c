// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// ErrDecryption is the root of every decryption failure. Callers should match
// it with [errors.Is] instead of the more specific values below.
var ErrDecryption = errors.New("decryption failed")

var (
	// ErrEmptyCiphertext is returned when the stored record has no ciphertext.
	ErrEmptyCiphertext = fmt.Errorf("%w: empty ciphertext", ErrDecryption)

	// ErrMalformedCiphertext is returned for input that is not valid base64,
	// is not block aligned or holds a truncated salted envelope.
	ErrMalformedCiphertext = fmt.Errorf("%w: malformed ciphertext", ErrDecryption)

	// ErrInvalidPadding is returned when PKCS#7 padding does not validate,
	// which is what a wrong key usually produces.
	ErrInvalidPadding = fmt.Errorf("%w: invalid padding", ErrDecryption)

	// ErrInvalidPayload is returned when the plaintext is not UTF-8 JSON.
	ErrInvalidPayload = fmt.Errorf("%w: plaintext is not a JSON document", ErrDecryption)
)

var (
	// ErrUnknownMode is returned for crypto type tags and Mode values that
	// the codec does not implement.
	ErrUnknownMode = errors.New("unknown crypto type")

	// ErrEncryption wraps failures while producing a ciphertext
	// (payload serialization, random source).
	ErrEncryption = errors.New("encryption failed")
)
