// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// cookieCodec is the private implementation of [Codec].
type cookieCodec struct {
	// random supplies legacy envelope salts.
	random io.Reader
}

// NewCodec returns a [Codec] that draws legacy salts from crypto/rand.
func NewCodec() Codec {
	return &cookieCodec{random: rand.Reader}
}

// Encrypt implements [Codec].
//
// Legacy output is a base64 salted envelope and differs on every call.
// FixedIVCBC output is base64 of the bare ciphertext and is deterministic.
func (c *cookieCodec) Encrypt(identifier string, payload any, password string, mode Mode) (string, error) {
	plaintext, err := marshalPayload(payload)
	if err != nil {
		return "", err
	}

	key := DeriveKey(identifier, password)

	var sealed []byte
	switch mode {
	case Legacy:
		sealed, err = sealLegacy(key, plaintext, c.random)
	case FixedIVCBC:
		sealed, err = sealFixed(key, plaintext)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [Codec].
func (c *cookieCodec) Decrypt(identifier, ciphertext, password string, mode Mode) (json.RawMessage, error) {
	raw, err := decodeCiphertext(ciphertext)
	if err != nil {
		return nil, err
	}

	key := DeriveKey(identifier, password)

	var plaintext []byte
	switch mode {
	case Legacy:
		plaintext, err = openLegacy(key, raw)
	case FixedIVCBC:
		plaintext, err = openFixed(key, raw)
	default:
		return nil, fmt.Errorf("%w: %w: %s", ErrDecryption, ErrUnknownMode, mode)
	}
	if err != nil {
		return nil, err
	}

	return unmarshalPayload(plaintext)
}

// marshalPayload renders payload the way JSON.stringify does: no HTML
// escaping and no trailing newline.
func marshalPayload(payload any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("%w: serializing payload: %w", ErrEncryption, err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func unmarshalPayload(plaintext []byte) (json.RawMessage, error) {
	if !utf8.Valid(plaintext) || !json.Valid(plaintext) {
		return nil, ErrInvalidPayload
	}

	return json.RawMessage(bytes.TrimSpace(plaintext)), nil
}

// decodeCiphertext base64-decodes s, ignoring line breaks and other
// whitespace that OpenSSL tooling inserts.
func decodeCiphertext(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return nil, ErrEmptyCiphertext
	}

	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	return raw, nil
}
