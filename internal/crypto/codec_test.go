package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Luzifer/go-openssl/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vectorIdentifier = "abc123"
	vectorPassword   = "secret"
	vectorPayload    = `{"session":"xyz","n":1}`

	// produced with:
	//   openssl enc -aes-128-cbc -K <hex("aea3594da0112fc8")> -iv 0 -base64
	vectorFixed = "VIw00c9m4USvT8Vh0YKULGBuBTd4TqmNArfBGz9160Y="
	// produced with:
	//   openssl enc -aes-256-cbc -md md5 -S 0102030405060708 -pass pass:aea3594da0112fc8
	vectorLegacy = "U2FsdGVkX18BAgMEBQYHCP+uNvTzoUEpXdOPj+8Kee4oqkbjdUlGEknHy77X0R/2"
)

var vectorSalt = []byte{1, 2, 3, 4, 5, 6, 7, 8}

func TestEncrypt_FixedIVCBC_KnownVector(t *testing.T) {
	codec := NewCodec()

	got, err := codec.Encrypt(vectorIdentifier, json.RawMessage(vectorPayload), vectorPassword, FixedIVCBC)
	require.NoError(t, err)
	assert.Equal(t, vectorFixed, got)
}

func TestEncrypt_Legacy_KnownVector(t *testing.T) {
	codec := &cookieCodec{random: bytes.NewReader(vectorSalt)}

	got, err := codec.Encrypt(vectorIdentifier, json.RawMessage(vectorPayload), vectorPassword, Legacy)
	require.NoError(t, err)
	assert.Equal(t, vectorLegacy, got)
	assert.True(t, strings.HasPrefix(got, "U2FsdGVkX1"))
}

func TestDecrypt_KnownVectors(t *testing.T) {
	codec := NewCodec()

	tests := []struct {
		name       string
		ciphertext string
		mode       Mode
	}{
		{name: "fixed", ciphertext: vectorFixed, mode: FixedIVCBC},
		{name: "legacy", ciphertext: vectorLegacy, mode: Legacy},
		{name: "legacy wrapped at 64 columns", ciphertext: vectorLegacy[:40] + "\n" + vectorLegacy[40:] + "\n", mode: Legacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decrypt(vectorIdentifier, tt.ciphertext, vectorPassword, tt.mode)
			require.NoError(t, err)
			assert.JSONEq(t, vectorPayload, string(got))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	codec := NewCodec()

	payloads := []any{
		map[string]any{"cookies": []any{map[string]any{"name": "sid", "value": "a<b>&c"}}},
		[]any{1.5, "two", nil, true},
		"just a string",
		42.0,
		nil,
		map[string]any{},
		strings.Repeat("x", 1000),
	}
	identifiers := []string{"abc123", "", "0c6f3f5e-8a0b-4d39-a9b5-0f1c0e3e1f11", "ключ"}
	passwords := []string{"secret", "", "pässwörd with spaces"}

	for _, mode := range []Mode{Legacy, FixedIVCBC} {
		for _, p := range payloads {
			for _, id := range identifiers {
				for _, pw := range passwords {
					ciphertext, err := codec.Encrypt(id, p, pw, mode)
					require.NoError(t, err)

					plain, err := codec.Decrypt(id, ciphertext, pw, mode)
					require.NoError(t, err, "mode=%s id=%q pw=%q", mode, id, pw)

					want, err := json.Marshal(p)
					require.NoError(t, err)
					assert.JSONEq(t, string(want), string(plain))
				}
			}
		}
	}
}

func TestEncrypt_DoesNotEscapeHTML(t *testing.T) {
	codec := NewCodec()

	ciphertext, err := codec.Encrypt("id", map[string]string{"v": "<a&b>"}, "pw", FixedIVCBC)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	plain, err := openFixed(DeriveKey("id", "pw"), raw)
	require.NoError(t, err)

	assert.Equal(t, `{"v":"<a&b>"}`, string(plain))
}

func TestEncrypt_Determinism(t *testing.T) {
	codec := NewCodec()
	payload := map[string]string{"k": "v"}

	first, err := codec.Encrypt("u", payload, "p", FixedIVCBC)
	require.NoError(t, err)
	second, err := codec.Encrypt("u", payload, "p", FixedIVCBC)
	require.NoError(t, err)
	assert.Equal(t, first, second, "fixed-IV mode must be deterministic")

	first, err = codec.Encrypt("u", payload, "p", Legacy)
	require.NoError(t, err)
	second, err = codec.Encrypt("u", payload, "p", Legacy)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "legacy mode must be salted")
}

func TestDecrypt_CrossMode(t *testing.T) {
	codec := NewCodec()
	payload := map[string]any{"session": "xyz", "list": []int{1, 2, 3}}

	legacy, err := codec.Encrypt("u", payload, "p", Legacy)
	require.NoError(t, err)
	fixed, err := codec.Encrypt("u", payload, "p", FixedIVCBC)
	require.NoError(t, err)

	_, err = codec.Decrypt("u", legacy, "p", FixedIVCBC)
	assert.ErrorIs(t, err, ErrDecryption)

	_, err = codec.Decrypt("u", fixed, "p", Legacy)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestDecrypt_WrongCredentials(t *testing.T) {
	codec := NewCodec()

	for _, mode := range []Mode{Legacy, FixedIVCBC} {
		t.Run(mode.String(), func(t *testing.T) {
			ciphertext, err := codec.Encrypt("abc123", map[string]string{"a": "b"}, "secret", mode)
			require.NoError(t, err)

			_, err = codec.Decrypt("abc123", ciphertext, "not-the-secret", mode)
			assert.ErrorIs(t, err, ErrDecryption)

			_, err = codec.Decrypt("abc124", ciphertext, "secret", mode)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestDecrypt_MalformedInput(t *testing.T) {
	codec := NewCodec()
	b64 := base64.StdEncoding.EncodeToString

	tests := []struct {
		name       string
		ciphertext string
		mode       Mode
		wantErr    error
	}{
		{name: "empty", ciphertext: "", mode: FixedIVCBC, wantErr: ErrEmptyCiphertext},
		{name: "whitespace only", ciphertext: " \n\t", mode: Legacy, wantErr: ErrEmptyCiphertext},
		{name: "not base64", ciphertext: "%%%not-base64%%%", mode: FixedIVCBC, wantErr: ErrMalformedCiphertext},
		{name: "fixed not block aligned", ciphertext: b64(make([]byte, 15)), mode: FixedIVCBC, wantErr: ErrMalformedCiphertext},
		{name: "legacy truncated envelope", ciphertext: b64([]byte("Salted__abc")), mode: Legacy, wantErr: ErrMalformedCiphertext},
		{name: "legacy envelope without body", ciphertext: b64([]byte("Salted__12345678")), mode: Legacy, wantErr: ErrMalformedCiphertext},
		{name: "legacy body not aligned", ciphertext: b64(append([]byte("Salted__12345678"), 1, 2, 3)), mode: Legacy, wantErr: ErrMalformedCiphertext},
		{name: "unknown mode", ciphertext: vectorFixed, mode: Mode(42), wantErr: ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decrypt("abc123", tt.ciphertext, "secret", tt.mode)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestDecrypt_PlaintextIsNotJSON(t *testing.T) {
	key := DeriveKey("abc123", "secret")
	sealed, err := sealFixed(key, []byte("definitely not json"))
	require.NoError(t, err)

	_, err = NewCodec().Decrypt("abc123", base64.StdEncoding.EncodeToString(sealed), "secret", FixedIVCBC)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestEncrypt_Errors(t *testing.T) {
	_, err := NewCodec().Encrypt("u", map[string]any{"ch": make(chan int)}, "p", Legacy)
	assert.ErrorIs(t, err, ErrEncryption)

	_, err = NewCodec().Encrypt("u", "x", "p", Mode(3))
	assert.ErrorIs(t, err, ErrUnknownMode)

	exhausted := &cookieCodec{random: bytes.NewReader(nil)}
	_, err = exhausted.Encrypt("u", "x", "p", Legacy)
	assert.ErrorIs(t, err, ErrEncryption)
}

func TestDecrypt_LegacyEnvelopeFromOpenSSLWriter(t *testing.T) {
	payload := `{"session":"xyz","n":1}`
	sealed, err := openssl.New().EncryptBytes(string(DeriveKey("abc123", "secret")), []byte(payload), openssl.BytesToKeyMD5)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(sealed), "U2FsdGVkX1"))

	got, err := NewCodec().Decrypt("abc123", string(sealed), "secret", Legacy)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(got))
}

func TestDecrypt_LegacyUnsaltedEnvelope(t *testing.T) {
	creds, err := openssl.BytesToKeyMD5(DeriveKey("abc123", "secret"), nil)
	require.NoError(t, err)

	body, err := cbcEncrypt(creds.Key, creds.IV, []byte(`{"a":1}`))
	require.NoError(t, err)

	got, err := NewCodec().Decrypt("abc123", base64.StdEncoding.EncodeToString(body), "secret", Legacy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))
}
