package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		want       string
	}{
		{
			name:       "known vector",
			identifier: "abc123",
			password:   "secret",
			want:       "aea3594da0112fc8",
		},
		{
			name:       "identifier with dash",
			identifier: "user-42",
			password:   "hunter2",
			want:       "d30abc68e46c6f8a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveKey(tt.identifier, tt.password)
			assert.Equal(t, tt.want, string(got))
			assert.Len(t, got, 16)
		})
	}
}

func TestDeriveKey_IsLowercaseHexPrefix(t *testing.T) {
	for _, in := range [][2]string{{"", ""}, {"x", "y"}, {"пользователь", "пароль"}} {
		key := DeriveKey(in[0], in[1])
		assert.Regexp(t, `^[0-9a-f]{16}$`, string(key))
	}
}

func TestDeriveKey_SeparatorMatters(t *testing.T) {
	// "a-b" + "-" + "c" and "a" + "-" + "b-c" hash the same string.
	assert.Equal(t, DeriveKey("a-b", "c"), DeriveKey("a", "b-c"))
	assert.NotEqual(t, DeriveKey("ab", "c"), DeriveKey("a", "bc"))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("legacy")
	assert.NoError(t, err)
	assert.Equal(t, Legacy, m)

	m, err = ParseMode("aes-128-cbc-fixed")
	assert.NoError(t, err)
	assert.Equal(t, FixedIVCBC, m)

	_, err = ParseMode("aes-256-gcm")
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = ParseMode("")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "legacy", Legacy.String())
	assert.Equal(t, "aes-128-cbc-fixed", FixedIVCBC.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
