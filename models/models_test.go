package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredRecord_JSONShape(t *testing.T) {
	b, err := json.Marshal(StoredRecord{Encrypted: "U2FsdGVkX1...", CryptoType: "legacy"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"encrypted":"U2FsdGVkX1...","crypto_type":"legacy"}`, string(b))
}

func TestNewHealthResponse(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 10, 19, 12, 30, 45, 123456789, loc)

	resp := NewHealthResponse(now)

	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "2026-10-19T09:30:45.123Z", resp.Timestamp)
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "abc")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
	assert.Equal(t, "Build version: 1.2.3\nBuild date: N/A\nBuild commit: abc\n", info.String())
}
