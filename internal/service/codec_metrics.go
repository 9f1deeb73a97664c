package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/metrics"
)

const codecDomain = "codec"

// codecMetrics counts encryptions and decryptions per cipher mode. The
// operation label is "encrypt_<mode>" or "decrypt_<mode>".
type codecMetrics struct {
	inner   crypto.Codec
	metrics metrics.BusinessMetrics
}

// NewCodecMetrics decorates codec with per-mode outcome metrics.
func NewCodecMetrics(codec crypto.Codec, bm metrics.BusinessMetrics) crypto.Codec {
	return &codecMetrics{inner: codec, metrics: bm}
}

func (c *codecMetrics) Encrypt(identifier string, payload any, password string, mode crypto.Mode) (string, error) {
	start := time.Now()
	ciphertext, err := c.inner.Encrypt(identifier, payload, password, mode)
	c.record("encrypt_"+modeLabel(mode), start, err)

	return ciphertext, err
}

func (c *codecMetrics) Decrypt(identifier, ciphertext, password string, mode crypto.Mode) (json.RawMessage, error) {
	start := time.Now()
	payload, err := c.inner.Decrypt(identifier, ciphertext, password, mode)
	c.record("decrypt_"+modeLabel(mode), start, err)

	return payload, err
}

func (c *codecMetrics) record(operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	c.metrics.RecordOperation(context.Background(), codecDomain, operation, status)
	c.metrics.RecordDuration(context.Background(), codecDomain, operation, time.Since(start), status)
}

func modeLabel(mode crypto.Mode) string {
	switch mode {
	case crypto.Legacy, crypto.FixedIVCBC:
		return mode.String()
	default:
		return "unknown"
	}
}
