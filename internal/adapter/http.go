package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/cookie-relay/internal/config"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/utils"
	"github.com/MKhiriev/cookie-relay/models"
)

type httpRelayAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRelayAdapter constructs an HTTP implementation of [RelayAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRelayAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RelayAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpRelayAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Update implements [RelayAdapter]. It POSTs the record fields as JSON to
// /update and expects {"action":"done"} back.
func (h *httpRelayAdapter) Update(ctx context.Context, req models.UpdateRequest) error {
	var action models.ActionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RequestFields{
			Encrypted:  req.Encrypted,
			UUID:       req.UUID,
			CryptoType: req.CryptoType,
		}).
		SetResult(&action).
		Post("/update")
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if action.Action != models.ActionDone {
		return fmt.Errorf("%w: action %q", ErrUnexpectedResponse, action.Action)
	}

	h.logger.Debug().Str("func", "*httpRelayAdapter.Update").Str("uuid", req.UUID).Msg("record pushed")
	return nil
}

// Get implements [RelayAdapter]. It sends GET /get/{uuid} without a password.
func (h *httpRelayAdapter) Get(ctx context.Context, uuid string) (models.StoredRecord, error) {
	var record models.StoredRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("uuid", uuid).
		SetResult(&record).
		Get("/get/{uuid}")
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredRecord{}, err
	}

	return record, nil
}

// GetDecrypted implements [RelayAdapter]. The password travels in a JSON body
// of the GET request.
func (h *httpRelayAdapter) GetDecrypted(ctx context.Context, req models.GetRequest) (json.RawMessage, error) {
	r := h.client.R().
		SetContext(ctx).
		SetPathParam("uuid", req.UUID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RequestFields{Password: req.Password})
	if req.CryptoTypeOverride != "" {
		r.SetQueryParam("crypto_type", req.CryptoTypeOverride)
	}

	resp, err := r.Get("/get/{uuid}")
	if err != nil {
		return nil, fmt.Errorf("get decrypted request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrUnexpectedResponse)
	}

	return json.RawMessage(body), nil
}

// Health implements [RelayAdapter].
func (h *httpRelayAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// Version implements [RelayAdapter].
func (h *httpRelayAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
