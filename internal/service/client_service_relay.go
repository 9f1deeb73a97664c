package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/cookie-relay/internal/adapter"
	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/utils"
	"github.com/MKhiriev/cookie-relay/models"
)

type clientRelayService struct {
	adapter adapter.RelayAdapter
	codec   crypto.Codec
	uuids   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientRelayService(relayAdapter adapter.RelayAdapter, codec crypto.Codec, logger *logger.Logger) ClientRelayService {
	return &clientRelayService{
		adapter: relayAdapter,
		codec:   codec,
		uuids:   utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (c *clientRelayService) Push(ctx context.Context, req models.PushRequest) (string, error) {
	if !json.Valid(req.Payload) {
		return "", fmt.Errorf("%w: payload is not a JSON document", ErrBadRequest)
	}

	mode, err := crypto.ParseMode(resolveCryptoType(req.CryptoType, ""))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	uuid := req.UUID
	if uuid == "" {
		uuid = c.uuids.Generate()
	}

	encrypted, err := c.codec.Encrypt(uuid, req.Payload, req.Password, mode)
	if err != nil {
		return "", fmt.Errorf("encrypt payload: %w", err)
	}

	err = c.adapter.Update(ctx, models.UpdateRequest{
		UUID:       uuid,
		Encrypted:  encrypted,
		CryptoType: mode.String(),
	})
	if err != nil {
		c.logger.Err(err).Str("func", "*clientRelayService.Push").Str("uuid", uuid).Msg("error pushing record")
		return "", mapAdapterError(err)
	}

	return uuid, nil
}

func (c *clientRelayService) Pull(ctx context.Context, req models.GetRequest) (json.RawMessage, error) {
	if req.Password != "" {
		payload, err := c.adapter.GetDecrypted(ctx, req)
		if err != nil {
			return nil, mapAdapterError(err)
		}
		return payload, nil
	}

	record, err := c.adapter.Get(ctx, req.UUID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	return raw, nil
}

func (c *clientRelayService) PullLocal(ctx context.Context, req models.GetRequest) (json.RawMessage, error) {
	if req.Password == "" {
		return nil, ErrNoPasswordForPull
	}

	record, err := c.adapter.Get(ctx, req.UUID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	payload, err := decryptRecord(c.codec, newDecryptionRequest(req, record))
	if err != nil {
		c.logger.Err(err).Str("func", "*clientRelayService.PullLocal").Str("uuid", req.UUID).Msg("error decrypting record")
		return nil, fmt.Errorf("decrypt record: %w", err)
	}

	return payload, nil
}

func (c *clientRelayService) Health(ctx context.Context) (models.HealthResponse, error) {
	health, err := c.adapter.Health(ctx)
	if err != nil {
		return models.HealthResponse{}, mapAdapterError(err)
	}

	return health, nil
}

func (c *clientRelayService) Version(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
