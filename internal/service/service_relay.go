// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/store"
	"github.com/MKhiriev/cookie-relay/models"
)

type relayService struct {
	recordStore store.RecordStore
	codec       crypto.Codec

	logger *logger.Logger
}

// NewRelayService builds the relay service. recordStore may be nil, in which
// case every call fails with [ErrStoreUnavailable].
func NewRelayService(recordStore store.RecordStore, codec crypto.Codec, logger *logger.Logger) RelayService {
	return &relayService{
		recordStore: recordStore,
		codec:       codec,
		logger:      logger,
	}
}

func (s *relayService) Update(ctx context.Context, req models.UpdateRequest) error {
	log := logger.FromContext(ctx)

	if s.recordStore == nil {
		log.Error().Str("func", "*relayService.Update").Str("uuid", req.UUID).Msg("record store is not configured")
		return ErrStoreUnavailable
	}

	cryptoType := req.CryptoType
	if cryptoType == "" {
		cryptoType = crypto.LegacyTag
	}

	value, err := json.Marshal(models.StoredRecord{
		Encrypted:  req.Encrypted,
		CryptoType: cryptoType,
	})
	if err != nil {
		return fmt.Errorf("error marshaling record: %w", err)
	}

	if err = s.recordStore.Put(ctx, req.UUID, string(value)); err != nil {
		log.Err(err).Str("func", "*relayService.Update").Str("uuid", req.UUID).Msg("error storing record")
		return fmt.Errorf("error storing record: %w", err)
	}

	log.Debug().Str("func", "*relayService.Update").Str("uuid", req.UUID).Str("crypto_type", cryptoType).Msg("record stored")
	return nil
}

func (s *relayService) Get(ctx context.Context, req models.GetRequest) (models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	if s.recordStore == nil {
		log.Error().Str("func", "*relayService.Get").Str("uuid", req.UUID).Msg("record store is not configured")
		return models.StoredRecord{}, ErrStoreUnavailable
	}

	value, err := s.recordStore.Get(ctx, req.UUID)
	if err != nil {
		log.Err(err).Str("func", "*relayService.Get").Str("uuid", req.UUID).Msg("error loading record")
		return models.StoredRecord{}, fmt.Errorf("error loading record: %w", err)
	}

	var record models.StoredRecord
	if err = json.Unmarshal([]byte(value), &record); err != nil {
		log.Err(err).Str("func", "*relayService.Get").Str("uuid", req.UUID).Msg("stored value is not a record")
		return models.StoredRecord{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	return record, nil
}

func (s *relayService) GetDecrypted(ctx context.Context, req models.GetRequest) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	record, err := s.Get(ctx, req)
	if err != nil {
		return nil, err
	}

	decReq := newDecryptionRequest(req, record)
	payload, err := decryptRecord(s.codec, decReq)
	if err != nil {
		log.Err(err).Str("func", "*relayService.GetDecrypted").Str("uuid", req.UUID).Str("crypto_type", decReq.CryptoType).Msg("error decrypting record")
		return nil, fmt.Errorf("error decrypting record: %w", err)
	}

	return payload, nil
}
