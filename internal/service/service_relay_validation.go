package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/cookie-relay/internal/validators"
	"github.com/MKhiriev/cookie-relay/models"
)

// RelayValidationService rejects malformed requests with [ErrBadRequest]
// before they reach the wrapped service.
type RelayValidationService struct {
	inner     RelayService
	validator validators.Validator
}

func NewRelayValidationService() RelayServiceWrapper {
	return &RelayValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RelayValidationService) Update(ctx context.Context, req models.UpdateRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	return v.inner.Update(ctx, req)
}

func (v *RelayValidationService) Get(ctx context.Context, req models.GetRequest) (models.StoredRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.StoredRecord{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	return v.inner.Get(ctx, req)
}

func (v *RelayValidationService) GetDecrypted(ctx context.Context, req models.GetRequest) (json.RawMessage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	return v.inner.GetDecrypted(ctx, req)
}

func (v *RelayValidationService) Wrap(wrapped RelayService) RelayService {
	v.inner = wrapped
	return v
}
