// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/cookie-relay/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The relay body is kept as detail.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrRelayRejected, msg)
	case errors.Is(err, adapter.ErrNotFound):
		return ErrRecordNotFound
	case errors.Is(err, adapter.ErrStoreNotConfigured):
		return ErrRelayUnavailable
	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %s", ErrRelayInternal, msg)
	case errors.Is(err, adapter.ErrTooManyRequests), errors.Is(err, adapter.ErrUnexpectedResponse):
		return fmt.Errorf("%w: %w", ErrRelayRejected, err)
	}

	return fmt.Errorf("%w: %w", ErrRelayUnreachable, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
