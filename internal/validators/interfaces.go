// Package validators checks relay requests before they reach the store.
//
// A [Validator] receives a request model and an optional list of field names
// (FieldUUID, FieldEncrypted, FieldCryptoType). With no names every field the
// model carries is checked. Failures are returned as the sentinel errors of
// errors.go so callers can wrap them with their own status error.
package validators

import "context"

// Validator validates a request model, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

var _ Validator = (*RecordValidator)(nil)
