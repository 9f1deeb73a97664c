package service

import "errors"

var (
	// ErrBadRequest wraps every validation failure of an inbound request.
	ErrBadRequest = errors.New("bad request")

	// ErrStoreUnavailable is returned when the relay runs without a record
	// store.
	ErrStoreUnavailable = errors.New("record store is not configured")

	// ErrCorruptedRecord is returned when the stored value is not a record.
	ErrCorruptedRecord = errors.New("stored record is corrupted")
)

// Client side errors, translated from adapter errors by mapAdapterError.
var (
	ErrRecordNotFound    = errors.New("record not found on relay")
	ErrRelayRejected     = errors.New("relay rejected the request")
	ErrRelayUnavailable  = errors.New("relay store is not configured")
	ErrRelayInternal     = errors.New("relay failed to process the request")
	ErrRelayUnreachable  = errors.New("relay is unreachable")
	ErrNoPasswordForPull = errors.New("password is required to decrypt locally")
)
