package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrStoreNotConfigured  = errors.New("relay store is not configured")
	ErrUnexpectedResponse  = errors.New("unexpected relay response")
)
