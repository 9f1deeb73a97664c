// Package utils provides general-purpose helper utilities used across the
// relay: typed context keys, HTTP response writers, the resty client
// constructor and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the trace-id middleware stores the
// request trace id.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "0190...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the request trace id from the context.
//
// Returns ok == false when the value is missing or is not a non-empty string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
