// Package http implements the HTTP transport of the relay.
//
// It wires the chi router, the relay endpoints (/update, /get/{uuid},
// /health, /version, /) and the middleware chain: panic recovery, CORS,
// request tracing, access logging, optional metrics and rate limiting, the
// request timeout and gzip handling. Inbound bodies are normalized into
// models.RequestFields by parseRequestFields before the relay service is
// called.
package http
