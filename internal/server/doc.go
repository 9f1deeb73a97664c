// Package server runs the relay's HTTP server.
//
// It owns the server lifecycle: startup, signal handling (SIGINT, SIGTERM,
// SIGQUIT) and graceful shutdown.
package server
