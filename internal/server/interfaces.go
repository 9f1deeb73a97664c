package server

import "context"

// Server defines the lifecycle contract of the relay server.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives or ctx is cancelled, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
