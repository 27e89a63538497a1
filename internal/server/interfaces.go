package server

import "context"

// Server defines the lifecycle contract of the reporting surface.
type Server interface {
	// RunServer serves requests until ctx is canceled or the listener
	// fails. Cancellation triggers a graceful shutdown and yields nil.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
