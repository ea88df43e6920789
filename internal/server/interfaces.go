package server

import "context"

// Server runs the HTTP and gRPC transports of the job board together with
// the background workers they depend on.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts
	// down gracefully.
	RunServer()

	// Run serves until ctx is done. Workers are stopped before the
	// transports drain.
	Run(ctx context.Context) error

	// Shutdown stops the transports.
	Shutdown()
}
