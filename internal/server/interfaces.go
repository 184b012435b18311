package server

import "context"

// Server runs the configured transports until it is told to stop.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// every transport down gracefully.
	RunServer() error

	// Run serves until ctx is cancelled or one of the transports fails.
	Run(ctx context.Context) error
}
