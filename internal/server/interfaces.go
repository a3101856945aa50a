package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts the server down
	// gracefully. A serve failure is returned immediately.
	Run(ctx context.Context) error

	// Addr returns the address the server listens on.
	Addr() string
}
