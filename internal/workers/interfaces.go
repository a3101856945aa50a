// Package workers runs the client's background housekeeping next to the
// interactive surfaces. Each Worker blocks until its context is cancelled;
// Workers runs a set of them together and stops them all when one fails.
package workers

import "context"

// Worker is a long-running background task.
//
// Run blocks until ctx is cancelled or the worker cannot continue. A
// cancelled context is a normal stop and yields a nil error.
type Worker interface {
	Run(ctx context.Context) error
}
