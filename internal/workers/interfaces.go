// Package workers runs the background jobs of the auth server: the push
// hub loop and the in-memory revocation sweeper.
//
// Each worker runs in its own goroutine until the shared context is
// cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run must block until ctx is done or the job fails, and return nil on a
// clean stop.
//
// Example implementation:
//
//	type Sweeper struct{}
//
//	func (s *Sweeper) Name() string { return "sweeper" }
//
//	func (s *Sweeper) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
