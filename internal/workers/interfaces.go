// Package workers runs the client's background jobs.
//
// A Worker blocks in Run until its context is cancelled. Workers runs a set
// of them in one errgroup, so the first failure stops the rest.
package workers

import "context"

// Worker is a long-running background job.
type Worker interface {
	Run(ctx context.Context) error
}
