package scheduler

import "context"

// Job is a unit of work run by the worker pool.
type Job interface {
	// Execute must return when ctx is done.
	Execute(ctx context.Context) error
	// UserID is the linked user the job works for.
	UserID() int64
	Description() string
}
