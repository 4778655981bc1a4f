package budgea

import (
	"context"
)

// Future is the pending result of a call started with Async.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async runs fn in the background. At most Configuration.MaxConcurrency calls
// started through the same client run at once; the others wait for a slot
// until ctx is done.
//
//	f := budgea.Async(ctx, client, func(ctx context.Context) (*budgea.Banks, error) {
//		return client.Banks.ListBanks(ctx, nil)
//	})
//	banks, err := f.Get(ctx)
func Async[T any](ctx context.Context, c *APIClient, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		if err := c.sem.Acquire(ctx, 1); err != nil {
			f.err = err
			return
		}
		defer c.sem.Release(1)
		f.value, f.err = fn(ctx)
	}()
	return f
}

// Done is closed when the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get waits for the result or for ctx to be done, whichever comes first.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
