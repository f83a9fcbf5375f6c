package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
// The result is written exactly once; any number of goroutines may await it.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Go executes fn in a new goroutine and returns a Future for its result.
// If ctx is already cancelled, fn is not called and the future resolves with ctx.Err().
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents doing work for a caller that already gave up
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the computation finishes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits at most timeout for the result.
// Returns ErrTimeout if the computation is still running.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the computation finishes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
