package asynciter

import (
	"context"

	"github.com/kbukum/seqkit/errors"
)

// Future is a value that becomes available later.
type Future[T any] interface {
	// Await blocks until the value is ready or ctx is done.
	Await(ctx context.Context) (T, error)
}

// FutureFunc adapts a function to Future. The function runs on every Await.
type FutureFunc[T any] func(ctx context.Context) (T, error)

// Await calls fn.
func (fn FutureFunc[T]) Await(ctx context.Context) (T, error) { return fn(ctx) }

// Ready returns a future that resolves to v immediately.
func Ready[T any](v T) Future[T] {
	return FutureFunc[T](func(context.Context) (T, error) { return v, nil })
}

// Failed returns a future that resolves to err immediately.
func Failed[T any](err error) Future[T] {
	return FutureFunc[T](func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// Spawn starts fn in a new goroutine and returns its future. A panic in fn is
// recovered and reported by Await as an *errors.AppError.
func Spawn[T any](ctx context.Context, fn func(context.Context) (T, error)) Future[T] {
	f := &spawned[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		if perr := errors.Recover(func() { f.val, f.err = fn(ctx) }); perr != nil {
			f.err = perr
		}
	}()
	return f
}

type spawned[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func (f *spawned[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
