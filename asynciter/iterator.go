package asynciter

import (
	"context"
	"iter"

	"github.com/kbukum/seqkit/iterator"
)

// Source provides pull-based sequential access to a stream of values.
// Structurally compatible with the pipeline and provider iterators minus Close.
type Source[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context) (T, bool, error)

// Next calls fn.
func (fn SourceFunc[T]) Next(ctx context.Context) (T, bool, error) { return fn(ctx) }

// Iterator is a lazily evaluated sequence over a Source. It stays exhausted
// once the source reports done and refuses to pull with a cancelled context.
type Iterator[T any] struct {
	src  Source[T]
	done bool
}

// Next pulls the next value.
func (it *Iterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	v, ok, err := it.src.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		it.done = true
		it.src = emptySource[T]{}
		return zero, false, nil
	}
	return v, true, nil
}

// Seq returns a range-over-func view yielding (value, nil) pairs. A failing
// pull is yielded as (zero, err) and ends the loop.
func (it *Iterator[T]) Seq(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, ok, err := it.Next(ctx)
			if err != nil {
				yield(v, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}

// --- Constructors ---

// From wraps src. An *Iterator is returned as is.
func From[T any](src Source[T]) *Iterator[T] {
	if it, ok := src.(*Iterator[T]); ok {
		return it
	}
	return &Iterator[T]{src: src}
}

// FromSlice iterates over items in order.
func FromSlice[T any](items []T) *Iterator[T] {
	return FromIter[T](iterator.FromSlice(items))
}

// FromFunc pulls values from fn.
func FromFunc[T any](fn func(ctx context.Context) (T, bool, error)) *Iterator[T] {
	return From[T](SourceFunc[T](fn))
}

// FromIter lifts a synchronous source. Each pull checks ctx before pulling.
func FromIter[T any](src iterator.Source[T]) *Iterator[T] {
	return FromFunc(func(context.Context) (T, bool, error) {
		v, ok := src.Next()
		return v, ok, nil
	})
}

// ToAsync turns a synchronous sequence of futures into a sequence of their
// results, awaiting each future when it is pulled.
func ToAsync[T any](src iterator.Source[Future[T]]) *Iterator[T] {
	return FromFunc(func(ctx context.Context) (T, bool, error) {
		f, ok := src.Next()
		if !ok {
			var zero T
			return zero, false, nil
		}
		v, err := f.Await(ctx)
		if err != nil {
			return v, false, err
		}
		return v, true, nil
	})
}

// FromChannel receives from ch until it is closed or ctx is done.
func FromChannel[T any](ch <-chan T) *Iterator[T] {
	return FromFunc(func(ctx context.Context) (T, bool, error) {
		select {
		case v, open := <-ch:
			return v, open, nil
		case <-ctx.Done():
			var zero T
			return zero, false, ctx.Err()
		}
	})
}

// Empty returns an iterator that is already exhausted.
func Empty[T any]() *Iterator[T] {
	return &Iterator[T]{src: emptySource[T]{}, done: true}
}

type emptySource[T any] struct{}

func (emptySource[T]) Next(context.Context) (T, bool, error) {
	var zero T
	return zero, false, nil
}
