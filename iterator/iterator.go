package iterator

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/kbukum/seqkit/option"
	"github.com/kbukum/seqkit/tuple"
)

// Source provides pull-based sequential access to a stream of values.
// Next returns (zero, false) when exhausted.
type Source[T any] interface {
	Next() (T, bool)
}

// Iterator is a fused, lazily evaluated sequence over a Source.
type Iterator[T any] struct {
	src  Source[T]
	done bool
}

// Next pulls the next value. After the first (zero, false) every later call
// also returns (zero, false) without touching the source.
func (it *Iterator[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	v, ok := it.src.Next()
	if !ok {
		it.done = true
		it.src = emptyIter[T]{}
	}
	return v, ok
}

// Seq returns a range-over-func view. Breaking out of the loop leaves the
// iterator positioned after the last yielded value.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
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
	return From[T](&sliceIter[T]{items: items})
}

// FromFunc pulls values from fn until it reports false.
func FromFunc[T any](fn func() (T, bool)) *Iterator[T] {
	return From[T](funcIter[T](fn))
}

// FromSeq adapts a range-over-func sequence. The returned stop func releases
// the underlying coroutine and must be called if the iterator is abandoned
// before it is exhausted.
func FromSeq[T any](seq iter.Seq[T]) (*Iterator[T], func()) {
	next, stop := iter.Pull(seq)
	return FromFunc(next), stop
}

// FromChannel receives from ch until it is closed.
func FromChannel[T any](ch <-chan T) *Iterator[T] {
	return FromFunc(func() (T, bool) {
		v, ok := <-ch
		return v, ok
	})
}

// FromMap yields the key/value pairs of m in unspecified order. Keys are
// snapshotted on creation; values are read as they are pulled.
func FromMap[K comparable, V any](m map[K]V) *Iterator[tuple.Pair[K, V]] {
	keys := slices.Collect(maps.Keys(m))
	return Map[K](FromSlice(keys), func(k K) tuple.Pair[K, V] {
		return tuple.New(k, m[k])
	})
}

// Empty returns an iterator that is already exhausted.
func Empty[T any]() *Iterator[T] {
	return &Iterator[T]{src: emptyIter[T]{}, done: true}
}

// Once yields v exactly once.
func Once[T any](v T) *Iterator[T] {
	return From[T](option.Some(v).Iter())
}

// Repeat yields v forever.
func Repeat[T any](v T) *Iterator[T] {
	return FromFunc(func() (T, bool) { return v, true })
}

// RepeatN yields v n times.
func RepeatN[T any](v T, n int) *Iterator[T] {
	return Repeat(v).Take(n)
}

// Successors yields first and then each value computed from the previous one,
// stopping at the first None.
func Successors[T any](first option.Option[T], fn func(T) option.Option[T]) *Iterator[T] {
	next := first
	return FromFunc(func() (T, bool) {
		v, ok := next.Get()
		if ok {
			next = fn(v)
		}
		return v, ok
	})
}

// Range yields start, start+1, ... up to but excluding end.
func Range[T constraints.Integer](start, end T) *Iterator[T] {
	cur := start
	return FromFunc(func() (T, bool) {
		if cur >= end {
			var zero T
			return zero, false
		}
		v := cur
		cur++
		return v, true
	})
}

// --- Internal sources ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	v := it.items[it.index]
	it.index++
	return v, true
}

type funcIter[T any] func() (T, bool)

func (fn funcIter[T]) Next() (T, bool) { return fn() }

type emptyIter[T any] struct{}

func (emptyIter[T]) Next() (T, bool) {
	var zero T
	return zero, false
}
