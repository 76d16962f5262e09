package iterator

import (
	"github.com/kbukum/seqkit/option"
	"github.com/kbukum/seqkit/ordering"
	"github.com/kbukum/seqkit/tuple"
)

// Collect pulls every value into a slice. An empty sequence yields an empty,
// non-nil slice.
func (it *Iterator[T]) Collect() []T {
	out := []T{}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Count consumes the sequence and returns the number of values.
func (it *Iterator[T]) Count() int {
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// ForEach calls fn for every value.
func (it *Iterator[T]) ForEach(fn func(T)) {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fn(v)
	}
}

// Reduce folds the sequence using its first value as the seed.
// It returns None for an empty sequence.
func (it *Iterator[T]) Reduce(fn func(acc, v T) T) option.Option[T] {
	acc, ok := it.Next()
	if !ok {
		return option.None[T]()
	}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = fn(acc, v)
	}
	return option.Some(acc)
}

// All reports whether every value satisfies pred. It stops at the first
// failure and leaves the iterator positioned just after it.
func (it *Iterator[T]) All(pred func(T) bool) bool {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether some value satisfies pred. It stops at the first
// match and leaves the iterator positioned just after it.
func (it *Iterator[T]) Any(pred func(T) bool) bool {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Find returns the first value satisfying pred, consuming up to and including it.
func (it *Iterator[T]) Find(pred func(T) bool) option.Option[T] {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if pred(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// Nth returns the value at zero-based offset n, consuming everything through it.
func (it *Iterator[T]) Nth(n int) option.Option[T] {
	if n < 0 {
		return option.None[T]()
	}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if n == 0 {
			return option.Some(v)
		}
		n--
	}
	return option.None[T]()
}

// Last consumes the sequence and returns its final value.
func (it *Iterator[T]) Last() option.Option[T] {
	last := option.None[T]()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		last = option.Some(v)
	}
	return last
}

// Position returns the zero-based index of the first value satisfying pred.
func (it *Iterator[T]) Position(pred func(T) bool) option.Option[int] {
	i := 0
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if pred(v) {
			return option.Some(i)
		}
		i++
	}
	return option.None[int]()
}

// Partition splits the sequence into values that satisfy pred and values
// that do not, preserving order within each.
func (it *Iterator[T]) Partition(pred func(T) bool) (matched, rest []T) {
	matched, rest = []T{}, []T{}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

// MaxBy returns the greatest value under cmp. Among equal values the last wins.
func (it *Iterator[T]) MaxBy(cmp func(a, b T) ordering.Ordering) option.Option[T] {
	return it.Reduce(func(a, b T) T { return maxStep(a, b, cmp) })
}

// MinBy returns the least value under cmp. Among equal values the first wins.
func (it *Iterator[T]) MinBy(cmp func(a, b T) ordering.Ordering) option.Option[T] {
	return it.Reduce(func(a, b T) T { return minStep(a, b, cmp) })
}

// EqBy reports whether it and other have the same length and eq holds for
// every pair of corresponding values.
func (it *Iterator[T]) EqBy(other Source[T], eq func(a, b T) bool) bool {
	return eqBy[T, T](it, other, eq)
}

// Fold accumulates the sequence left to right starting from init.
func Fold[T, A any](src Source[T], init A, fn func(acc A, v T) A) A {
	acc := init
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		acc = fn(acc, v)
	}
	return acc
}

// FindMap returns the first Some produced by fn.
func FindMap[T, U any](src Source[T], fn func(T) option.Option[U]) option.Option[U] {
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		if out := fn(v); out.IsSome() {
			return out
		}
	}
	return option.None[U]()
}

// Unzip splits a sequence of pairs into two slices.
func Unzip[A, B any](src Source[tuple.Pair[A, B]]) ([]A, []B) {
	as, bs := []A{}, []B{}
	for p, ok := src.Next(); ok; p, ok = src.Next() {
		as = append(as, p.First)
		bs = append(bs, p.Second)
	}
	return as, bs
}

// Eq reports whether a and b yield equal values and have the same length.
func Eq[T comparable](a, b Source[T]) bool {
	return eqBy(a, b, func(x, y T) bool { return x == y })
}

// Ne is the negation of Eq.
func Ne[T comparable](a, b Source[T]) bool {
	return !Eq(a, b)
}

func eqBy[A, B any](a Source[A], b Source[B], eq func(A, B) bool) bool {
	for {
		av, aok := a.Next()
		bv, bok := b.Next()
		if !aok || !bok {
			return aok == bok
		}
		if !eq(av, bv) {
			return false
		}
	}
}

func maxStep[T any](a, b T, cmp func(a, b T) ordering.Ordering) T {
	if cmp(a, b) == ordering.Greater {
		return a
	}
	return b
}

func minStep[T any](a, b T, cmp func(a, b T) ordering.Ordering) T {
	if cmp(a, b) <= ordering.Equal {
		return a
	}
	return b
}
