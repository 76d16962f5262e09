package iterator

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/kbukum/seqkit/option"
	"github.com/kbukum/seqkit/ordering"
)

// Number is the set of element types Sum and Product accept.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum adds every value. An empty sequence sums to 0.
func Sum[T Number](src Source[T]) T {
	return Fold(src, T(0), func(acc, v T) T { return acc + v })
}

// Product multiplies every value. An empty sequence yields 1.
func Product[T Number](src Source[T]) T {
	return Fold(src, T(1), func(acc, v T) T { return acc * v })
}

// Max returns the greatest value, preferring the last of equal values.
func Max[T cmp.Ordered](src Source[T]) option.Option[T] {
	return From(src).MaxBy(ordering.Compare[T])
}

// Min returns the least value, preferring the first of equal values.
func Min[T cmp.Ordered](src Source[T]) option.Option[T] {
	return From(src).MinBy(ordering.Compare[T])
}

// MaxByKey returns the value with the greatest key, preferring the last on ties.
func MaxByKey[T any, K cmp.Ordered](src Source[T], key func(T) K) option.Option[T] {
	return From(src).MaxBy(byKey(key))
}

// MinByKey returns the value with the least key, preferring the first on ties.
func MinByKey[T any, K cmp.Ordered](src Source[T], key func(T) K) option.Option[T] {
	return From(src).MinBy(byKey(key))
}

func byKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) ordering.Ordering {
	return func(a, b T) ordering.Ordering {
		return ordering.Compare(key(a), key(b))
	}
}
