package asynciter

import (
	"cmp"
	"context"

	"github.com/kbukum/seqkit/iterator"
	"github.com/kbukum/seqkit/option"
	"github.com/kbukum/seqkit/ordering"
)

// Sum adds every value. An empty sequence sums to 0.
func Sum[T iterator.Number](ctx context.Context, src Source[T]) (T, error) {
	return Fold(ctx, src, T(0), func(_ context.Context, acc, v T) (T, error) { return acc + v, nil })
}

// Product multiplies every value. An empty sequence yields 1.
func Product[T iterator.Number](ctx context.Context, src Source[T]) (T, error) {
	return Fold(ctx, src, T(1), func(_ context.Context, acc, v T) (T, error) { return acc * v, nil })
}

// Max returns the greatest value, preferring the last of equal values.
func Max[T cmp.Ordered](ctx context.Context, src Source[T]) (option.Option[T], error) {
	return From(src).MaxBy(ctx, ordering.Compare[T])
}

// Min returns the least value, preferring the first of equal values.
func Min[T cmp.Ordered](ctx context.Context, src Source[T]) (option.Option[T], error) {
	return From(src).MinBy(ctx, ordering.Compare[T])
}

// MaxByKey returns the value with the greatest key, preferring the last on ties.
func MaxByKey[T any, K cmp.Ordered](ctx context.Context, src Source[T], key func(T) K) (option.Option[T], error) {
	return From(src).MaxBy(ctx, func(a, b T) ordering.Ordering { return ordering.Compare(key(a), key(b)) })
}

// MinByKey returns the value with the least key, preferring the first on ties.
func MinByKey[T any, K cmp.Ordered](ctx context.Context, src Source[T], key func(T) K) (option.Option[T], error) {
	return From(src).MinBy(ctx, func(a, b T) ordering.Ordering { return ordering.Compare(key(a), key(b)) })
}
