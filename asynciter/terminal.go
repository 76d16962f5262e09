package asynciter

import (
	"context"

	"github.com/kbukum/seqkit/option"
	"github.com/kbukum/seqkit/ordering"
	"github.com/kbukum/seqkit/tuple"
)

// Collect pulls every value into a slice. On error it returns the values
// collected so far together with the error.
func (it *Iterator[T]) Collect(ctx context.Context) ([]T, error) {
	out := []T{}
	err := it.ForEach(ctx, func(_ context.Context, v T) error {
		out = append(out, v)
		return nil
	})
	return out, err
}

// Count consumes the sequence and returns the number of values.
func (it *Iterator[T]) Count(ctx context.Context) (int, error) {
	n := 0
	err := it.ForEach(ctx, func(context.Context, T) error {
		n++
		return nil
	})
	return n, err
}

// ForEach calls fn for every value and stops at the first error.
func (it *Iterator[T]) ForEach(ctx context.Context, fn func(context.Context, T) error) error {
	for {
		v, ok, err := it.Next(ctx)
		if err != nil || !ok {
			return err
		}
		if err := fn(ctx, v); err != nil {
			return err
		}
	}
}

// Reduce folds the sequence using its first value as the seed.
// It returns None for an empty sequence.
func (it *Iterator[T]) Reduce(ctx context.Context, fn func(ctx context.Context, acc, v T) (T, error)) (option.Option[T], error) {
	first, ok, err := it.Next(ctx)
	if err != nil || !ok {
		return option.None[T](), err
	}
	acc, err := Fold(ctx, it, first, fn)
	if err != nil {
		return option.None[T](), err
	}
	return option.Some(acc), nil
}

// All reports whether every value satisfies pred. It stops at the first
// failure and leaves the iterator positioned just after it.
func (it *Iterator[T]) All(ctx context.Context, pred func(context.Context, T) (bool, error)) (bool, error) {
	found, err := it.Any(ctx, func(ctx context.Context, v T) (bool, error) {
		ok, err := pred(ctx, v)
		return !ok, err
	})
	return !found, err
}

// Any reports whether some value satisfies pred. It stops at the first
// match and leaves the iterator positioned just after it.
func (it *Iterator[T]) Any(ctx context.Context, pred func(context.Context, T) (bool, error)) (bool, error) {
	pos, err := it.Position(ctx, pred)
	return pos.IsSome(), err
}

// Find returns the first value satisfying pred, consuming up to and including it.
func (it *Iterator[T]) Find(ctx context.Context, pred func(context.Context, T) (bool, error)) (option.Option[T], error) {
	return FindMap(ctx, it, func(ctx context.Context, v T) (option.Option[T], error) {
		ok, err := pred(ctx, v)
		return option.FromPair(v, ok), err
	})
}

// Nth returns the value at zero-based offset n, consuming everything through it.
func (it *Iterator[T]) Nth(ctx context.Context, n int) (option.Option[T], error) {
	if n < 0 {
		return option.None[T](), nil
	}
	return it.Find(ctx, func(context.Context, T) (bool, error) {
		n--
		return n < 0, nil
	})
}

// Last consumes the sequence and returns its final value.
func (it *Iterator[T]) Last(ctx context.Context) (option.Option[T], error) {
	last := option.None[T]()
	err := it.ForEach(ctx, func(_ context.Context, v T) error {
		last = option.Some(v)
		return nil
	})
	if err != nil {
		return option.None[T](), err
	}
	return last, nil
}

// Position returns the zero-based index of the first value satisfying pred.
func (it *Iterator[T]) Position(ctx context.Context, pred func(context.Context, T) (bool, error)) (option.Option[int], error) {
	for i := 0; ; i++ {
		v, ok, err := it.Next(ctx)
		if err != nil || !ok {
			return option.None[int](), err
		}
		match, err := pred(ctx, v)
		if err != nil {
			return option.None[int](), err
		}
		if match {
			return option.Some(i), nil
		}
	}
}

// Partition splits the sequence into values that satisfy pred and values
// that do not, preserving order within each.
func (it *Iterator[T]) Partition(ctx context.Context, pred func(context.Context, T) (bool, error)) (matched, rest []T, err error) {
	matched, rest = []T{}, []T{}
	err = it.ForEach(ctx, func(ctx context.Context, v T) error {
		ok, err := pred(ctx, v)
		if err != nil {
			return err
		}
		if ok {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
		return nil
	})
	return matched, rest, err
}

// MaxBy returns the greatest value under cmp. Among equal values the last wins.
func (it *Iterator[T]) MaxBy(ctx context.Context, cmp func(a, b T) ordering.Ordering) (option.Option[T], error) {
	return it.Reduce(ctx, func(_ context.Context, a, b T) (T, error) {
		if cmp(a, b) == ordering.Greater {
			return a, nil
		}
		return b, nil
	})
}

// MinBy returns the least value under cmp. Among equal values the first wins.
func (it *Iterator[T]) MinBy(ctx context.Context, cmp func(a, b T) ordering.Ordering) (option.Option[T], error) {
	return it.Reduce(ctx, func(_ context.Context, a, b T) (T, error) {
		if cmp(a, b) <= ordering.Equal {
			return a, nil
		}
		return b, nil
	})
}

// EqBy reports whether it and other have the same length and eq holds for
// every pair of corresponding values. Both sides are pulled concurrently.
func (it *Iterator[T]) EqBy(ctx context.Context, other Source[T], eq func(a, b T) bool) (bool, error) {
	for {
		av, aok, bv, bok, err := pullBoth[T, T](ctx, it, other)
		if err != nil {
			return false, err
		}
		if !aok || !bok {
			return aok == bok, nil
		}
		if !eq(av, bv) {
			return false, nil
		}
	}
}

// Fold accumulates the sequence left to right starting from init.
func Fold[T, A any](ctx context.Context, src Source[T], init A, fn func(ctx context.Context, acc A, v T) (A, error)) (A, error) {
	acc := init
	for {
		v, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return acc, err
		}
		if acc, err = fn(ctx, acc, v); err != nil {
			return acc, err
		}
	}
}

// FindMap returns the first Some produced by fn.
func FindMap[T, U any](ctx context.Context, src Source[T], fn func(context.Context, T) (option.Option[U], error)) (option.Option[U], error) {
	for {
		v, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return option.None[U](), err
		}
		out, err := fn(ctx, v)
		if err != nil {
			return option.None[U](), err
		}
		if out.IsSome() {
			return out, nil
		}
	}
}

// Unzip splits a sequence of pairs into two slices.
func Unzip[A, B any](ctx context.Context, src Source[tuple.Pair[A, B]]) ([]A, []B, error) {
	as, bs := []A{}, []B{}
	err := From(src).ForEach(ctx, func(_ context.Context, p tuple.Pair[A, B]) error {
		as = append(as, p.First)
		bs = append(bs, p.Second)
		return nil
	})
	return as, bs, err
}

// Eq reports whether a and b yield equal values and have the same length.
// Both sides are pulled concurrently, one value each per step.
func Eq[T comparable](ctx context.Context, a, b Source[T]) (bool, error) {
	return From(a).EqBy(ctx, b, func(x, y T) bool { return x == y })
}

// Ne is the negation of Eq.
func Ne[T comparable](ctx context.Context, a, b Source[T]) (bool, error) {
	eq, err := Eq(ctx, a, b)
	return !eq, err
}
