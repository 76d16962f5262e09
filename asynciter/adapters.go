package asynciter

import (
	"context"

	"github.com/kbukum/seqkit/option"
	"github.com/kbukum/seqkit/tuple"
)

// Filter keeps only values for which pred returns true.
func (it *Iterator[T]) Filter(pred func(context.Context, T) (bool, error)) *Iterator[T] {
	return From[T](&filterIter[T]{source: it, fn: pred})
}

// Chain yields every value of it and then every value of other.
func (it *Iterator[T]) Chain(other Source[T]) *Iterator[T] {
	return From[T](&chainIter[T]{first: it, second: other})
}

// Take yields at most n values. It never pulls past the n-th value.
func (it *Iterator[T]) Take(n int) *Iterator[T] {
	return From[T](&takeIter[T]{source: it, remaining: n})
}

// Skip discards the first n values on the first pull, then yields the rest.
func (it *Iterator[T]) Skip(n int) *Iterator[T] {
	return From[T](&skipIter[T]{source: it, n: n})
}

// TakeWhile yields values while pred holds and stops for good at the first
// value that fails it.
func (it *Iterator[T]) TakeWhile(pred func(context.Context, T) (bool, error)) *Iterator[T] {
	return From[T](&takeWhileIter[T]{source: it, fn: pred})
}

// SkipWhile discards values while pred holds, then yields the rest unfiltered.
func (it *Iterator[T]) SkipWhile(pred func(context.Context, T) (bool, error)) *Iterator[T] {
	return From[T](&skipWhileIter[T]{source: it, fn: pred})
}

// StepBy yields the first value and then every step-th value after it.
// A step below 1 is treated as 1.
func (it *Iterator[T]) StepBy(step int) *Iterator[T] {
	if step < 1 {
		step = 1
	}
	return From[T](&stepByIter[T]{source: it, step: step, first: true})
}

// Inspect calls fn as a side-effect for each value, then passes the value
// through unchanged. An error from fn fails the pull.
func (it *Iterator[T]) Inspect(fn func(context.Context, T) error) *Iterator[T] {
	return From[T](&inspectIter[T]{source: it, fn: fn})
}

// Cycle replays the sequence forever. Values are recorded on the first pass.
// An empty source yields nothing.
func (it *Iterator[T]) Cycle() *Iterator[T] {
	return From[T](&cycleIter[T]{source: it})
}

// Map transforms each value using fn.
func Map[T, U any](src Source[T], fn func(context.Context, T) (U, error)) *Iterator[U] {
	return From[U](&mapIter[T, U]{source: src, fn: fn})
}

// FilterMap applies fn and yields the contents of every Some.
func FilterMap[T, U any](src Source[T], fn func(context.Context, T) (option.Option[U], error)) *Iterator[U] {
	return From[U](&filterMapIter[T, U]{source: src, fn: fn})
}

// FlatMap maps each value to a Source and yields its values, exhausting each
// inner source before pulling the next outer value.
func FlatMap[T, U any](src Source[T], fn func(context.Context, T) (Source[U], error)) *Iterator[U] {
	return From[U](&flatMapIter[T, U]{source: src, fn: fn})
}

// Flatten removes exactly one level of nesting.
func Flatten[T any](src Source[*Iterator[T]]) *Iterator[T] {
	return FlatMap(src, func(_ context.Context, inner *Iterator[T]) (Source[T], error) {
		return inner, nil
	})
}

// Enumerate pairs each value with its zero-based index.
func Enumerate[T any](src Source[T]) *Iterator[tuple.Pair[int, T]] {
	return From[tuple.Pair[int, T]](&enumerateIter[T]{source: src})
}

// Zip pairs values from a and b and stops when either is exhausted. Both
// sides are pulled concurrently, so the side that did not run out may have
// advanced by one value that is then discarded.
func Zip[A, B any](a Source[A], b Source[B]) *Iterator[tuple.Pair[A, B]] {
	return From[tuple.Pair[A, B]](&zipIter[A, B]{a: a, b: b})
}

// Scan threads a state cell through the iteration. fn may mutate the state
// and returns the value to yield.
func Scan[T, S, U any](src Source[T], init S, fn func(context.Context, *S, T) (U, error)) *Iterator[U] {
	return From[U](&scanIter[T, S, U]{source: src, state: init, fn: fn})
}

// MapWhile yields the contents of fn's results and stops for good at the first None.
func MapWhile[T, U any](src Source[T], fn func(context.Context, T) (option.Option[U], error)) *Iterator[U] {
	return From[U](&mapWhileIter[T, U]{source: src, fn: fn})
}

// --- Iterator implementations ---

type filterIter[T any] struct {
	source Source[T]
	fn     func(context.Context, T) (bool, error)
}

func (it *filterIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		keep, err := it.fn(ctx, val)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if keep {
			return val, true, nil
		}
	}
}

type chainIter[T any] struct {
	first     Source[T]
	second    Source[T]
	firstDone bool
}

func (it *chainIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.firstDone {
		val, ok, err := it.first.Next(ctx)
		if err != nil || ok {
			return val, ok, err
		}
		it.firstDone = true
	}
	return it.second.Next(ctx)
}

type takeIter[T any] struct {
	source    Source[T]
	remaining int
}

func (it *takeIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.remaining <= 0 {
		return result, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err == nil {
		it.remaining--
	}
	return val, ok, err
}

type skipIter[T any] struct {
	source Source[T]
	n      int
}

func (it *skipIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for it.n > 0 {
		_, ok, err := it.source.Next(ctx)
		if err != nil {
			return result, false, err
		}
		if !ok {
			it.n = 0
			return result, false, nil
		}
		it.n--
	}
	return it.source.Next(ctx)
}

type takeWhileIter[T any] struct {
	source  Source[T]
	fn      func(context.Context, T) (bool, error)
	stopped bool
}

func (it *takeWhileIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.stopped {
		return result, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return result, false, err
	}
	if !ok {
		it.stopped = true
		return result, false, nil
	}
	keep, err := it.fn(ctx, val)
	if err != nil {
		return result, false, err
	}
	if !keep {
		it.stopped = true
		return result, false, nil
	}
	return val, true, nil
}

type skipWhileIter[T any] struct {
	source  Source[T]
	fn      func(context.Context, T) (bool, error)
	skipped bool
}

func (it *skipWhileIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.skipped {
		return it.source.Next(ctx)
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		skip, err := it.fn(ctx, val)
		if err != nil {
			return result, false, err
		}
		if !skip {
			it.skipped = true
			return val, true, nil
		}
	}
}

type stepByIter[T any] struct {
	source  Source[T]
	step    int
	first   bool
	skipped int
}

func (it *stepByIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.first {
		val, ok, err := it.source.Next(ctx)
		if err == nil {
			it.first = false
		}
		return val, ok, err
	}
	// skipped survives an error so pulling again does not skip twice.
	for ; it.skipped < it.step-1; it.skipped++ {
		_, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
	}
	val, ok, err := it.source.Next(ctx)
	if err == nil {
		it.skipped = 0
	}
	return val, ok, err
}

type inspectIter[T any] struct {
	source Source[T]
	fn     func(context.Context, T) error
}

func (it *inspectIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		return result, false, err
	}
	return val, true, nil
}

type cycleIter[T any] struct {
	source    Source[T]
	buf       []T
	index     int
	replaying bool
}

func (it *cycleIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.replaying {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return result, false, err
		}
		if ok {
			it.buf = append(it.buf, val)
			return val, true, nil
		}
		it.replaying = true
	}
	if len(it.buf) == 0 {
		return result, false, nil
	}
	val := it.buf[it.index]
	it.index = (it.index + 1) % len(it.buf)
	return val, true, nil
}

type mapIter[T, U any] struct {
	source Source[T]
	fn     func(context.Context, T) (U, error)
}

func (it *mapIter[T, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		return result, false, err
	}
	return out, true, nil
}

type filterMapIter[T, U any] struct {
	source Source[T]
	fn     func(context.Context, T) (option.Option[U], error)
}

func (it *filterMapIter[T, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		out, err := it.fn(ctx, val)
		if err != nil {
			return result, false, err
		}
		if v, some := out.Get(); some {
			return v, true, nil
		}
	}
}

type flatMapIter[T, U any] struct {
	source  Source[T]
	fn      func(context.Context, T) (Source[U], error)
	current Source[U]
}

func (it *flatMapIter[T, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				return result, false, err
			}
			if ok {
				return val, true, nil
			}
			it.current = nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		inner, err := it.fn(ctx, in)
		if err != nil {
			return result, false, err
		}
		it.current = inner
	}
}

type enumerateIter[T any] struct {
	source Source[T]
	index  int
}

func (it *enumerateIter[T]) Next(ctx context.Context) (result tuple.Pair[int, T], ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	result = tuple.New(it.index, val)
	it.index++
	return result, true, nil
}

type zipIter[A, B any] struct {
	a Source[A]
	b Source[B]
}

func (it *zipIter[A, B]) Next(ctx context.Context) (result tuple.Pair[A, B], ok bool, err error) {
	av, aok, bv, bok, err := pullBoth(ctx, it.a, it.b)
	if err != nil || !aok || !bok {
		return result, false, err
	}
	return tuple.New(av, bv), true, nil
}

type scanIter[T, S, U any] struct {
	source Source[T]
	state  S
	fn     func(context.Context, *S, T) (U, error)
}

func (it *scanIter[T, S, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	out, err := it.fn(ctx, &it.state, val)
	if err != nil {
		return result, false, err
	}
	return out, true, nil
}

type mapWhileIter[T, U any] struct {
	source  Source[T]
	fn      func(context.Context, T) (option.Option[U], error)
	stopped bool
}

func (it *mapWhileIter[T, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	if it.stopped {
		return result, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return result, false, err
	}
	if !ok {
		it.stopped = true
		return result, false, nil
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		return result, false, err
	}
	v, some := out.Get()
	if !some {
		it.stopped = true
		return result, false, nil
	}
	return v, true, nil
}
