package iterator

import (
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/option"
	"github.com/kbukum/seqkit/tuple"
)

// Filter keeps only values that satisfy pred.
func (it *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
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
// value that fails it. That value is consumed and dropped.
func (it *Iterator[T]) TakeWhile(pred func(T) bool) *Iterator[T] {
	return From[T](&takeWhileIter[T]{source: it, fn: pred})
}

// SkipWhile discards values while pred holds, then yields the rest unfiltered.
func (it *Iterator[T]) SkipWhile(pred func(T) bool) *Iterator[T] {
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

// Inspect calls fn on each value, in pull order, before passing it on.
func (it *Iterator[T]) Inspect(fn func(T)) *Iterator[T] {
	return From[T](&inspectIter[T]{source: it, fn: fn})
}

// Cycle replays the sequence forever. Values are recorded on the first pass.
// An empty source yields nothing.
func (it *Iterator[T]) Cycle() *Iterator[T] {
	return From[T](&cycleIter[T]{source: it})
}

// Peekable returns a view that can look at the next value without consuming it.
func (it *Iterator[T]) Peekable() *Peekable[T] {
	return &Peekable[T]{source: it}
}

// Trace debug-logs every pulled value and the end of the sequence under the
// given stage name. It is a pass-through when debug logging is disabled.
func (it *Iterator[T]) Trace(log *logger.Logger, stage string) *Iterator[T] {
	if log == nil {
		log = logger.Get("iterator")
	}
	return From[T](&traceIter[T]{source: it, log: log, stage: stage})
}

// Map transforms each value using fn.
func Map[T, U any](src Source[T], fn func(T) U) *Iterator[U] {
	return From[U](&mapIter[T, U]{source: src, fn: fn})
}

// FilterMap applies fn and yields the contents of every Some.
func FilterMap[T, U any](src Source[T], fn func(T) option.Option[U]) *Iterator[U] {
	return From[U](&filterMapIter[T, U]{source: src, fn: fn})
}

// FlatMap maps each value to a Source and yields its values, exhausting each
// inner source before pulling the next outer value.
func FlatMap[T, U any](src Source[T], fn func(T) Source[U]) *Iterator[U] {
	return From[U](&flatMapIter[T, U]{source: src, fn: fn})
}

// Flatten removes exactly one level of nesting.
func Flatten[T any](src Source[*Iterator[T]]) *Iterator[T] {
	return FlatMap(src, func(inner *Iterator[T]) Source[T] { return inner })
}

// Enumerate pairs each value with its zero-based index.
func Enumerate[T any](src Source[T]) *Iterator[tuple.Pair[int, T]] {
	return From[tuple.Pair[int, T]](&enumerateIter[T]{source: src})
}

// Zip pairs values from a and b and stops when either is exhausted. a is
// pulled first; if b is then exhausted, that value of a is discarded.
func Zip[A, B any](a Source[A], b Source[B]) *Iterator[tuple.Pair[A, B]] {
	return From[tuple.Pair[A, B]](&zipIter[A, B]{a: a, b: b})
}

// Scan threads a state cell through the iteration. fn may mutate the state
// and returns the value to yield.
func Scan[T, S, U any](src Source[T], init S, fn func(*S, T) U) *Iterator[U] {
	return From[U](&scanIter[T, S, U]{source: src, state: init, fn: fn})
}

// MapWhile yields the contents of fn's results and stops for good at the first None.
func MapWhile[T, U any](src Source[T], fn func(T) option.Option[U]) *Iterator[U] {
	return From[U](&mapWhileIter[T, U]{source: src, fn: fn})
}

// Chunks groups values into slices of size n. The last chunk may be shorter.
// A size below 1 is treated as 1.
func Chunks[T any](src Source[T], n int) *Iterator[[]T] {
	if n < 1 {
		n = 1
	}
	return From[[]T](&chunkIter[T]{source: src, size: n})
}

// --- Iterator implementations ---

type filterIter[T any] struct {
	source Source[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next() (T, bool) {
	for {
		v, ok := it.source.Next()
		if !ok || it.fn(v) {
			return v, ok
		}
	}
}

type chainIter[T any] struct {
	first     Source[T]
	second    Source[T]
	firstDone bool
}

func (it *chainIter[T]) Next() (T, bool) {
	if !it.firstDone {
		if v, ok := it.first.Next(); ok {
			return v, true
		}
		it.firstDone = true
	}
	return it.second.Next()
}

type takeIter[T any] struct {
	source    Source[T]
	remaining int
}

func (it *takeIter[T]) Next() (T, bool) {
	if it.remaining <= 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	return it.source.Next()
}

type skipIter[T any] struct {
	source Source[T]
	n      int
}

func (it *skipIter[T]) Next() (T, bool) {
	for ; it.n > 0; it.n-- {
		if v, ok := it.source.Next(); !ok {
			it.n = 0
			return v, false
		}
	}
	return it.source.Next()
}

type takeWhileIter[T any] struct {
	source  Source[T]
	fn      func(T) bool
	stopped bool
}

func (it *takeWhileIter[T]) Next() (T, bool) {
	var zero T
	if it.stopped {
		return zero, false
	}
	v, ok := it.source.Next()
	if !ok || !it.fn(v) {
		it.stopped = true
		return zero, false
	}
	return v, true
}

type skipWhileIter[T any] struct {
	source  Source[T]
	fn      func(T) bool
	skipped bool
}

func (it *skipWhileIter[T]) Next() (T, bool) {
	if it.skipped {
		return it.source.Next()
	}
	for {
		v, ok := it.source.Next()
		if !ok {
			return v, false
		}
		if !it.fn(v) {
			it.skipped = true
			return v, true
		}
	}
}

type stepByIter[T any] struct {
	source Source[T]
	step   int
	first  bool
}

func (it *stepByIter[T]) Next() (T, bool) {
	if it.first {
		it.first = false
		return it.source.Next()
	}
	for i := 1; i < it.step; i++ {
		if v, ok := it.source.Next(); !ok {
			return v, false
		}
	}
	return it.source.Next()
}

type inspectIter[T any] struct {
	source Source[T]
	fn     func(T)
}

func (it *inspectIter[T]) Next() (T, bool) {
	v, ok := it.source.Next()
	if ok {
		it.fn(v)
	}
	return v, ok
}

type cycleIter[T any] struct {
	source    Source[T]
	buf       []T
	index     int
	replaying bool
}

func (it *cycleIter[T]) Next() (T, bool) {
	if !it.replaying {
		if v, ok := it.source.Next(); ok {
			it.buf = append(it.buf, v)
			return v, true
		}
		it.replaying = true
	}
	if len(it.buf) == 0 {
		var zero T
		return zero, false
	}
	v := it.buf[it.index]
	it.index = (it.index + 1) % len(it.buf)
	return v, true
}

type traceIter[T any] struct {
	source Source[T]
	log    *logger.Logger
	stage  string
	index  int
}

func (it *traceIter[T]) Next() (T, bool) {
	v, ok := it.source.Next()
	if !it.log.DebugEnabled() {
		return v, ok
	}
	if !ok {
		it.log.Debug("sequence exhausted", logger.Fields(
			logger.FieldStage, it.stage,
			logger.FieldIndex, it.index,
			logger.FieldDone, true,
		))
		return v, false
	}
	it.log.Debug("value pulled", logger.Fields(
		logger.FieldStage, it.stage,
		logger.FieldIndex, it.index,
		logger.FieldValue, v,
	))
	it.index++
	return v, true
}

type mapIter[T, U any] struct {
	source Source[T]
	fn     func(T) U
}

func (it *mapIter[T, U]) Next() (U, bool) {
	v, ok := it.source.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return it.fn(v), true
}

type filterMapIter[T, U any] struct {
	source Source[T]
	fn     func(T) option.Option[U]
}

func (it *filterMapIter[T, U]) Next() (U, bool) {
	for {
		v, ok := it.source.Next()
		if !ok {
			var zero U
			return zero, false
		}
		if out, some := it.fn(v).Get(); some {
			return out, true
		}
	}
}

type flatMapIter[T, U any] struct {
	source  Source[T]
	fn      func(T) Source[U]
	current Source[U]
}

func (it *flatMapIter[T, U]) Next() (U, bool) {
	for {
		if it.current != nil {
			if v, ok := it.current.Next(); ok {
				return v, true
			}
			it.current = nil
		}
		in, ok := it.source.Next()
		if !ok {
			var zero U
			return zero, false
		}
		it.current = it.fn(in)
	}
}

type enumerateIter[T any] struct {
	source Source[T]
	index  int
}

func (it *enumerateIter[T]) Next() (tuple.Pair[int, T], bool) {
	v, ok := it.source.Next()
	if !ok {
		return tuple.Pair[int, T]{}, false
	}
	p := tuple.New(it.index, v)
	it.index++
	return p, true
}

type zipIter[A, B any] struct {
	a Source[A]
	b Source[B]
}

func (it *zipIter[A, B]) Next() (tuple.Pair[A, B], bool) {
	av, ok := it.a.Next()
	if !ok {
		return tuple.Pair[A, B]{}, false
	}
	bv, ok := it.b.Next()
	if !ok {
		return tuple.Pair[A, B]{}, false
	}
	return tuple.New(av, bv), true
}

type scanIter[T, S, U any] struct {
	source Source[T]
	state  S
	fn     func(*S, T) U
}

func (it *scanIter[T, S, U]) Next() (U, bool) {
	v, ok := it.source.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return it.fn(&it.state, v), true
}

type mapWhileIter[T, U any] struct {
	source  Source[T]
	fn      func(T) option.Option[U]
	stopped bool
}

func (it *mapWhileIter[T, U]) Next() (U, bool) {
	var zero U
	if it.stopped {
		return zero, false
	}
	v, ok := it.source.Next()
	if !ok {
		it.stopped = true
		return zero, false
	}
	out, some := it.fn(v).Get()
	if !some {
		it.stopped = true
		return zero, false
	}
	return out, true
}

type chunkIter[T any] struct {
	source Source[T]
	size   int
}

func (it *chunkIter[T]) Next() ([]T, bool) {
	var chunk []T
	for len(chunk) < it.size {
		v, ok := it.source.Next()
		if !ok {
			break
		}
		chunk = append(chunk, v)
	}
	return chunk, len(chunk) > 0
}
