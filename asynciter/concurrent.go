package asynciter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// pullBoth issues one pull on each side concurrently and waits for both.
// The plain Group is used so that a failure on one side does not cancel the
// ctx the other side may keep using after this call.
func pullBoth[A, B any](ctx context.Context, a Source[A], b Source[B]) (av A, aok bool, bv B, bok bool, err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		av, aok, err = a.Next(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bv, bok, err = b.Next(ctx)
		return err
	})
	err = g.Wait()
	return av, aok, bv, bok, err
}

// pulled carries a value or error through a channel.
type pulled[T any] struct {
	val T
	ok  bool
	err error
}

// Buffer adds an ordered prefetch stage of the given size between it and its
// consumer. The producer goroutine starts on the first pull and pulls upstream
// with that pull's ctx; it exits when the source is exhausted, fails, or that
// ctx is cancelled. Callers that abandon a buffered iterator early must
// cancel the ctx they pulled it with.
func Buffer[T any](it Source[T], size int) *Iterator[T] {
	if size <= 0 {
		size = 1
	}
	return From[T](&bufferIter[T]{source: it, size: size})
}

type bufferIter[T any] struct {
	source Source[T]
	size   int
	once   sync.Once
	ch     chan pulled[T]
}

func (it *bufferIter[T]) start(ctx context.Context) {
	it.ch = make(chan pulled[T], it.size)
	go func() {
		defer close(it.ch)
		for {
			val, ok, err := it.source.Next(ctx)
			if err == nil && !ok {
				return
			}
			select {
			case it.ch <- pulled[T]{val: val, ok: ok, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
}

func (it *bufferIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	it.once.Do(func() { it.start(ctx) })
	select {
	case r, open := <-it.ch:
		if !open {
			return result, false, nil
		}
		return r.val, r.ok, r.err
	case <-ctx.Done():
		return result, false, ctx.Err()
	}
}

// Batch collects up to size values or waits timeout (whichever comes first),
// then emits them as a slice. The timeout is checked between pulls, so a
// single slow pull can extend a batch past it.
//
// size=0 means collect until timeout. timeout=0 means collect until size.
// Both zero is invalid and defaults to size=1.
func Batch[T any](it Source[T], size int, timeout time.Duration) *Iterator[[]T] {
	if size <= 0 && timeout <= 0 {
		size = 1
	}
	return From[[]T](&batchIter[T]{source: From(it), size: size, timeout: timeout})
}

type batchIter[T any] struct {
	source  Source[T]
	size    int
	timeout time.Duration
	pending error
}

func (it *batchIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.pending != nil {
		err, it.pending = it.pending, nil
		return nil, false, err
	}

	var batch []T
	var timer <-chan time.Time
	if it.timeout > 0 {
		t := time.NewTimer(it.timeout)
		defer t.Stop()
		timer = t.C
	}

	for {
		if it.size > 0 && len(batch) >= it.size {
			return batch, true, nil
		}

		val, ok, err := it.source.Next(ctx)
		if err != nil {
			if len(batch) > 0 {
				// Emit the partial batch; the error surfaces on the next pull.
				it.pending = err
				return batch, true, nil
			}
			return nil, false, err
		}
		if !ok {
			return batch, len(batch) > 0, nil
		}
		batch = append(batch, val)

		if timer != nil {
			select {
			case <-timer:
				return batch, true, nil
			default:
			}
		}
	}
}
