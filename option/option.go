// Package option provides Option, a value that is either Some(value) or None.
//
// Option is immutable: every combinator returns a new value. The zero value
// is None, so a declared but unset Option needs no constructor.
//
//	port := option.FromPair(os.LookupEnv("PORT"))
//	n := option.Map(port, func(s string) int { return len(s) }).UnwrapOr(0)
package option

import (
	"fmt"
	"iter"

	"github.com/kbukum/seqkit/errors"
)

// Option is a tagged union of Some(value) and None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair builds an Option from Go's comma-ok convention.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.some }

// IsSomeAnd reports whether a value is present and satisfies pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// Unwrap returns the value or panics with an UNWRAP_NONE *errors.AppError.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(errors.UnwrapNone())
	}
	return o.value
}

// Expect returns the value or panics with msg.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(errors.Expect(msg))
	}
	return o.value
}

// UnwrapOr returns the value or fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

// UnwrapOrElse returns the value or the result of fn.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.value
}

// UnwrapOrDefault returns the value or the zero value of T.
func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// Filter demotes Some to None when pred fails.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Or returns o if it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns o if it is Some, otherwise the result of fn.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Xor returns whichever of o and other is Some when exactly one is, otherwise None.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Inspect calls fn with the value if present and returns o unchanged.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// Iter returns a pull view yielding the value once, or nothing for None.
// The view has the same shape as iterator.Source, so iterator.From accepts it.
func (o Option[T]) Iter() *OnceIter[T] {
	return &OnceIter[T]{value: o.value, pending: o.some}
}

// All returns a range-over-func sequence of zero or one element.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OnceIter yields a single value at most once.
type OnceIter[T any] struct {
	value   T
	pending bool
}

// Next returns the held value on the first call and done afterwards.
func (it *OnceIter[T]) Next() (T, bool) {
	if !it.pending {
		var zero T
		return zero, false
	}
	it.pending = false
	v := it.value
	var zero T
	it.value = zero
	return v, true
}
