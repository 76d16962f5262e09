// Package result provides Result, a value that is either Ok(value) or Err(error).
//
// E is any type, not only error, so domain failure enums can be carried
// without wrapping. From bridges Go's (T, error) convention:
//
//	r := result.From(strconv.Atoi(s))
//	n := result.Map(r, func(v int) int { return v * 2 }).UnwrapOr(0)
package result

import (
	"fmt"
	"iter"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/option"
)

// Result is a tagged union of Ok(value) and Err(err).
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err wraps a failure value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// From converts a (value, error) pair. A nil error yields Ok.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// FromOption returns Ok for Some and Err(e) for None.
func FromOption[T, E any](o option.Option[T], e E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](e)
}

// Try runs fn and turns a panic into Err. Unwrap/Expect misuse inside fn
// surfaces as an *errors.AppError carrying the original code.
func Try[T any](fn func() (T, error)) Result[T, error] {
	var (
		v   T
		err error
	)
	if perr := errors.Recover(func() { v, err = fn() }); perr != nil {
		return Err[T](perr)
	}
	return From(v, err)
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether r holds a failure value.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// IsOkAnd reports whether r is Ok and its value satisfies pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool { return r.ok && pred(r.value) }

// IsErrAnd reports whether r is Err and its error satisfies pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool { return !r.ok && pred(r.err) }

// Ok projects the success value, discarding the error.
func (r Result[T, E]) Ok() option.Option[T] {
	return option.FromPair(r.value, r.ok)
}

// Err projects the failure value, discarding the success value.
func (r Result[T, E]) Err() option.Option[E] {
	return option.FromPair(r.err, !r.ok)
}

// Unpack returns both payloads; exactly one of them is meaningful.
func (r Result[T, E]) Unpack() (T, E) { return r.value, r.err }

// Unwrap returns the success value or panics with an UNWRAP_ERR *errors.AppError.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(errors.UnwrapErr(r.err))
	}
	return r.value
}

// UnwrapErr returns the failure value or panics with an UNWRAP_OK *errors.AppError.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(errors.UnwrapOk(r.value))
	}
	return r.err
}

// Expect returns the success value or panics with msg.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(errors.Expect(msg).WithDetail("err", r.err))
	}
	return r.value
}

// ExpectErr returns the failure value or panics with msg.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(errors.Expect(msg).WithDetail("value", r.value))
	}
	return r.err
}

// UnwrapOr returns the success value or fallback.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// UnwrapOrElse returns the success value or derives one from the error.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.err)
	}
	return r.value
}

// Iter returns a pull view over the success value only.
func (r Result[T, E]) Iter() *option.OnceIter[T] {
	return r.Ok().Iter()
}

// All returns a range-over-func sequence of the success value only.
func (r Result[T, E]) All() iter.Seq[T] {
	return r.Ok().All()
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
