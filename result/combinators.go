package result

import "github.com/kbukum/seqkit/option"

// Map transforms the success value; Err passes through unchanged.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr transforms the failure value; Ok passes through unchanged.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// MapOr maps the success value or returns fallback.
func MapOr[T, E, U any](r Result[T, E], fallback U, fn func(T) U) U {
	if !r.ok {
		return fallback
	}
	return fn(r.value)
}

// MapOrElse maps the success value or derives a value from the error.
func MapOrElse[T, E, U any](r Result[T, E], fallback func(E) U, fn func(T) U) U {
	if !r.ok {
		return fallback(r.err)
	}
	return fn(r.value)
}

// AndThen chains a fallible step after a success.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// And returns other if r is Ok, otherwise r's error.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return other
}

// OrElse recovers from a failure; Ok passes through unchanged.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}

// Or returns r if it is Ok, otherwise other.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return other
}

// Match calls ok or fail depending on the variant.
func Match[T, E, R any](r Result[T, E], ok func(T) R, fail func(E) R) R {
	if r.ok {
		return ok(r.value)
	}
	return fail(r.err)
}

// Transpose swaps Result[Option[T], E] into Option[Result[T, E]].
// Ok(None) becomes None; Ok(Some(v)) becomes Some(Ok(v)); Err(e) becomes Some(Err(e)).
func Transpose[T, E any](r Result[option.Option[T], E]) option.Option[Result[T, E]] {
	if !r.ok {
		return option.Some(Err[T](r.err))
	}
	if v, ok := r.value.Get(); ok {
		return option.Some(Ok[T, E](v))
	}
	return option.None[Result[T, E]]()
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if !r.ok {
		return Err[T](r.err)
	}
	return r.value
}

// Equal reports whether both results have the same variant and equal payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}
