package option

import "github.com/kbukum/seqkit/tuple"

// Map applies fn to the value if present.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// AndThen is the monadic bind: fn runs only for Some and its Option is returned as is.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// And returns other if o is Some, otherwise None.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return other
}

// MapOr applies fn to the value, or returns fallback for None.
func MapOr[T, U any](o Option[T], fallback U, fn func(T) U) U {
	if !o.some {
		return fallback
	}
	return fn(o.value)
}

// MapOrElse applies fn to the value, or returns the result of fallback for None.
func MapOrElse[T, U any](o Option[T], fallback func() U, fn func(T) U) U {
	if !o.some {
		return fallback()
	}
	return fn(o.value)
}

// Match calls ifSome or ifNone depending on the variant.
func Match[T, R any](o Option[T], ifSome func(T) R, ifNone func() R) R {
	if o.some {
		return ifSome(o.value)
	}
	return ifNone()
}

// Flatten removes exactly one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}

// Zip returns Some of both values only when both options are Some.
func Zip[T, U any](a Option[T], b Option[U]) Option[tuple.Pair[T, U]] {
	if !a.some || !b.some {
		return None[tuple.Pair[T, U]]()
	}
	return Some(tuple.New(a.value, b.value))
}

// Unzip splits an optional pair into a pair of options.
func Unzip[T, U any](o Option[tuple.Pair[T, U]]) (Option[T], Option[U]) {
	if !o.some {
		return None[T](), None[U]()
	}
	return Some(o.value.First), Some(o.value.Second)
}

// Equal reports whether both options have the same variant and equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
