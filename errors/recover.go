package errors

import "fmt"

// Recover runs fn and converts a panic into an error.
// An *AppError panic value is returned as is, a plain error is wrapped with
// ErrCodePanic, anything else is formatted into the message.
func Recover(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = FromPanic(r)
		}
	}()
	fn()
	return nil
}

// FromPanic converts a recovered panic value into an error.
func FromPanic(r any) error {
	switch v := r.(type) {
	case *AppError:
		return v
	case error:
		return New(ErrCodePanic, v.Error()).WithCause(v)
	default:
		return New(ErrCodePanic, fmt.Sprint(v))
	}
}
