package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// UnwrapNone is raised by Option.Unwrap on a None value.
func UnwrapNone() *AppError {
	return New(ErrCodeUnwrapNone, "called Option.Unwrap() on a None value")
}

// UnwrapErr is raised by Result.Unwrap on an Err value. The error payload is
// kept as a detail so the panic message stays stable.
func UnwrapErr(payload any) *AppError {
	e := New(ErrCodeUnwrapErr, "called Result.Unwrap() on an Err value").WithDetail("err", payload)
	if cause, ok := payload.(error); ok {
		e.Cause = cause
	}
	return e
}

// UnwrapOk is raised by Result.UnwrapErr on an Ok value.
func UnwrapOk(payload any) *AppError {
	return New(ErrCodeUnwrapOk, "called Result.UnwrapErr() on an Ok value").WithDetail("value", payload)
}

// Expect is raised by Expect/ExpectErr with the caller's message.
func Expect(message string) *AppError {
	return New(ErrCodeExpect, message)
}

// InvalidConfig creates an error for a configuration field that failed validation.
func InvalidConfig(message string) *AppError {
	return New(ErrCodeInvalidConfig, message)
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// Code returns the error code of err, or "" if err is not an AppError.
func Code(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}
