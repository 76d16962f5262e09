package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Variant misuse (programmer errors, never retried)
const (
	// ErrCodeUnwrapNone indicates Unwrap was called on a None option.
	ErrCodeUnwrapNone ErrorCode = "UNWRAP_NONE"
	// ErrCodeUnwrapErr indicates Unwrap was called on an Err result.
	ErrCodeUnwrapErr ErrorCode = "UNWRAP_ERR"
	// ErrCodeUnwrapOk indicates UnwrapErr was called on an Ok result.
	ErrCodeUnwrapOk ErrorCode = "UNWRAP_OK"
	// ErrCodeExpect indicates Expect/ExpectErr failed with a caller-supplied message.
	ErrCodeExpect ErrorCode = "EXPECT_FAILED"
)

// Runtime errors
const (
	// ErrCodePanic indicates a recovered panic that did not carry an AppError.
	ErrCodePanic ErrorCode = "PANIC"
	// ErrCodeInvalidConfig indicates configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

var programmerCodes = map[ErrorCode]bool{
	ErrCodeUnwrapNone: true,
	ErrCodeUnwrapErr:  true,
	ErrCodeUnwrapOk:   true,
	ErrCodeExpect:     true,
}

// IsProgrammerCode reports whether the code signals a logic defect in the caller.
func IsProgrammerCode(code ErrorCode) bool {
	return programmerCodes[code]
}
