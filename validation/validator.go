package validation

import (
	"strings"

	"github.com/kbukum/seqkit/errors"
)

// FieldError describes one failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects field errors.
type Validator struct {
	errors []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a failing field.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// Check records message for field when condition is false.
func (v *Validator) Check(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Errors returns the collected field errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Err returns nil when nothing failed, otherwise an INVALID_CONFIG *errors.AppError.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	messages := make([]string, 0, len(v.errors))
	for _, fe := range v.errors {
		messages = append(messages, fe.Field+": "+fe.Message)
	}
	return errors.InvalidConfig(strings.Join(messages, "; ")).WithDetail("fields", v.errors)
}
