// Package errors provides the failure values raised by seqkit.
//
// Calling Unwrap or Expect on the wrong Option/Result variant is a programmer
// error: those methods panic with an *AppError carrying a machine-readable
// code. Recover converts such a panic back into an ordinary error, which is
// how asynchronous futures surface callback panics at the failing pull.
package errors
