// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so callers can check against a specific kind without
// string-matching an error message.
type ErrorKind string

// Error satisfies the error interface.
func (e ErrorKind) Error() string {
	return string(e)
}

const (
	// ErrDivByZero indicates a division operation's divisor was zero. Both
	// of the operation's output buffers are set to zero.
	ErrDivByZero = ErrorKind("ErrDivByZero")

	// ErrMisalignment indicates a buffer failed an implementation's
	// alignment requirement. The portable scalar implementation in this
	// package never returns it (see DESIGN.md); it is defined for interface
	// completeness and for SIMD-accelerated builds that do enforce
	// alignment.
	ErrMisalignment = ErrorKind("ErrMisalignment")
)

// MathError wraps an ErrorKind with additional context. It has full support
// for errors.Is and errors.As via Unwrap.
type MathError struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints a human-readable error.
func (e *MathError) Error() string {
	return e.Description
}

// Unwrap returns the underlying ErrorKind so errors.Is(err, ErrDivByZero)
// works as expected.
func (e *MathError) Unwrap() error {
	return e.Err
}

// mathError creates a *MathError given a kind and description.
func mathError(kind ErrorKind, desc string) *MathError {
	return &MathError{Err: kind, Description: desc}
}
