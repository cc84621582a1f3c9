package pw

import (
	"fmt"
)

// ErrorCode classifies errors surfaced by the binding layer
type ErrorCode int32

const (
	// ErrorCodeSuccess indicates the operation completed successfully
	ErrorCodeSuccess ErrorCode = 0

	// ErrorCodeBuildFailed indicates a constructor failed (native call returned null)
	ErrorCodeBuildFailed ErrorCode = -1

	// ErrorCodeClosed indicates the entity was already closed
	ErrorCodeClosed ErrorCode = -2

	// ErrorCodeLoopFailed indicates the main loop returned a failure code
	ErrorCodeLoopFailed ErrorCode = -3

	// ErrorCodeUnknown indicates an unknown error occurred
	ErrorCodeUnknown ErrorCode = -100
)

// PwError represents a structured error from the binding layer
type PwError struct {
	code ErrorCode
	msg  string
}

// Error implements the error interface
func (e PwError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.msg, e.code)
}

// Code returns the error code
func (e PwError) Code() ErrorCode {
	return e.code
}

// Message returns the error message without the code
func (e PwError) Message() string {
	return e.msg
}

// NewPwError creates a new PwError with the given code and message
func NewPwError(code ErrorCode, msg string) PwError {
	return PwError{code: code, msg: msg}
}

// Is reports whether target matches this error by comparing error codes.
// This enables errors.Is() support for PwError.
// Uses direct type assertion (not errors.As) to avoid recursive chain walking.
func (e PwError) Is(target error) bool {
	t, ok := target.(PwError)
	if ok {
		return e.code == t.code
	}
	return false
}

// Sentinel errors for common failure modes
var (
	// ErrBuildFailed is returned when a constructor fails (native call returned null).
	// Use errors.Is(err, pw.ErrBuildFailed) to detect construction failures.
	ErrBuildFailed = NewPwError(ErrorCodeBuildFailed, "failed to build entity")

	// ErrClosed is returned when an operation is attempted on a closed entity.
	ErrClosed = NewPwError(ErrorCodeClosed, "entity is closed")
)
