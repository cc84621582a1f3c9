package pw

import (
	"errors"
	"fmt"
	"testing"
)

func TestPwError(t *testing.T) {
	err := NewPwError(ErrorCodeLoopFailed, "loop failed")

	if err.Code() != ErrorCodeLoopFailed {
		t.Errorf("Code() = %d, want %d", err.Code(), ErrorCodeLoopFailed)
	}

	if err.Message() != "loop failed" {
		t.Errorf("Message() = %q, want %q", err.Message(), "loop failed")
	}

	expected := "loop failed (code: -3)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestPwErrorTypeAssertion(t *testing.T) {
	var err error = NewPwError(ErrorCodeClosed, "closed")

	pwErr, ok := err.(PwError)
	if !ok {
		t.Fatal("type assertion to PwError failed")
	}

	if pwErr.Code() != ErrorCodeClosed {
		t.Errorf("Code() = %d, want %d", pwErr.Code(), ErrorCodeClosed)
	}
}

func TestPwErrorWithErrors(t *testing.T) {
	err := NewPwError(ErrorCodeBuildFailed, "build failed")

	// errors.Is matches by error code (message is ignored)
	if !errors.Is(err, NewPwError(ErrorCodeBuildFailed, "different message")) {
		t.Error("errors.Is should match PwError with same code")
	}

	// errors.Is should not match different codes
	if errors.Is(err, NewPwError(ErrorCodeLoopFailed, "build failed")) {
		t.Error("errors.Is should not match PwError with different code")
	}

	// Sentinel errors should work with errors.Is
	if !errors.Is(err, ErrBuildFailed) {
		t.Error("errors.Is should match the ErrBuildFailed sentinel")
	}
}

func TestPwErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: main loop", ErrBuildFailed)

	if !errors.Is(wrapped, ErrBuildFailed) {
		t.Error("errors.Is should match ErrBuildFailed through wrapping")
	}

	var pwErr PwError
	if !errors.As(wrapped, &pwErr) {
		t.Fatal("errors.As should extract PwError from the chain")
	}
	if pwErr.Code() != ErrorCodeBuildFailed {
		t.Errorf("Code() = %d, want %d", pwErr.Code(), ErrorCodeBuildFailed)
	}
}
