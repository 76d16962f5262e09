package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New(t *testing.T) {
	err := New(ErrCodeExpect, "boom")
	if err.Code != ErrCodeExpect {
		t.Errorf("expected code %s, got %s", ErrCodeExpect, err.Code)
	}
	if err.Error() != "EXPECT_FAILED: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestAppError_WithCause(t *testing.T) {
	cause := stderrors.New("root")
	err := New(ErrCodePanic, "wrapped").WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "cause: root") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestUnwrapNone_Message(t *testing.T) {
	err := UnwrapNone()
	if err.Message != "called Option.Unwrap() on a None value" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if !IsProgrammerCode(err.Code) {
		t.Error("UNWRAP_NONE should be a programmer error")
	}
}

func TestUnwrapErr_KeepsErrorCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := UnwrapErr(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected error payload to become the cause")
	}
	if err.Details["err"] != cause {
		t.Errorf("expected payload detail, got %v", err.Details["err"])
	}

	plain := UnwrapErr("not an error")
	if plain.Cause != nil {
		t.Error("non-error payload must not become a cause")
	}
}

func TestUnwrapOk_Detail(t *testing.T) {
	err := UnwrapOk(5)
	if err.Details["value"] != 5 {
		t.Errorf("expected value detail, got %v", err.Details["value"])
	}
}

func TestIsAndCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", InvalidConfig("bad"))
	if !Is(wrapped, ErrCodeInvalidConfig) {
		t.Error("expected Is to see through wrapping")
	}
	if Code(wrapped) != ErrCodeInvalidConfig {
		t.Errorf("unexpected code %q", Code(wrapped))
	}
	if Code(stderrors.New("plain")) != "" {
		t.Error("plain errors have no code")
	}
	if IsAppError(stderrors.New("plain")) {
		t.Error("plain error is not an AppError")
	}
	if IsProgrammerCode(ErrCodeInvalidConfig) {
		t.Error("INVALID_CONFIG is not a programmer error")
	}
}

func TestRecover(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		if err := Recover(func() {}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("app error panic", func(t *testing.T) {
		err := Recover(func() { panic(UnwrapNone()) })
		if !Is(err, ErrCodeUnwrapNone) {
			t.Errorf("expected UNWRAP_NONE, got %v", err)
		}
	})

	t.Run("plain error panic", func(t *testing.T) {
		cause := stderrors.New("bad input")
		err := Recover(func() { panic(cause) })
		if !Is(err, ErrCodePanic) || !stderrors.Is(err, cause) {
			t.Errorf("expected wrapped PANIC, got %v", err)
		}
	})

	t.Run("value panic", func(t *testing.T) {
		err := Recover(func() { panic(42) })
		appErr, ok := AsAppError(err)
		if !ok || appErr.Message != "42" {
			t.Errorf("expected formatted panic value, got %v", err)
		}
	})
}
