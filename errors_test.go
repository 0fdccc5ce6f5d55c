package ahocorasick_test

import (
	stderrs "errors"
	"testing"

	ac "github.com/relkin/ahocorasick"
)

func TestErrorAs(t *testing.T) {
	err := ac.ErrEmptyPattern
	e, ok := ac.As(err)
	if !ok {
		t.Fatalf("As(ErrEmptyPattern): ok = false")
	}
	if e.Code() != ac.ErrorCodeEmptyPattern {
		t.Fatalf("Code() = %v, want ErrorCodeEmptyPattern", e.Code())
	}
}

func TestErrorAs_NonMatchingError(t *testing.T) {
	if _, ok := ac.As(stderrs.New("boom")); ok {
		t.Fatalf("As(plain error): ok = true, want false")
	}
}

func TestCodeOf_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := stderrs.Join(stderrs.New("context"), ac.ErrNotFinalized)
	if code := ac.CodeOf(wrapped); code != ac.ErrorCodeNotFinalized {
		t.Fatalf("CodeOf(wrapped): got %v, want ErrorCodeNotFinalized", code)
	}
}

func TestCodeOf_UnknownForPlainError(t *testing.T) {
	if code := ac.CodeOf(stderrs.New("boom")); code != ac.ErrorCodeUnknown {
		t.Fatalf("CodeOf(plain error): got %v, want ErrorCodeUnknown", code)
	}
}
