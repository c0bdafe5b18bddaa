package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"validation", Validation("bad input"), KindValidation},
		{"authentication", Authentication("nope"), KindAuthentication},
		{"conflict", Conflict("duplicate"), KindConflict},
		{"not found", NotFound("missing"), KindNotFound},
		{"plain error", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
		{"wrapped", fmt.Errorf("outer: %w", NotFound("missing")), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("KindOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("storage blew up")
	err := Wrap(KindConflict, "email already in use", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if err.Error() != "email already in use" {
		t.Errorf("Error() = %q, want caller-safe message", err.Error())
	}
	if !IsKind(err, KindConflict) {
		t.Error("IsKind should report the wrapped kind")
	}
}
