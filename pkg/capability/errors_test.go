package capability

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_IsMatchesKind(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("step failed: %w", NewError(KindIO, "writing a.json", cause))

	if !errors.Is(err, ErrIO) {
		t.Error("expected errors.Is(err, ErrIO)")
	}
	if errors.Is(err, ErrAlreadyExists) {
		t.Error("did not expect errors.Is(err, ErrAlreadyExists)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to stay in the chain")
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{NewError(KindAlreadyExists, "a.json already exists", nil), "a.json already exists"},
		{NewError(KindIO, "writing a.json", errors.New("denied")), "writing a.json: denied"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
