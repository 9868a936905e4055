package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "out of bounds",
			err:      OutOfBounds(OpIndex, 7, 5),
			contains: []string{"[index]", "out_of_bounds", "index 7", "length 5"},
		},
		{
			name: "minimal error",
			err: &Error{
				Op:   OpSlice,
				Kind: KindOutOfBounds,
			},
			contains: []string{"[slice]", "out_of_bounds"},
		},
		{
			name:     "error with cause",
			err:      InvalidPattern("[unclosed", errors.New("missing closing ]")),
			contains: []string{"[pattern]", "invalid_pattern", `"[unclosed"`, "caused by", "missing closing ]"},
		},
		{
			name:     "invalid handle",
			err:      InvalidHandle(OpQueue, 0x2_00000001),
			contains: []string{"[queue]", "invalid_handle", "0x200000001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InvalidPattern("(", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not follow the cause chain")
	}
}

func TestError_Is(t *testing.T) {
	err := OutOfBounds(OpIndex, 10, 3)

	if !errors.Is(err, &Error{Op: OpIndex, Kind: KindOutOfBounds}) {
		t.Error("expected match on same Op and Kind")
	}
	if errors.Is(err, &Error{Op: OpSlice, Kind: KindOutOfBounds}) {
		t.Error("unexpected match on different Op")
	}
	if errors.Is(err, &Error{Op: OpIndex, Kind: KindInvalidInput}) {
		t.Error("unexpected match on different Kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(OpMatch, KindInvalidInput).
		Value(-1).
		Cause(cause).
		Detail("offset %d before start of text", -1).
		Build()

	if err.Op != OpMatch || err.Kind != KindInvalidInput {
		t.Fatalf("unexpected op/kind: %s/%s", err.Op, err.Kind)
	}
	if err.Value != -1 {
		t.Errorf("Value = %v, want -1", err.Value)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not attached")
	}
	if !strings.Contains(err.Error(), "offset -1 before start of text") {
		t.Errorf("detail not formatted: %q", err.Error())
	}
}

func TestError_AsTarget(t *testing.T) {
	var wrapped error = Wrap(OpIO, KindIOFailure, errors.New("disk"), "read config")

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatal("errors.As failed")
	}
	if e.Kind != KindIOFailure {
		t.Errorf("Kind = %s, want %s", e.Kind, KindIOFailure)
	}
}
