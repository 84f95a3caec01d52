package parity

import (
	"strings"
	"testing"
)

func TestSuccess(t *testing.T) {
	r := Success()
	if !r.Passed {
		t.Error("Success() should pass")
	}
	if r.Message != PassedMessage {
		t.Errorf("Expected message %q, got %q", PassedMessage, r.Message)
	}
}

func TestFailure(t *testing.T) {
	r := Failure("values differ")
	if r.Passed {
		t.Error("Failure() should not pass")
	}
	if r.Message != "values differ" {
		t.Errorf("Expected message %q, got %q", "values differ", r.Message)
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		results  []ValidationResult
		wantPass bool
		wantMsg  string
	}{
		{
			name:     "empty is success",
			results:  nil,
			wantPass: true,
			wantMsg:  PassedMessage,
		},
		{
			name:     "all passing",
			results:  []ValidationResult{Success(), Success(), Success()},
			wantPass: true,
			wantMsg:  PassedMessage,
		},
		{
			name:     "single failure",
			results:  []ValidationResult{Success(), Failure("mean mismatch"), Success()},
			wantPass: false,
			wantMsg:  "mean mismatch",
		},
		{
			name:     "multiple failures joined",
			results:  []ValidationResult{Failure("first"), Success(), Failure("second")},
			wantPass: false,
			wantMsg:  "first; second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.results...)
			if got.Passed != tt.wantPass {
				t.Errorf("Combine() passed = %v, want %v", got.Passed, tt.wantPass)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Combine() message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestCombineNeverShortCircuits(t *testing.T) {
	// Every failure must appear in the combined diagnostic, not just the first.
	got := Combine(Failure("a"), Failure("b"), Failure("c"))
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(got.Message, want) {
			t.Errorf("Combined message %q missing %q", got.Message, want)
		}
	}
}
