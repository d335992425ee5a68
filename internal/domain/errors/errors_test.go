package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"insufficient balance", ErrInsufficientBalance},
		{"invalid bet", ErrInvalidBet},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	if err := NewValidationError(nil); err != nil {
		t.Fatalf("expected nil for empty problems, got %v", err)
	}

	err := NewValidationError(map[string][]string{
		"points": {"Bet can't be negative"},
		"number": {"out of range"},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !stdErrors.Is(err, ErrInvalidBet) {
		t.Fatalf("expected validation error to unwrap to ErrInvalidBet")
	}
	if err.Error() != "invalid bet: number, points" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("place bet: %w", err)
	var verr *ValidationError
	if !stdErrors.As(wrapped, &verr) {
		t.Fatal("expected errors.As to find ValidationError")
	}
	if len(verr.Problems["points"]) != 1 {
		t.Fatalf("unexpected problems %v", verr.Problems)
	}
}
