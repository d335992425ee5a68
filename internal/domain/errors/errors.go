package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidBet          = errors.New("invalid bet")
)

// ValidationError carries field-keyed problems found in a bet request.
type ValidationError struct {
	Problems map[string][]string
}

// NewValidationError returns nil when there are no problems.
func NewValidationError(problems map[string][]string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return ErrInvalidBet.Error() + ": " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidBet
}
