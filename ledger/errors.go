package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyText           = errors.New("text must not be empty")
	ErrTierOutOfRange      = errors.New("tier out of range")
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrInsufficientBalance = errors.New("amount exceeds current balance")
)

// ValidationError reports a rejected deposit or withdrawal. The ledger is
// left untouched whenever one is returned.
type ValidationError struct {
	// Field is the input that failed validation: "text", "tier" or "amount".
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
