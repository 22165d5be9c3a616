// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Common application-specific errors.
var (
	ErrNotFound                 = errors.New("resource not found")
	ErrInvalidInput             = errors.New("invalid input provided")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrCurrencyMismatch         = errors.New("currency mismatch")
	ErrSameAccountTransfer      = errors.New("cannot transfer to the same account")
	ErrMissingAccountID         = errors.New("account has no id")
	ErrActivityAlreadyPersisted = errors.New("activity already has an id")
)

// IsError reports whether err matches target in its chain.
// Thin wrapper over errors.Is so callers don't import both packages.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// ThresholdExceededError is returned when a transfer amount exceeds the
// configured maximum. It carries both amounts so callers can report them.
type ThresholdExceededError struct {
	Threshold string
	Actual    string
}

func (e *ThresholdExceededError) Error() string {
	return fmt.Sprintf("maximum transfer threshold exceeded: tried to transfer %s but threshold is %s", e.Actual, e.Threshold)
}
