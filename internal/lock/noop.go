// internal/lock/noop.go
package lock

import "moneyflow/internal/domain"

// NoOpAccountLock honors the AccountLock protocol without providing any
// exclusion. It exists as a test double and as the stand-in for deployments
// where the persistence layer serializes mutations itself.
type NoOpAccountLock struct{}

// NewNoOpAccountLock creates a NoOpAccountLock.
func NewNoOpAccountLock() *NoOpAccountLock {
	return &NoOpAccountLock{}
}

func (l *NoOpAccountLock) Lock(_ domain.AccountID) {}

func (l *NoOpAccountLock) Release(_ domain.AccountID) {}
