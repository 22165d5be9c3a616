// internal/port/ports.go
package port

import (
	"context"
	"time"

	"moneyflow/internal/domain"
)

// LoadAccountPort loads an account from the system of record.
type LoadAccountPort interface {
	// LoadAccount returns the account whose activity window holds only
	// activities at or after baselineDate, and whose baseline balance
	// already nets all activity strictly before it.
	LoadAccount(ctx context.Context, accountID domain.AccountID, baselineDate time.Time) (*domain.Account, error)
}

// UpdateAccountStatePort persists the in-memory state changes of an account.
type UpdateAccountStatePort interface {
	// UpdateActivities persists every activity in the account's window that
	// lacks an id and returns them id-bearing. An activity that already has
	// an id is rejected with util.ErrActivityAlreadyPersisted.
	UpdateActivities(ctx context.Context, account *domain.Account) ([]domain.Activity, error)
}

// AccountLock is the per-account mutual-exclusion protocol the domain service
// relies on. Lock must be paired with exactly one Release on every exit path.
// Release on an unheld id is a safe no-op.
type AccountLock interface {
	Lock(accountID domain.AccountID)
	Release(accountID domain.AccountID)
}

// EventPublisher pushes domain events to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}
