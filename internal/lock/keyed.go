// internal/lock/keyed.go
package lock

import (
	"sync"

	"moneyflow/internal/domain"
)

// KeyedAccountLock is an in-process AccountLock backed by one semaphore per
// account id: at most one holder per id at a time, and Release on an unheld
// id is a no-op.
//
// Callers that lock two accounts must acquire in ascending id order to stay
// deadlock-free when transfers run in both directions between the same pair.
type KeyedAccountLock struct {
	mu    sync.Mutex
	slots map[domain.AccountID]chan struct{}
}

// NewKeyedAccountLock creates an empty lock registry.
func NewKeyedAccountLock() *KeyedAccountLock {
	return &KeyedAccountLock{
		slots: make(map[domain.AccountID]chan struct{}),
	}
}

func (l *KeyedAccountLock) slot(accountID domain.AccountID) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[accountID]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[accountID] = slot
	}
	return slot
}

// Lock blocks until the account's slot is free, then takes it.
func (l *KeyedAccountLock) Lock(accountID domain.AccountID) {
	l.slot(accountID) <- struct{}{}
}

// Release frees the account's slot. Releasing an unheld id does nothing.
func (l *KeyedAccountLock) Release(accountID domain.AccountID) {
	select {
	case <-l.slot(accountID):
	default:
	}
}
