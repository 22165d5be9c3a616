// internal/lock/keyed_test.go
package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"moneyflow/internal/domain"
)

func TestKeyedAccountLockMutualExclusion(t *testing.T) {
	l := NewKeyedAccountLock()
	accountID := domain.AccountID(1)

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			l.Lock(accountID)
			defer l.Release(accountID)
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedAccountLockIndependentKeys(t *testing.T) {
	l := NewKeyedAccountLock()

	// Holding one account's lock must not block another account's.
	l.Lock(1)
	done := make(chan struct{})
	go func() {
		l.Lock(2)
		l.Release(2)
		close(done)
	}()
	<-done
	l.Release(1)
}

func TestKeyedAccountLockReleaseUnheldIsNoOp(t *testing.T) {
	l := NewKeyedAccountLock()

	assert.NotPanics(t, func() {
		l.Release(7)
		l.Release(7)
	})

	// The key is still lockable afterwards.
	l.Lock(7)
	l.Release(7)
}

func TestKeyedAccountLockRelockAfterRelease(t *testing.T) {
	l := NewKeyedAccountLock()

	l.Lock(3)
	l.Release(3)
	l.Lock(3)
	l.Release(3)
}

func TestNoOpAccountLock(t *testing.T) {
	l := NewNoOpAccountLock()

	assert.NotPanics(t, func() {
		l.Lock(1)
		l.Lock(1) // the no-op provides no exclusion
		l.Release(1)
		l.Release(1)
	})
}
