// internal/repository/memory/store.go
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"moneyflow/internal/domain"
	"moneyflow/internal/util"
)

// Store is an in-memory implementation of the account persistence ports. It
// backs tests and local runs without a database.
type Store struct {
	mu             sync.RWMutex
	accounts       map[domain.AccountID]struct{}
	activities     []domain.Activity // persisted activities, all id-bearing
	nextAccountID  domain.AccountID
	nextActivityID domain.ActivityID
	currency       string
}

// NewStore creates an empty Store for the given deployment currency.
func NewStore(currency string) *Store {
	return &Store{
		accounts:       make(map[domain.AccountID]struct{}),
		nextAccountID:  1,
		nextActivityID: 1,
		currency:       currency,
	}
}

// CreateAccount registers a new empty account and returns its id.
func (s *Store) CreateAccount() domain.AccountID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextAccountID
	s.nextAccountID++
	s.accounts[id] = struct{}{}
	return id
}

// SaveActivity persists a single fresh activity and returns it id-bearing.
// An activity that already carries an id is rejected, not skipped.
func (s *Store) SaveActivity(activity domain.Activity) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveActivityLocked(activity)
}

func (s *Store) saveActivityLocked(activity domain.Activity) (domain.Activity, error) {
	if activity.ID != nil {
		return domain.Activity{}, fmt.Errorf("activity %d: %w", *activity.ID, util.ErrActivityAlreadyPersisted)
	}

	persisted := domain.NewPersistedActivity(
		s.nextActivityID,
		activity.OwnerAccountID,
		activity.SourceAccountID,
		activity.TargetAccountID,
		activity.Timestamp,
		activity.Money,
	)
	s.nextActivityID++
	s.activities = append(s.activities, persisted)
	return persisted, nil
}

// LoadAccount reconstructs an account as of baselineDate.
func (s *Store) LoadAccount(_ context.Context, accountID domain.AccountID, baselineDate time.Time) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.accounts[accountID]; !ok {
		return nil, fmt.Errorf("account %d: %w", accountID, util.ErrNotFound)
	}

	baseline := domain.ZeroMoney(s.currency)
	var window []domain.Activity
	for _, activity := range s.activities {
		if activity.OwnerAccountID != accountID {
			continue
		}
		if activity.Timestamp.Before(baselineDate) {
			if activity.TargetAccountID == accountID {
				baseline, _ = baseline.Add(activity.Money)
			}
			if activity.SourceAccountID == accountID {
				baseline, _ = baseline.Subtract(activity.Money)
			}
			continue
		}
		window = append(window, activity)
	}

	return domain.ReconstituteAccount(accountID, baseline, domain.NewActivityWindow(window...)), nil
}

// UpdateActivities persists the account's fresh activities and returns them
// with their assigned ids.
func (s *Store) UpdateActivities(_ context.Context, account *domain.Account) ([]domain.Activity, error) {
	fresh := account.UnpersistedActivities()
	if len(fresh) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	persisted := make([]domain.Activity, 0, len(fresh))
	for _, activity := range fresh {
		saved, err := s.saveActivityLocked(activity)
		if err != nil {
			return nil, err
		}
		persisted = append(persisted, saved)
	}
	return persisted, nil
}
