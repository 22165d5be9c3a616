// internal/domain/account.go
package domain

import (
	"fmt"
	"time"

	"moneyflow/internal/util"
)

// Account is the aggregate combining a baseline balance with the window of
// activities since the baseline date. The actual balance is always
// baseline + window; the full activity history never needs to be loaded.
type Account struct {
	// ID is nil for a not-yet-persisted account.
	ID *AccountID
	// BaselineBalance is the balance the account had before the first
	// activity in the window.
	BaselineBalance Money
	// ActivityWindow holds the latest activities on this account.
	ActivityWindow *ActivityWindow
}

// NewAccount creates an account without an id, i.e. one that has not been
// persisted yet.
func NewAccount(baselineBalance Money, window *ActivityWindow) *Account {
	return &Account{
		BaselineBalance: baselineBalance,
		ActivityWindow:  window,
	}
}

// ReconstituteAccount creates an account with an id from persisted state.
func ReconstituteAccount(id AccountID, baselineBalance Money, window *ActivityWindow) *Account {
	return &Account{
		ID:              &id,
		BaselineBalance: baselineBalance,
		ActivityWindow:  window,
	}
}

// CalculateBalance returns baseline balance plus the window balance. An
// account without an id contributes no window activity.
func (a *Account) CalculateBalance() Money {
	if a.ID == nil {
		return a.BaselineBalance
	}
	// Baseline and window share the account currency; Add cannot fail here.
	balance, _ := a.BaselineBalance.Add(a.ActivityWindow.CalculateBalance(*a.ID))
	return balance
}

// Withdraw tries to withdraw money from this account in favor of the target
// account. On success exactly one new activity is appended to the window;
// on failure the account is left untouched.
func (a *Account) Withdraw(money Money, targetAccountID AccountID) error {
	if a.ID == nil {
		return fmt.Errorf("withdraw: %w", util.ErrMissingAccountID)
	}

	remaining, err := a.CalculateBalance().Subtract(money)
	if err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	if remaining.IsNegative() {
		return fmt.Errorf("withdraw: %w", util.ErrInsufficientFunds)
	}

	withdrawal := NewActivity(*a.ID, *a.ID, targetAccountID, time.Now().UTC(), money)
	a.ActivityWindow.AddActivity(withdrawal)
	return nil
}

// Deposit credits money to this account from the source account. Deposits have
// no ceiling; the only requirement is a concrete id to stamp on the activity.
func (a *Account) Deposit(money Money, sourceAccountID AccountID) error {
	if a.ID == nil {
		return fmt.Errorf("deposit: %w", util.ErrMissingAccountID)
	}

	deposit := NewActivity(*a.ID, sourceAccountID, *a.ID, time.Now().UTC(), money)
	a.ActivityWindow.AddActivity(deposit)
	return nil
}

// UnpersistedActivities returns the activities appended in memory that have
// not been saved yet.
func (a *Account) UnpersistedActivities() []Activity {
	var fresh []Activity
	for _, activity := range a.ActivityWindow.Activities() {
		if activity.ID == nil {
			fresh = append(fresh, activity)
		}
	}
	return fresh
}
