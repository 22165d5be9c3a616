// internal/domain/activity_window.go
package domain

import "time"

// ActivityWindow is the bounded slice of an account's recent activities,
// loaded back to some baseline date. Activities keep their append order,
// which is not necessarily chronological.
type ActivityWindow struct {
	activities []Activity
}

// NewActivityWindow creates a window over the given activities.
func NewActivityWindow(activities ...Activity) *ActivityWindow {
	return &ActivityWindow{activities: activities}
}

// Activities returns the activities in append order.
func (w *ActivityWindow) Activities() []Activity {
	return w.activities
}

// AddActivity appends an activity to the window. It does not validate
// ownership or amount sign; that is the Account's responsibility.
func (w *ActivityWindow) AddActivity(activity Activity) {
	w.activities = append(w.activities, activity)
}

// StartTimestamp returns the earliest activity timestamp.
// The second return value is false for an empty window.
func (w *ActivityWindow) StartTimestamp() (time.Time, bool) {
	if len(w.activities) == 0 {
		return time.Time{}, false
	}
	start := w.activities[0].Timestamp
	for _, activity := range w.activities[1:] {
		if activity.Timestamp.Before(start) {
			start = activity.Timestamp
		}
	}
	return start, true
}

// EndTimestamp returns the latest activity timestamp.
// The second return value is false for an empty window.
func (w *ActivityWindow) EndTimestamp() (time.Time, bool) {
	if len(w.activities) == 0 {
		return time.Time{}, false
	}
	end := w.activities[0].Timestamp
	for _, activity := range w.activities[1:] {
		if activity.Timestamp.After(end) {
			end = activity.Timestamp
		}
	}
	return end, true
}

// CalculateBalance sums the window for one account: credits where the account
// is the target minus debits where it is the source. The result is the same
// regardless of iteration order.
func (w *ActivityWindow) CalculateBalance(accountID AccountID) Money {
	balance := Money{}
	for _, activity := range w.activities {
		if activity.TargetAccountID == accountID {
			// Window activities for one account share a currency, so these
			// additions cannot fail.
			balance, _ = balance.Add(activity.Money)
		}
		if activity.SourceAccountID == accountID {
			balance, _ = balance.Subtract(activity.Money)
		}
	}
	return balance
}
