// internal/domain/testdata_test.go
package domain

import "time"

// Test data helpers shared by the domain tests.

type activityOption func(*Activity)

func withSource(id AccountID) activityOption {
	return func(a *Activity) { a.SourceAccountID = id }
}

func withTarget(id AccountID) activityOption {
	return func(a *Activity) { a.TargetAccountID = id }
}

func withMoney(m Money) activityOption {
	return func(a *Activity) { a.Money = m }
}

func withTimestamp(ts time.Time) activityOption {
	return func(a *Activity) { a.Timestamp = ts }
}

func testActivity(opts ...activityOption) Activity {
	activity := NewActivity(42, 42, 41, time.Now().UTC(), NewMoney(999, "EUR"))
	for _, opt := range opts {
		opt(&activity)
	}
	return activity
}

func testAccount(id AccountID, baseline Money, window *ActivityWindow) *Account {
	return ReconstituteAccount(id, baseline, window)
}
