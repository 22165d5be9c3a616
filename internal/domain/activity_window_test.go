// internal/domain/activity_window_test.go
package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityWindowTimestamps(t *testing.T) {
	first := time.Date(2019, 8, 3, 0, 0, 0, 0, time.UTC)
	between := time.Date(2019, 8, 4, 0, 0, 0, 0, time.UTC)
	last := time.Date(2019, 8, 5, 0, 0, 0, 0, time.UTC)

	// Deliberately out of chronological order: append order is not sorted.
	window := NewActivityWindow(
		testActivity(withTimestamp(between)),
		testActivity(withTimestamp(last)),
		testActivity(withTimestamp(first)),
	)

	start, ok := window.StartTimestamp()
	require.True(t, ok)
	assert.Equal(t, first, start)

	end, ok := window.EndTimestamp()
	require.True(t, ok)
	assert.Equal(t, last, end)
}

func TestActivityWindowTimestampsEmpty(t *testing.T) {
	window := NewActivityWindow()

	_, ok := window.StartTimestamp()
	assert.False(t, ok)

	_, ok = window.EndTimestamp()
	assert.False(t, ok)
}

func TestActivityWindowCalculateBalance(t *testing.T) {
	account1 := AccountID(1)
	account2 := AccountID(2)

	window := NewActivityWindow(
		testActivity(withSource(account1), withTarget(account2), withMoney(NewMoney(999, "EUR"))),
		testActivity(withSource(account1), withTarget(account2), withMoney(NewMoney(1, "EUR"))),
		testActivity(withSource(account2), withTarget(account1), withMoney(NewMoney(500, "EUR"))),
	)

	assert.True(t, window.CalculateBalance(account1).Equal(NewMoney(-500, "EUR")))
	assert.True(t, window.CalculateBalance(account2).Equal(NewMoney(500, "EUR")))
}

func TestActivityWindowBalanceForUninvolvedAccount(t *testing.T) {
	window := NewActivityWindow(
		testActivity(withSource(1), withTarget(2), withMoney(NewMoney(100, "EUR"))),
	)

	assert.True(t, window.CalculateBalance(3).IsZero())
}

func TestActivityWindowAddActivity(t *testing.T) {
	window := NewActivityWindow()
	window.AddActivity(testActivity())
	window.AddActivity(testActivity())

	assert.Len(t, window.Activities(), 2)
}
