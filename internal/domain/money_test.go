// internal/domain/money_test.go
package domain

import (
	"testing"

	"moneyflow/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyAdd(t *testing.T) {
	t.Run("SameCurrency", func(t *testing.T) {
		sum, err := NewMoney(999, "EUR").Add(NewMoney(1, "EUR"))
		require.NoError(t, err)
		assert.True(t, sum.Equal(NewMoney(1000, "EUR")))
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		_, err := NewMoney(100, "EUR").Add(NewMoney(100, "USD"))
		assert.ErrorIs(t, err, util.ErrCurrencyMismatch)
	})

	t.Run("NeutralZeroAdoptsCurrency", func(t *testing.T) {
		sum, err := Money{}.Add(NewMoney(500, "EUR"))
		require.NoError(t, err)
		assert.True(t, sum.Equal(NewMoney(500, "EUR")))

		sum, err = NewMoney(500, "EUR").Add(Money{})
		require.NoError(t, err)
		assert.True(t, sum.Equal(NewMoney(500, "EUR")))
	})
}

func TestMoneySubtract(t *testing.T) {
	t.Run("SameCurrency", func(t *testing.T) {
		diff, err := NewMoney(1555, "EUR").Subtract(NewMoney(555, "EUR"))
		require.NoError(t, err)
		assert.True(t, diff.Equal(NewMoney(1000, "EUR")))
	})

	t.Run("NegativeResult", func(t *testing.T) {
		diff, err := NewMoney(100, "EUR").Subtract(NewMoney(101, "EUR"))
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
		assert.False(t, diff.IsPositive())
		assert.False(t, diff.IsZero())
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		_, err := NewMoney(100, "EUR").Subtract(NewMoney(100, "USD"))
		assert.ErrorIs(t, err, util.ErrCurrencyMismatch)
	})
}

func TestMoneyComparisons(t *testing.T) {
	t.Run("GreaterThan", func(t *testing.T) {
		greater, err := NewMoney(1_000_001, "EUR").GreaterThan(NewMoney(1_000_000, "EUR"))
		require.NoError(t, err)
		assert.True(t, greater)

		greater, err = NewMoney(1_000_000, "EUR").GreaterThan(NewMoney(1_000_000, "EUR"))
		require.NoError(t, err)
		assert.False(t, greater)
	})

	t.Run("GreaterThanCurrencyMismatch", func(t *testing.T) {
		_, err := NewMoney(1, "EUR").GreaterThan(NewMoney(1, "USD"))
		assert.ErrorIs(t, err, util.ErrCurrencyMismatch)
	})

	t.Run("SignTests", func(t *testing.T) {
		assert.True(t, ZeroMoney("EUR").IsZero())
		assert.True(t, NewMoney(1, "EUR").IsPositive())
		assert.True(t, NewMoney(-1, "EUR").IsNegative())
	})

	t.Run("EqualityIsValueEquality", func(t *testing.T) {
		assert.True(t, NewMoney(100, "EUR").Equal(NewMoneyFromDecimal(decimal.NewFromInt(100), "EUR")))
		assert.False(t, NewMoney(100, "EUR").Equal(NewMoney(100, "USD")))
		assert.False(t, NewMoney(100, "EUR").Equal(NewMoney(101, "EUR")))
	})
}

func TestMoneyNegate(t *testing.T) {
	neg := NewMoney(42, "EUR").Negate()
	assert.True(t, neg.Equal(NewMoney(-42, "EUR")))
	assert.True(t, neg.Negate().Equal(NewMoney(42, "EUR")))
}
