// internal/domain/money.go
package domain

import (
	"fmt"

	"moneyflow/internal/util"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Money is a monetary amount tagged with a currency code. The amount is an
// exact decimal in minor units, so arithmetic never drifts the way floats do.
//
// The zero Money (zero amount, empty currency) acts as the additive identity
// and is compatible with every currency. This lets balance computations start
// from a neutral zero without knowing the currency up front.
type Money struct {
	Amount   decimal.Decimal `db:"amount" json:"amount"`
	Currency string          `db:"currency" json:"currency"`
}

// NewMoney creates a Money from a minor-unit count.
func NewMoney(minorUnits int64, currency string) Money {
	return Money{
		Amount:   decimal.NewFromInt(minorUnits),
		Currency: currency,
	}
}

// NewMoneyFromDecimal creates a Money from an exact decimal amount.
func NewMoneyFromDecimal(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// ZeroMoney returns the zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// compatibleCurrency resolves the currency a binary operation should carry,
// treating the neutral zero as compatible with anything.
func (m Money) compatibleCurrency(other Money) (string, error) {
	switch {
	case m.Currency == other.Currency:
		return m.Currency, nil
	case m.Currency == "" && m.Amount.IsZero():
		return other.Currency, nil
	case other.Currency == "" && other.Amount.IsZero():
		return m.Currency, nil
	default:
		return "", fmt.Errorf("%w: %s vs %s", util.ErrCurrencyMismatch, m.Currency, other.Currency)
	}
}

// Add returns m + other. Fails when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	currency, err := m.compatibleCurrency(other)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: currency}, nil
}

// Subtract returns m - other. Fails when the currencies differ.
func (m Money) Subtract(other Money) (Money, error) {
	currency, err := m.compatibleCurrency(other)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: currency}, nil
}

// Negate returns the amount with its sign flipped.
func (m Money) Negate() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}

// GreaterThan reports whether m > other. Fails when the currencies differ.
func (m Money) GreaterThan(other Money) (bool, error) {
	if _, err := m.compatibleCurrency(other); err != nil {
		return false, err
	}
	return m.Amount.GreaterThan(other.Amount), nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Equal is value equality on (amount, currency).
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}
