// internal/api/types/response.go
package types

import "github.com/shopspring/decimal"

// SendMoneyResponse confirms a completed transfer.
type SendMoneyResponse struct {
	Message         string `json:"message"`
	SourceAccountID int64  `json:"source_account_id"`
	TargetAccountID int64  `json:"target_account_id"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
}

// BalanceResponse carries an account's current balance.
type BalanceResponse struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
}

// ErrorResponse is the envelope for all error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}
