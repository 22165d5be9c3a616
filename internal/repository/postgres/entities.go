// internal/repository/postgres/entities.go
package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// accountRow mirrors the accounts table. Accounts carry no state of their
// own; balances are derived entirely from activities.
type accountRow struct {
	ID int64 `db:"id"`
}

// activityRow mirrors the activities table.
type activityRow struct {
	ID              int64           `db:"id"`
	Timestamp       time.Time       `db:"timestamp"`
	OwnerAccountID  int64           `db:"owner_account_id"`
	SourceAccountID int64           `db:"source_account_id"`
	TargetAccountID int64           `db:"target_account_id"`
	Amount          decimal.Decimal `db:"amount"`
	Currency        string          `db:"currency"`
}
