// internal/events/events.go
package events

import (
	"time"

	"github.com/shopspring/decimal"

	"moneyflow/internal/domain"
)

// TransferCompleted is emitted after both legs of a transfer have been
// persisted.
type TransferCompleted struct {
	TransferID      string           `json:"transfer_id"`
	SourceAccountID domain.AccountID `json:"source_account_id"`
	TargetAccountID domain.AccountID `json:"target_account_id"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	OccurredAt      time.Time        `json:"occurred_at"`
}
