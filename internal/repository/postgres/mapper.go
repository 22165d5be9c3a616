// internal/repository/postgres/mapper.go
package postgres

import (
	"github.com/shopspring/decimal"

	"moneyflow/internal/domain"
)

func toDomainActivity(row activityRow) domain.Activity {
	return domain.NewPersistedActivity(
		domain.ActivityID(row.ID),
		domain.AccountID(row.OwnerAccountID),
		domain.AccountID(row.SourceAccountID),
		domain.AccountID(row.TargetAccountID),
		row.Timestamp,
		domain.NewMoneyFromDecimal(row.Amount, row.Currency),
	)
}

func toActivityWindow(rows []activityRow) *domain.ActivityWindow {
	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, toDomainActivity(row))
	}
	return domain.NewActivityWindow(activities...)
}

func toDomainAccount(account accountRow, activities []activityRow, depositBalance, withdrawalBalance decimal.Decimal, currency string) *domain.Account {
	baseline := domain.NewMoneyFromDecimal(depositBalance.Sub(withdrawalBalance), currency)
	return domain.ReconstituteAccount(
		domain.AccountID(account.ID),
		baseline,
		toActivityWindow(activities),
	)
}
