// internal/repository/postgres/account_adapter.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"moneyflow/internal/domain"
	"moneyflow/internal/repository"
	"moneyflow/internal/util"
	"moneyflow/pkg/db"
)

// AccountPersistenceAdapter implements the LoadAccountPort and
// UpdateAccountStatePort against PostgreSQL.
type AccountPersistenceAdapter struct {
	db       *sqlx.DB
	currency string
}

// NewAccountPersistenceAdapter creates an adapter. currency is the deployment
// currency stamped onto computed baseline balances.
func NewAccountPersistenceAdapter(database *sqlx.DB, currency string) *AccountPersistenceAdapter {
	return &AccountPersistenceAdapter{
		db:       database,
		currency: currency,
	}
}

// LoadAccount reconstructs an account as of baselineDate: its window holds
// the activities at or after the date, and the baseline balance nets all
// activity strictly before it.
func (a *AccountPersistenceAdapter) LoadAccount(ctx context.Context, accountID domain.AccountID, baselineDate time.Time) (*domain.Account, error) {
	account, err := a.findAccount(ctx, a.db, accountID)
	if err != nil {
		return nil, err
	}

	activities, err := a.findActivitiesSince(ctx, a.db, accountID, baselineDate)
	if err != nil {
		return nil, err
	}

	depositBalance, err := a.depositBalanceUntil(ctx, a.db, accountID, baselineDate)
	if err != nil {
		return nil, err
	}

	withdrawalBalance, err := a.withdrawalBalanceUntil(ctx, a.db, accountID, baselineDate)
	if err != nil {
		return nil, err
	}

	return toDomainAccount(account, activities, depositBalance, withdrawalBalance, a.currency), nil
}

// UpdateActivities persists the account's fresh activities inside one
// database transaction and returns them with their assigned ids.
func (a *AccountPersistenceAdapter) UpdateActivities(ctx context.Context, account *domain.Account) ([]domain.Activity, error) {
	fresh := account.UnpersistedActivities()
	if len(fresh) == 0 {
		return nil, nil
	}

	tx, err := db.BeginTx(ctx, a.db)
	if err != nil {
		return nil, fmt.Errorf("update activities: failed to begin transaction: %w", err)
	}
	defer db.RollbackTx(tx)

	executor, ok := tx.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("update activities: transaction does not implement DBExecutor")
	}

	persisted := make([]domain.Activity, 0, len(fresh))
	for _, activity := range fresh {
		saved, err := a.saveActivity(ctx, executor, activity)
		if err != nil {
			return nil, err
		}
		persisted = append(persisted, saved)
	}

	if err := db.CommitTx(tx); err != nil {
		return nil, fmt.Errorf("update activities: failed to commit transaction: %w", err)
	}
	return persisted, nil
}

func (a *AccountPersistenceAdapter) findAccount(ctx context.Context, q repository.DBExecutor, accountID domain.AccountID) (accountRow, error) {
	var account accountRow
	query := `SELECT id FROM accounts WHERE id = $1`
	err := q.GetContext(ctx, &account, query, int64(accountID))
	if err != nil {
		if err == sql.ErrNoRows {
			return accountRow{}, fmt.Errorf("account %d: %w", accountID, util.ErrNotFound)
		}
		return accountRow{}, fmt.Errorf("failed to get account %d: %w", accountID, err)
	}
	return account, nil
}

func (a *AccountPersistenceAdapter) findActivitiesSince(ctx context.Context, q repository.DBExecutor, accountID domain.AccountID, since time.Time) ([]activityRow, error) {
	activities := []activityRow{}
	query := `
		SELECT id, timestamp, owner_account_id, source_account_id, target_account_id, amount, currency
		FROM activities
		WHERE owner_account_id = $1 AND timestamp >= $2
		ORDER BY timestamp, id`
	if err := q.SelectContext(ctx, &activities, query, int64(accountID), since); err != nil {
		return nil, fmt.Errorf("failed to fetch activities for account %d: %w", accountID, err)
	}
	return activities, nil
}

func (a *AccountPersistenceAdapter) depositBalanceUntil(ctx context.Context, q repository.DBExecutor, accountID domain.AccountID, until time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM activities
		WHERE target_account_id = $1 AND owner_account_id = $1 AND timestamp < $2`
	if err := q.GetContext(ctx, &total, query, int64(accountID), until); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum deposits for account %d: %w", accountID, err)
	}
	return total, nil
}

func (a *AccountPersistenceAdapter) withdrawalBalanceUntil(ctx context.Context, q repository.DBExecutor, accountID domain.AccountID, until time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM activities
		WHERE source_account_id = $1 AND owner_account_id = $1 AND timestamp < $2`
	if err := q.GetContext(ctx, &total, query, int64(accountID), until); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum withdrawals for account %d: %w", accountID, err)
	}
	return total, nil
}

// saveActivity inserts one activity and returns it with the generated id. An
// activity that already carries an id is rejected, not skipped.
func (a *AccountPersistenceAdapter) saveActivity(ctx context.Context, q repository.DBExecutor, activity domain.Activity) (domain.Activity, error) {
	if activity.ID != nil {
		return domain.Activity{}, fmt.Errorf("activity %d: %w", *activity.ID, util.ErrActivityAlreadyPersisted)
	}

	query := `
		INSERT INTO activities (timestamp, owner_account_id, source_account_id, target_account_id, amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int64
	err := q.QueryRowContext(ctx, query,
		activity.Timestamp,
		int64(activity.OwnerAccountID),
		int64(activity.SourceAccountID),
		int64(activity.TargetAccountID),
		activity.Money.Amount,
		activity.Money.Currency,
	).Scan(&id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("failed to insert activity: %w", err)
	}

	return domain.NewPersistedActivity(
		domain.ActivityID(id),
		activity.OwnerAccountID,
		activity.SourceAccountID,
		activity.TargetAccountID,
		activity.Timestamp,
		activity.Money,
	), nil
}
