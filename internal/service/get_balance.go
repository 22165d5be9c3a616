// internal/service/get_balance.go
package service

import (
	"context"
	"fmt"
	"time"

	"moneyflow/internal/domain"
	"moneyflow/internal/port"
)

// GetAccountBalanceQuery is the inbound interface for balance lookups.
type GetAccountBalanceQuery interface {
	GetAccountBalance(ctx context.Context, accountID domain.AccountID) (domain.Money, error)
}

// GetAccountBalanceService answers balance queries by reconstructing the
// account as of now and summing baseline plus window.
type GetAccountBalanceService struct {
	loadAccount port.LoadAccountPort
}

// NewGetAccountBalanceService creates a GetAccountBalanceService.
func NewGetAccountBalanceService(loadAccount port.LoadAccountPort) *GetAccountBalanceService {
	return &GetAccountBalanceService{loadAccount: loadAccount}
}

// GetAccountBalance returns the current balance of the account.
func (s *GetAccountBalanceService) GetAccountBalance(ctx context.Context, accountID domain.AccountID) (domain.Money, error) {
	account, err := s.loadAccount.LoadAccount(ctx, accountID, time.Now().UTC())
	if err != nil {
		return domain.Money{}, fmt.Errorf("get balance: failed to load account %d: %w", accountID, err)
	}
	return account.CalculateBalance(), nil
}
