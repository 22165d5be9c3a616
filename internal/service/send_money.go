// internal/service/send_money.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"moneyflow/internal/domain"
	"moneyflow/internal/events"
	"moneyflow/internal/port"
	"moneyflow/internal/util"
	"moneyflow/pkg/metrics"
)

// SendMoneyCommand describes one transfer: which account pays, which account
// receives, and how much. Use NewSendMoneyCommand so invalid commands never
// reach the service.
type SendMoneyCommand struct {
	SourceAccountID domain.AccountID
	TargetAccountID domain.AccountID
	Money           domain.Money
}

// NewSendMoneyCommand validates and builds a transfer command.
func NewSendMoneyCommand(source, target domain.AccountID, money domain.Money) (SendMoneyCommand, error) {
	if !money.IsPositive() {
		return SendMoneyCommand{}, fmt.Errorf("%w: transfer amount must be positive", util.ErrInvalidInput)
	}
	if source == target {
		return SendMoneyCommand{}, util.ErrSameAccountTransfer
	}
	return SendMoneyCommand{
		SourceAccountID: source,
		TargetAccountID: target,
		Money:           money,
	}, nil
}

// SendMoneyUseCase is the inbound interface for sending money.
type SendMoneyUseCase interface {
	SendMoney(ctx context.Context, cmd SendMoneyCommand) error
}

// TransferProperties carries the configured business limits of the service.
type TransferProperties struct {
	// MaximumTransferThreshold is the largest amount a single transfer may move.
	MaximumTransferThreshold domain.Money
	// BaselineLookback bounds how far back activities are loaded when
	// reconstructing an account.
	BaselineLookback time.Duration
}

// DefaultTransferProperties returns the stock limits: a 1,000,000 minor-unit
// ceiling and a ten-day activity lookback.
func DefaultTransferProperties(currency string) TransferProperties {
	return TransferProperties{
		MaximumTransferThreshold: domain.NewMoney(1_000_000, currency),
		BaselineLookback:         10 * 24 * time.Hour,
	}
}

// SendMoneyService orchestrates a transfer between two accounts: load both,
// enforce the threshold, lock, mutate, persist, unlock.
type SendMoneyService struct {
	loadAccount port.LoadAccountPort
	accountLock port.AccountLock
	updateState port.UpdateAccountStatePort
	publisher   port.EventPublisher // optional
	collector   *metrics.Collector  // optional
	props       TransferProperties
	logger      *slog.Logger
}

// NewSendMoneyService creates a SendMoneyService. publisher and collector may
// be nil; events and metrics are then skipped.
func NewSendMoneyService(
	loadAccount port.LoadAccountPort,
	accountLock port.AccountLock,
	updateState port.UpdateAccountStatePort,
	publisher port.EventPublisher,
	collector *metrics.Collector,
	props TransferProperties,
	logger *slog.Logger,
) *SendMoneyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SendMoneyService{
		loadAccount: loadAccount,
		accountLock: accountLock,
		updateState: updateState,
		publisher:   publisher,
		collector:   collector,
		props:       props,
		logger:      logger,
	}
}

// SendMoney executes the transfer. It returns nil only if the withdrawal, the
// deposit and both persistence calls succeeded. Every failure path releases
// whatever locks were taken, in reverse acquisition order.
func (s *SendMoneyService) SendMoney(ctx context.Context, cmd SendMoneyCommand) (err error) {
	start := time.Now()
	defer func() {
		if s.collector != nil {
			s.collector.RecordTransfer(time.Since(start), err == nil)
		}
	}()

	if err = s.checkThreshold(cmd); err != nil {
		return err
	}

	baselineDate := time.Now().UTC().Add(-s.props.BaselineLookback)

	sourceAccount, err := s.loadAccount.LoadAccount(ctx, cmd.SourceAccountID, baselineDate)
	if err != nil {
		return fmt.Errorf("send money: failed to load source account %d: %w", cmd.SourceAccountID, err)
	}
	targetAccount, err := s.loadAccount.LoadAccount(ctx, cmd.TargetAccountID, baselineDate)
	if err != nil {
		return fmt.Errorf("send money: failed to load target account %d: %w", cmd.TargetAccountID, err)
	}

	// Loaded accounts are always persisted; an absent id here is a bug in the
	// persistence adapter, not a recoverable business failure.
	if sourceAccount.ID == nil || targetAccount.ID == nil {
		s.logger.Error("Loaded account without an id",
			"source_account_id", cmd.SourceAccountID,
			"target_account_id", cmd.TargetAccountID)
		return fmt.Errorf("send money: loaded account: %w", util.ErrMissingAccountID)
	}
	sourceID := *sourceAccount.ID
	targetID := *targetAccount.ID

	s.accountLock.Lock(sourceID)
	defer s.accountLock.Release(sourceID)

	if err = sourceAccount.Withdraw(cmd.Money, targetID); err != nil {
		// The target was never locked on this branch.
		return fmt.Errorf("send money: source account %d: %w", sourceID, err)
	}

	s.accountLock.Lock(targetID)
	defer s.accountLock.Release(targetID)

	if err = targetAccount.Deposit(cmd.Money, sourceID); err != nil {
		return fmt.Errorf("send money: target account %d: %w", targetID, err)
	}

	if _, err = s.updateState.UpdateActivities(ctx, sourceAccount); err != nil {
		return fmt.Errorf("send money: failed to persist source account %d activities: %w", sourceID, err)
	}
	if _, err = s.updateState.UpdateActivities(ctx, targetAccount); err != nil {
		// The source withdrawal is already persisted at this point. The
		// transfer is left half-applied and the error surfaced to the caller.
		return fmt.Errorf("send money: failed to persist target account %d activities: %w", targetID, err)
	}

	s.publishTransferCompleted(ctx, cmd)

	s.logger.Info("Transfer completed",
		"source_account_id", sourceID,
		"target_account_id", targetID,
		"amount", cmd.Money.String())

	return nil
}

func (s *SendMoneyService) checkThreshold(cmd SendMoneyCommand) error {
	exceeds, err := cmd.Money.GreaterThan(s.props.MaximumTransferThreshold)
	if err != nil {
		return fmt.Errorf("send money: %w", err)
	}
	if exceeds {
		return &util.ThresholdExceededError{
			Threshold: s.props.MaximumTransferThreshold.String(),
			Actual:    cmd.Money.String(),
		}
	}
	return nil
}

// publishTransferCompleted emits the completion event. Publishing is best
// effort: the transfer is already durable, so a broker failure is only logged.
func (s *SendMoneyService) publishTransferCompleted(ctx context.Context, cmd SendMoneyCommand) {
	if s.publisher == nil {
		return
	}

	event := events.TransferCompleted{
		TransferID:      uuid.New().String(),
		SourceAccountID: cmd.SourceAccountID,
		TargetAccountID: cmd.TargetAccountID,
		Amount:          cmd.Money.Amount,
		Currency:        cmd.Money.Currency,
		OccurredAt:      time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish transfer completed event",
			"source_account_id", cmd.SourceAccountID,
			"target_account_id", cmd.TargetAccountID,
			"error", err)
	}
}
