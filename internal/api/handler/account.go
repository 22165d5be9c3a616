// internal/api/handler/account.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"moneyflow/internal/api/types"
	"moneyflow/internal/domain"
	"moneyflow/internal/service"
	"moneyflow/internal/util"
)

// DefaultTimeout bounds the handling of a single HTTP request.
const DefaultTimeout = 15 * time.Second

// AccountHandler handles HTTP requests related to account operations.
type AccountHandler struct {
	sendMoney  service.SendMoneyUseCase
	getBalance service.GetAccountBalanceQuery
	currency   string
	logger     *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(sendMoney service.SendMoneyUseCase, getBalance service.GetAccountBalanceQuery, currency string, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		sendMoney:  sendMoney,
		getBalance: getBalance,
		currency:   currency,
		logger:     logger,
	}
}

// Helper function to send JSON responses.
func (h *AccountHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *AccountHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	var thresholdErr *util.ThresholdExceededError

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrSameAccountTransfer):
		statusCode = http.StatusBadRequest
		message = "Cannot transfer to the same account"
	case util.IsError(err, util.ErrCurrencyMismatch):
		statusCode = http.StatusBadRequest
		message = "Currency mismatch"
	case errors.As(err, &thresholdErr):
		statusCode = http.StatusBadRequest
		message = thresholdErr.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusPaymentRequired // 402 Payment Required
		message = "Insufficient funds"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

func parseAccountID(r *http.Request, param string) (domain.AccountID, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, util.ErrInvalidInput
	}
	return domain.AccountID(id), nil
}

// SendMoney handles the money transfer request.
// POST /accounts/send/{sourceAccountID}/{targetAccountID}/{amount}
func (h *AccountHandler) SendMoney(w http.ResponseWriter, r *http.Request) {
	sourceAccountID, err := parseAccountID(r, "sourceAccountID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	targetAccountID, err := parseAccountID(r, "targetAccountID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	amountStr := chi.URLParam(r, "amount")
	amount, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	money := domain.NewMoney(amount, h.currency)
	command, err := service.NewSendMoneyCommand(sourceAccountID, targetAccountID, money)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.sendMoney.SendMoney(r.Context(), command); err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.SendMoneyResponse{
		Message:         "Transfer successful",
		SourceAccountID: int64(sourceAccountID),
		TargetAccountID: int64(targetAccountID),
		Amount:          money.Amount.String(),
		Currency:        money.Currency,
	})
}

// GetBalance handles the get account balance request.
// GET /accounts/{accountID}/balance
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(r, "accountID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	balance, err := h.getBalance.GetAccountBalance(r.Context(), accountID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	currency := balance.Currency
	if currency == "" {
		currency = h.currency
	}

	h.respondWithJSON(w, http.StatusOK, types.BalanceResponse{
		AccountID: int64(accountID),
		Balance:   balance.Amount,
		Currency:  currency,
	})
}
