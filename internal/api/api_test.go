// internal/api/api_test.go
package api_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneyflow/internal/api"
	"moneyflow/internal/api/handler"
	"moneyflow/internal/api/types"
	"moneyflow/internal/domain"
	"moneyflow/internal/lock"
	"moneyflow/internal/repository/memory"
	"moneyflow/internal/service"
	"moneyflow/internal/util"
	"moneyflow/pkg/metrics"
)

const testCurrency = "EUR"

// newTestServer wires the HTTP layer against the in-memory store so the whole
// request path runs without external services.
func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore(testCurrency)
	logger := util.GetLogger()
	collector := metrics.NewCollector()

	sendMoney := service.NewSendMoneyService(
		store,
		lock.NewKeyedAccountLock(),
		store,
		nil,
		collector,
		service.DefaultTransferProperties(testCurrency),
		logger,
	)
	getBalance := service.NewGetAccountBalanceService(store)

	accountHandler := handler.NewAccountHandler(sendMoney, getBalance, testCurrency, logger)
	server := httptest.NewServer(api.NewRouter(accountHandler, collector, logger))
	t.Cleanup(server.Close)

	return server, store
}

// fundAccount creates an account and gives it an opening balance via a
// deposit from a funding account.
func fundAccount(t *testing.T, store *memory.Store, amount int64) domain.AccountID {
	t.Helper()

	id := store.CreateAccount()
	if amount > 0 {
		funding := store.CreateAccount()
		money := domain.NewMoney(amount, testCurrency)
		_, err := store.SaveActivity(domain.NewActivity(id, funding, id, time.Now().UTC(), money))
		require.NoError(t, err)
	}
	return id
}

func postSend(t *testing.T, server *httptest.Server, source, target interface{}, amount interface{}) *http.Response {
	t.Helper()

	url := fmt.Sprintf("%s/accounts/send/%v/%v/%v", server.URL, source, target, amount)
	resp, err := http.Post(url, "application/json", nil)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, dest))
}

func getBalance(t *testing.T, server *httptest.Server, accountID domain.AccountID) types.BalanceResponse {
	t.Helper()

	resp, err := http.Get(fmt.Sprintf("%s/accounts/%d/balance", server.URL, accountID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var balance types.BalanceResponse
	decodeBody(t, resp, &balance)
	return balance
}

func TestSendMoneyEndpoint_Success(t *testing.T) {
	server, store := newTestServer(t)
	source := fundAccount(t, store, 1000)
	target := fundAccount(t, store, 0)

	resp := postSend(t, server, source, target, 400)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result types.SendMoneyResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, int64(source), result.SourceAccountID)
	assert.Equal(t, int64(target), result.TargetAccountID)
	assert.Equal(t, "400", result.Amount)
	assert.Equal(t, testCurrency, result.Currency)

	assert.Equal(t, "600", getBalance(t, server, source).Balance.String())
	assert.Equal(t, "400", getBalance(t, server, target).Balance.String())
}

func TestSendMoneyEndpoint_InsufficientFunds(t *testing.T) {
	server, store := newTestServer(t)
	source := fundAccount(t, store, 100)
	target := fundAccount(t, store, 0)

	resp := postSend(t, server, source, target, 500)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	var result types.ErrorResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, "Insufficient funds", result.Error)

	// Nothing moved
	assert.Equal(t, "100", getBalance(t, server, source).Balance.String())
	assert.Equal(t, "0", getBalance(t, server, target).Balance.String())
}

func TestSendMoneyEndpoint_ThresholdExceeded(t *testing.T) {
	server, store := newTestServer(t)
	source := fundAccount(t, store, 2_000_000)
	target := fundAccount(t, store, 0)

	resp := postSend(t, server, source, target, 1_000_001)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var result types.ErrorResponse
	decodeBody(t, resp, &result)
	assert.Contains(t, result.Error, "threshold")
}

func TestSendMoneyEndpoint_UnknownAccount(t *testing.T) {
	server, store := newTestServer(t)
	source := fundAccount(t, store, 1000)

	resp := postSend(t, server, source, 999, 100)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestSendMoneyEndpoint_InvalidParams(t *testing.T) {
	server, store := newTestServer(t)
	source := fundAccount(t, store, 1000)
	target := fundAccount(t, store, 0)

	cases := []struct {
		name   string
		source interface{}
		target interface{}
		amount interface{}
	}{
		{"NonNumericSource", "abc", target, 100},
		{"NonNumericAmount", source, target, "ten"},
		{"ZeroAmount", source, target, 0},
		{"NegativeAmount", source, target, -50},
		{"SameAccount", source, source, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postSend(t, server, tc.source, tc.target, tc.amount)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.NoError(t, resp.Body.Close())
		})
	}
}

func TestGetBalanceEndpoint(t *testing.T) {
	server, store := newTestServer(t)
	account := fundAccount(t, store, 1555)

	balance := getBalance(t, server, account)
	assert.Equal(t, int64(account), balance.AccountID)
	assert.Equal(t, "1555", balance.Balance.String())
	assert.Equal(t, testCurrency, balance.Currency)
}

func TestGetBalanceEndpoint_NotFound(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/accounts/123/balance")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestMetricsEndpoint(t *testing.T) {
	server, store := newTestServer(t)
	source := fundAccount(t, store, 1000)
	target := fundAccount(t, store, 0)

	resp := postSend(t, server, source, target, 100)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	metricsResp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	require.NoError(t, metricsResp.Body.Close())
	assert.Contains(t, string(body), "transfers_completed_total")
}
