package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/dto"
	"github.com/GlebRadaev/gamebank/pkg/auth"
	"github.com/GlebRadaev/gamebank/pkg/utils"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func playerRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	return r.WithContext(context.WithValue(r.Context(), auth.AccountIDKey, "steve"))
}

func adminRequest(method, target, accountID, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountID", accountID)
	ctx := context.WithValue(r.Context(), auth.AccountIDKey, "game-server")
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestGetAccountHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.AccountResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), "steve").
					Return(&domain.Account{ID: "steve", Name: "Steve", Balance: 700}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.AccountResponseDTO{ID: "steve", Name: "Steve", Balance: 700},
		},
		{
			name: "Account not found",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), "steve").
					Return(nil, domain.NotFound(domain.CodeAccountNotFound, "account not found"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), "steve").
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.GetAccount(w, playerRequest(http.MethodGet, "/api/account", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.AccountResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().GetBalance(gomock.Any(), "steve").Return(int64(1500), nil)

	w := httptest.NewRecorder()
	handler.GetBalance(w, playerRequest(http.MethodGet, "/api/account/balance", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.BalanceResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, dto.BalanceResponseDTO{AccountID: "steve", Balance: 1500}, body)
}

func TestGetMovementsHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Default limit",
			target: "/api/account/movements",
			prepareMock: func() {
				service.EXPECT().Movements(gomock.Any(), "steve", 0).Return([]domain.MoneyMovement{
					{ID: 2, AccountID: "steve", Delta: -100, Source: "cheque", CreatedAt: at},
					{ID: 1, AccountID: "steve", Delta: 500, Deposit: true, Source: "quest", CreatedAt: at},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Explicit limit",
			target: "/api/account/movements?limit=1",
			prepareMock: func() {
				service.EXPECT().Movements(gomock.Any(), "steve", 1).Return([]domain.MoneyMovement{
					{ID: 2, AccountID: "steve", Delta: -100, CreatedAt: at},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:         "Invalid limit",
			target:       "/api/account/movements?limit=many",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "No movements",
			target: "/api/account/movements",
			prepareMock: func() {
				service.EXPECT().Movements(gomock.Any(), "steve", 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.GetMovements(w, playerRequest(http.MethodGet, tt.target, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MovementResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)
	meta := domain.MovementMeta{Source: "quest_reward", Note: "Dragon slain"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deposit",
			body: `{"amount":500,"source":"quest_reward","note":"Dragon slain"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), "alex", int64(500), meta).Return(int64(500), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid JSON",
			body:          `{"amount":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Non positive amount",
			body:          `{"amount":-5,"source":"quest_reward"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unknown player",
			body: `{"amount":500,"source":"quest_reward","note":"Dragon slain"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), "alex", int64(500), meta).
					Return(int64(0), domain.PlayerNotFound("alex", errors.New("404")))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "player alex not found: 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Deposit(w, adminRequest(http.MethodPost, "/api/admin/accounts/alex/deposit", "alex", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestWithdrawHandler_InsufficientFunds(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Withdraw(gomock.Any(), "alex", int64(600), domain.MovementMeta{Source: "shop"}).
		Return(int64(0), domain.InsufficientFunds("balance 500 is below 600"))

	w := httptest.NewRecorder()
	handler.Withdraw(w, adminRequest(http.MethodPost, "/api/admin/accounts/alex/withdraw", "alex", `{"amount":600,"source":"shop"}`))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	var resp utils.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "INSUFFICIENT_FUNDS", resp.Code)
}
