package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/pkg/auth"
	"github.com/GlebRadaev/gamebank/pkg/utils"
)

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "validation",
			err:         domain.Validation(domain.CodeInvalidAmount, "amount must be positive"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_AMOUNT",
			wantMessage: "amount must be positive",
		},
		{
			name:        "not found",
			err:         domain.NotFound(domain.CodeChequeNotFound, "cheque not found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "CHEQUE_NOT_FOUND",
			wantMessage: "cheque not found",
		},
		{
			name:        "insufficient funds",
			err:         domain.InsufficientFunds("balance 5 is below 10"),
			wantStatus:  http.StatusPaymentRequired,
			wantCode:    "INSUFFICIENT_FUNDS",
			wantMessage: "balance 5 is below 10",
		},
		{
			name:        "conflict",
			err:         domain.Conflict(domain.CodeLoanSettled, "loan settled"),
			wantStatus:  http.StatusConflict,
			wantCode:    "LOAN_SETTLED",
			wantMessage: "loan settled",
		},
		{
			name:        "internal error hides cause",
			err:         domain.Unexpected(domain.CodeCompensationFailed, "refund failed", errors.New("pool closed")),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "COMPENSATION_FAILED",
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Error(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			var resp utils.Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestAccountID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/account", nil)
	r = r.WithContext(context.WithValue(r.Context(), auth.AccountIDKey, "steve"))
	assert.Equal(t, "steve", AccountID(r))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountID", "alex")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	assert.Equal(t, "alex", AccountID(r))
}

func TestQueryInt(t *testing.T) {
	v, err := QueryInt(httptest.NewRequest(http.MethodGet, "/?limit=20", nil), "limit")
	require.NoError(t, err)
	assert.Equal(t, 20, *v)

	v, err = QueryInt(httptest.NewRequest(http.MethodGet, "/", nil), "limit")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = QueryInt(httptest.NewRequest(http.MethodGet, "/?limit=ten", nil), "limit")
	assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(err))
}
