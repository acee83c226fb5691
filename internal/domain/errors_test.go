package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Status
		code     Code
	}{
		{name: "nil", err: nil, expected: StatusOK, code: ""},
		{name: "validation", err: Validation(CodeInvalidAmount, "amount must be positive"), expected: StatusBadRequest, code: CodeInvalidAmount},
		{name: "not found", err: NotFound(CodeLoanNotFound, "loan not found"), expected: StatusNotFound, code: CodeLoanNotFound},
		{name: "player not found", err: PlayerNotFound("p1", errors.New("timeout")), expected: StatusNotFound, code: CodePlayerNotFound},
		{name: "insufficient funds", err: InsufficientFunds("balance too low"), expected: StatusConflict, code: CodeInsufficientFunds},
		{name: "conflict", err: Conflict(CodeChequeAlreadyUsed, "used"), expected: StatusConflict, code: CodeChequeAlreadyUsed},
		{name: "unexpected", err: Unexpected(CodeUnexpected, "boom", errors.New("db down")), expected: StatusInternalError, code: CodeUnexpected},
		{name: "unclassified", err: errors.New("raw"), expected: StatusInternalError, code: CodeUnexpected},
		{name: "wrapped", err: fmt.Errorf("withdraw: %w", InsufficientFunds("low")), expected: StatusConflict, code: CodeInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.err))
			assert.Equal(t, tt.code, CodeOf(tt.err))
		})
	}
}

func TestErrorUnwrapsKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unexpected(CodeStoreUnavailable, "failed to update balance", cause)

	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to update balance: connection refused", err.Error())
}

func TestAsUnexpected(t *testing.T) {
	classified := Conflict(CodeLoanSettled, "settled")
	assert.Same(t, classified, AsUnexpected("ignored", classified))

	raw := errors.New("db")
	err := AsUnexpected("failed", raw)
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, err, raw)
	assert.Equal(t, CodeStoreUnavailable, CodeOf(err))
}

func TestPeerLoanStatus(t *testing.T) {
	diamond := "diamond"
	tests := []struct {
		name string
		loan PeerLoan
		want LoanStatus
	}{
		{name: "active", loan: PeerLoan{Outstanding: 10}, want: LoanActive},
		{name: "repaid", loan: PeerLoan{Outstanding: 0, Collateral: &diamond}, want: LoanRepaid},
		{name: "released", loan: PeerLoan{Collateral: &diamond, CollateralReleased: true}, want: LoanCollateralReleased},
		{name: "seized", loan: PeerLoan{Collateral: &diamond, CollateralSeized: true}, want: LoanCollateralSeized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loan.Status())
		})
	}
}
