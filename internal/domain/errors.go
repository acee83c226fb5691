package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of them.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrConflict          = errors.New("conflict")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrUnexpected        = errors.New("unexpected error")
)

type Code string

const (
	CodeInvalidAmount        Code = "INVALID_AMOUNT"
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeAccountNotFound      Code = "ACCOUNT_NOT_FOUND"
	CodePlayerNotFound       Code = "PLAYER_NOT_FOUND"
	CodeInsufficientFunds    Code = "INSUFFICIENT_FUNDS"
	CodeChequeNotFound       Code = "CHEQUE_NOT_FOUND"
	CodeChequeAlreadyUsed    Code = "CHEQUE_ALREADY_USED"
	CodeLoanNotFound         Code = "LOAN_NOT_FOUND"
	CodeSameAccount          Code = "SAME_ACCOUNT"
	CodeBeforePaybackDate    Code = "BEFORE_PAYBACK_DATE"
	CodeLoanSettled          Code = "LOAN_SETTLED"
	CodeNothingToCollect     Code = "NOTHING_TO_COLLECT"
	CodeNotBorrower          Code = "NOT_BORROWER"
	CodeLoanNotRepaid        Code = "LOAN_NOT_REPAID"
	CodeNoCollateral         Code = "NO_COLLATERAL"
	CodeCollateralReleased   Code = "COLLATERAL_ALREADY_RELEASED"
	CodeCollateralSeized     Code = "COLLATERAL_SEIZED"
	CodeServerLoanNotFound   Code = "SERVER_LOAN_NOT_FOUND"
	CodeNoPaymentAmount      Code = "NO_PAYMENT_AMOUNT"
	CodeUnexpected           Code = "UNEXPECTED_ERROR"
	CodeCompensated          Code = "COMPENSATED"
	CodeCompensationFailed   Code = "COMPENSATION_FAILED"
	CodeStoreUnavailable     Code = "STORE_UNAVAILABLE"
	CodeQueueUnavailable     Code = "QUEUE_UNAVAILABLE"
	CodeNameServiceFailure   Code = "NAME_SERVICE_FAILURE"
	CodeInvalidLimitWindow   Code = "INVALID_WINDOW"
	CodeInvalidPaymentAmount Code = "INVALID_PAYMENT_AMOUNT"
	CodeBelowMinLoan         Code = "BELOW_MIN_LOAN_AMOUNT"
	CodeLoanLimitExceeded    Code = "LOAN_LIMIT_EXCEEDED"
)

// Error is the classified error returned by the engines. Kind is one of the
// sentinel kinds above so callers can use errors.Is(err, ErrConflict).
type Error struct {
	Kind    error
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func newError(kind error, code Code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func Validation(code Code, msg string) error {
	return newError(ErrValidation, code, msg, nil)
}

func NotFound(code Code, msg string) error {
	return newError(ErrNotFound, code, msg, nil)
}

func InsufficientFunds(msg string) error {
	return newError(ErrInsufficientFunds, CodeInsufficientFunds, msg, nil)
}

func Conflict(code Code, msg string) error {
	return newError(ErrConflict, code, msg, nil)
}

func PlayerNotFound(accountID string, cause error) error {
	return newError(ErrPlayerNotFound, CodePlayerNotFound, "player "+accountID+" not found", cause)
}

func Unexpected(code Code, msg string, cause error) error {
	return newError(ErrUnexpected, code, msg, cause)
}

// AsUnexpected keeps already classified errors and wraps anything else.
func AsUnexpected(msg string, err error) error {
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return Unexpected(CodeStoreUnavailable, msg, err)
}

type Status int

const (
	StatusOK Status = iota
	StatusBadRequest
	StatusNotFound
	StatusConflict
	StatusInternalError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBadRequest:
		return "bad_request"
	case StatusNotFound:
		return "not_found"
	case StatusConflict:
		return "conflict"
	default:
		return "internal_error"
	}
}

// StatusOf classifies an error returned by any engine.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrValidation):
		return StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPlayerNotFound):
		return StatusNotFound
	case errors.Is(err, ErrInsufficientFunds), errors.Is(err, ErrConflict):
		return StatusConflict
	default:
		return StatusInternalError
	}
}

func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeUnexpected
}
