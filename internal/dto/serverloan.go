package dto

import (
	"time"

	"github.com/GlebRadaev/gamebank/internal/domain"
)

type ServerLoanResponseDTO struct {
	AccountID       string     `json:"account_id" example:"steve"`
	Outstanding     int64      `json:"outstanding" example:"5035"`
	PaymentAmount   int64      `json:"payment_amount" example:"35"`
	LastPaidAt      *time.Time `json:"last_paid_at,omitempty"`
	FailedPayments  int        `json:"failed_payments" example:"0"`
	InterestStopped bool       `json:"interest_stopped" example:"false"`
}

func NewServerLoanResponse(l *domain.ServerLoan) ServerLoanResponseDTO {
	return ServerLoanResponseDTO{
		AccountID:       l.AccountID,
		Outstanding:     l.Outstanding,
		PaymentAmount:   l.PaymentAmount,
		LastPaidAt:      l.LastPaidAt,
		FailedPayments:  l.FailedPayments,
		InterestStopped: l.InterestStopped,
	}
}

type BorrowRequestDTO struct {
	Amount int64 `json:"amount" validate:"required,gt=0" example:"5000"`
}

// RepayServerLoanRequestDTO without an amount pays the configured payment.
type RepayServerLoanRequestDTO struct {
	Amount *int64 `json:"amount,omitempty" example:"500"`
}

type PaymentAmountRequestDTO struct {
	Amount int64 `json:"amount" validate:"required,gt=0" example:"500"`
}

type InterestStoppedRequestDTO struct {
	Stopped bool `json:"stopped" example:"true"`
}

type BorrowLimitResponseDTO struct {
	AccountID string `json:"account_id" example:"steve"`
	Limit     int64  `json:"limit" example:"12500"`
}
