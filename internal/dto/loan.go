package dto

import (
	"time"

	"github.com/GlebRadaev/gamebank/internal/domain"
)

// CreateLoanRequestDTO is sent by the game server once both players agreed
// on the terms.
type CreateLoanRequestDTO struct {
	LenderID    string    `json:"lender_id" validate:"required" example:"steve"`
	BorrowerID  string    `json:"borrower_id" validate:"required,nefield=LenderID" example:"alex"`
	Principal   int64     `json:"principal" validate:"required,gt=0" example:"1000"`
	RepayAmount int64     `json:"repay_amount" validate:"required,gt=0" example:"1200"`
	DueDate     time.Time `json:"due_date" validate:"required" example:"2024-06-01T00:00:00Z"`
	Collateral  string    `json:"collateral,omitempty" validate:"max=128" example:"diamond"`
}

type LoanResponseDTO struct {
	ID                 string    `json:"id" example:"3f7c9a70-4a52-4c43-9c53-1f2c3f1d8a11"`
	LenderID           string    `json:"lender_id" example:"steve"`
	BorrowerID         string    `json:"borrower_id" example:"alex"`
	Principal          int64     `json:"principal" example:"1000"`
	RepayAmount        int64     `json:"repay_amount" example:"1200"`
	Outstanding        int64     `json:"outstanding" example:"600"`
	DueDate            time.Time `json:"due_date"`
	Collateral         *string   `json:"collateral,omitempty" example:"diamond"`
	CollateralReleased bool      `json:"collateral_released"`
	CollateralSeized   bool      `json:"collateral_seized"`
	Status             string    `json:"status" example:"ACTIVE"`
}

func NewLoanResponse(l *domain.PeerLoan) LoanResponseDTO {
	return LoanResponseDTO{
		ID:                 l.ID,
		LenderID:           l.LenderID,
		BorrowerID:         l.BorrowerID,
		Principal:          l.Principal,
		RepayAmount:        l.RepayAmount,
		Outstanding:        l.Outstanding,
		DueDate:            l.DueDate,
		Collateral:         l.Collateral,
		CollateralReleased: l.CollateralReleased,
		CollateralSeized:   l.CollateralSeized,
		Status:             string(l.Status()),
	}
}

type RepayLoanRequestDTO struct {
	CollectorID string `json:"collector_id" validate:"required" example:"steve"`
}

type RepayLoanResponseDTO struct {
	Outcome    string          `json:"outcome" example:"COLLECTED"`
	Collected  int64           `json:"collected" example:"600"`
	Remaining  int64           `json:"remaining" example:"600"`
	Collateral string          `json:"collateral,omitempty" example:"diamond"`
	Loan       LoanResponseDTO `json:"loan"`
}
