package dto

import (
	"time"

	"github.com/GlebRadaev/gamebank/internal/domain"
)

type CreateChequeRequestDTO struct {
	Amount int64  `json:"amount" validate:"required,gt=0" example:"250"`
	Note   string `json:"note" validate:"max=256" example:"For the iron"`
}

type ChequeResponseDTO struct {
	ID         string     `json:"id" example:"4539578763621486"`
	IssuerID   string     `json:"issuer_id" example:"steve"`
	Amount     int64      `json:"amount" example:"250"`
	Note       string     `json:"note,omitempty"`
	Used       bool       `json:"used" example:"false"`
	RedeemerID *string    `json:"redeemer_id,omitempty"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewChequeResponse(c *domain.Cheque) ChequeResponseDTO {
	return ChequeResponseDTO{
		ID:         c.ID,
		IssuerID:   c.IssuerID,
		Amount:     c.Amount,
		Note:       c.Note,
		Used:       c.Used,
		RedeemerID: c.RedeemerID,
		RedeemedAt: c.RedeemedAt,
		CreatedAt:  c.CreatedAt,
	}
}
