package dto

import (
	"time"

	"github.com/GlebRadaev/gamebank/internal/domain"
)

type AccountResponseDTO struct {
	ID      string `json:"id" example:"steve"`
	Name    string `json:"name" example:"Steve"`
	Balance int64  `json:"balance" example:"1500"`
}

type BalanceResponseDTO struct {
	AccountID string `json:"account_id" example:"steve"`
	Balance   int64  `json:"balance" example:"1500"`
}

type MovementRequestDTO struct {
	Amount      int64  `json:"amount" validate:"required,gt=0" example:"500"`
	Source      string `json:"source" validate:"required,max=64" example:"quest_reward"`
	Note        string `json:"note" validate:"max=256" example:"Dragon slain"`
	DisplayNote string `json:"display_note" validate:"max=256" example:"Quest reward"`
	Origin      string `json:"origin" validate:"max=64" example:"game-server"`
}

func (d MovementRequestDTO) Meta() domain.MovementMeta {
	return domain.MovementMeta{
		Source:      d.Source,
		Note:        d.Note,
		DisplayNote: d.DisplayNote,
		Origin:      d.Origin,
	}
}

type MovementResponseDTO struct {
	ID          int64     `json:"id" example:"42"`
	Delta       int64     `json:"delta" example:"-500"`
	Deposit     bool      `json:"deposit" example:"false"`
	Source      string    `json:"source" example:"cheque"`
	Note        string    `json:"note,omitempty"`
	DisplayNote string    `json:"display_note,omitempty"`
	Origin      string    `json:"origin,omitempty"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
}

func NewMovementResponse(m domain.MoneyMovement) MovementResponseDTO {
	return MovementResponseDTO{
		ID:          m.ID,
		Delta:       m.Delta,
		Deposit:     m.Deposit,
		Source:      m.Source,
		Note:        m.Note,
		DisplayNote: m.DisplayNote,
		Origin:      m.Origin,
		CreatedAt:   m.CreatedAt,
	}
}
