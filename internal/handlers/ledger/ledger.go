package ledger

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/dto"
	"github.com/GlebRadaev/gamebank/internal/handlers/respond"
	"github.com/GlebRadaev/gamebank/pkg/utils"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

type Service interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (int64, error)
	Deposit(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (int64, error)
	Withdraw(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (int64, error)
	Movements(ctx context.Context, accountID string, limit int) ([]domain.MoneyMovement, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetAccount godoc
//
//	@Summary		Get account
//	@Description	Return the account with its display name and current balance.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/account [get]
func (h *LedgerHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.ledgerService.GetAccount(r.Context(), respond.AccountID(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		ID:      account.ID,
		Name:    account.Name,
		Balance: account.Balance,
	})
}

// GetBalance godoc
//
//	@Summary		Get balance
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/account/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := respond.AccountID(r)
	balance, err := h.ledgerService.GetBalance(r.Context(), accountID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		AccountID: accountID,
		Balance:   balance,
	})
}

// GetMovements godoc
//
//	@Summary		List money movements
//	@Description	Newest first. The limit defaults to 50 and is capped at 1000.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of movements"
//	@Success		200		{array}		dto.MovementResponseDTO
//	@Success		204		{object}	utils.Response	"No movements"
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/account/movements [get]
func (h *LedgerHandler) GetMovements(w http.ResponseWriter, r *http.Request) {
	limit, err := respond.QueryInt(r, "limit")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}

	movements, err := h.ledgerService.Movements(r.Context(), respond.AccountID(r), n)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if len(movements) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.MovementResponseDTO, len(movements))
	for i, m := range movements {
		response[i] = dto.NewMovementResponse(m)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Deposit godoc
//
//	@Summary		Deposit to an account
//	@Description	Game server only. Creates the account on its first deposit.
//	@Tags			Game server
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		string					true	"Account id"
//	@Param			request		body		dto.MovementRequestDTO	true	"Movement"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		403			{object}	utils.Response	"Not the game server"
//	@Failure		404			{object}	utils.Response	"Unknown player"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/deposit [post]
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.ledgerService.Deposit)
}

// Withdraw godoc
//
//	@Summary		Withdraw from an account
//	@Description	Game server only. Fails without any change when the balance is too low.
//	@Tags			Game server
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		string					true	"Account id"
//	@Param			request		body		dto.MovementRequestDTO	true	"Movement"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		402			{object}	utils.Response	"Insufficient funds"
//	@Failure		403			{object}	utils.Response	"Not the game server"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/withdraw [post]
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.ledgerService.Withdraw)
}

type moveFunc func(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (int64, error)

func (h *LedgerHandler) move(w http.ResponseWriter, r *http.Request, fn moveFunc) {
	var req dto.MovementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	accountID := respond.AccountID(r)
	balance, err := fn(r.Context(), accountID, req.Amount, req.Meta())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		AccountID: accountID,
		Balance:   balance,
	})
}
