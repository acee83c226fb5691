package serverloans

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/dto"
	"github.com/GlebRadaev/gamebank/internal/handlers/respond"
	"github.com/GlebRadaev/gamebank/pkg/utils"
)

//go:generate mockgen -source=serverloans.go -destination=mock_serverloans.go -package=serverloans

type Service interface {
	GetByAccount(ctx context.Context, accountID string) (*domain.ServerLoan, error)
	Borrow(ctx context.Context, accountID string, amount int64) (*domain.ServerLoan, error)
	Repay(ctx context.Context, accountID string, amount *int64) (*domain.ServerLoan, error)
	ComputeBorrowLimit(ctx context.Context, accountID string, window *int) (int64, error)
	AddDailyInterest(ctx context.Context, accountID string) (*domain.ServerLoan, error)
	SetInterestStopped(ctx context.Context, accountID string, stopped bool) (*domain.ServerLoan, error)
	SetPaymentAmount(ctx context.Context, accountID string, amount int64) (*domain.ServerLoan, error)
	ApplyDailyInterest(ctx context.Context) error
	SweepRepayments(ctx context.Context) error
}

type ServerLoanHandler struct {
	serverLoanService Service
}

func New(serverLoanService Service) *ServerLoanHandler {
	return &ServerLoanHandler{
		serverLoanService: serverLoanService,
	}
}

// GetServerLoan godoc
//
//	@Summary		Get the server loan
//	@Tags			Server loan
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ServerLoanResponseDTO
//	@Failure		404	{object}	utils.Response	"No server loan"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/server-loan [get]
func (h *ServerLoanHandler) GetServerLoan(w http.ResponseWriter, r *http.Request) {
	loan, err := h.serverLoanService.GetByAccount(r.Context(), respond.AccountID(r))
	h.respondLoan(w, r, loan, err)
}

// GetBorrowLimit godoc
//
//	@Summary		Get the borrow limit
//	@Description	Derived from the latest repayments. The window defaults to the configured one.
//	@Tags			Server loan
//	@Security		BearerAuth
//	@Produce		json
//	@Param			window	query		int	false	"Number of repayments to consider"
//	@Success		200		{object}	dto.BorrowLimitResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid window"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/server-loan/limit [get]
func (h *ServerLoanHandler) GetBorrowLimit(w http.ResponseWriter, r *http.Request) {
	window, err := respond.QueryInt(r, "window")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	accountID := respond.AccountID(r)
	limit, err := h.serverLoanService.ComputeBorrowLimit(r.Context(), accountID, window)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BorrowLimitResponseDTO{
		AccountID: accountID,
		Limit:     limit,
	})
}

// Borrow godoc
//
//	@Summary		Borrow from the server
//	@Description	Each borrow must reach the policy minimum. The total debt may not exceed the policy maximum.
//	@Tags			Server loan
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BorrowRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.ServerLoanResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount out of range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/server-loan/borrow [post]
func (h *ServerLoanHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req dto.BorrowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	loan, err := h.serverLoanService.Borrow(r.Context(), respond.AccountID(r), req.Amount)
	h.respondLoan(w, r, loan, err)
}

// Repay godoc
//
//	@Summary		Repay the server loan
//	@Description	Without an amount the configured payment amount is paid.
//	@Tags			Server loan
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RepayServerLoanRequestDTO	false	"Amount"
//	@Success		200		{object}	dto.ServerLoanResponseDTO
//	@Failure		400		{object}	utils.Response	"No payment amount"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"No server loan"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/server-loan/repay [post]
func (h *ServerLoanHandler) Repay(w http.ResponseWriter, r *http.Request) {
	var req dto.RepayServerLoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.serverLoanService.Repay(r.Context(), respond.AccountID(r), req.Amount)
	h.respondLoan(w, r, loan, err)
}

// SetPaymentAmount godoc
//
//	@Summary		Set the weekly payment amount
//	@Tags			Server loan
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentAmountRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.ServerLoanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		404		{object}	utils.Response	"No server loan"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/server-loan/payment-amount [put]
func (h *ServerLoanHandler) SetPaymentAmount(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	loan, err := h.serverLoanService.SetPaymentAmount(r.Context(), respond.AccountID(r), req.Amount)
	h.respondLoan(w, r, loan, err)
}

// AddInterest godoc
//
//	@Summary		Charge one day of interest
//	@Tags			Game server
//	@Security		BearerAuth
//	@Produce		json
//	@Param			accountID	path		string	true	"Account id"
//	@Success		200			{object}	dto.ServerLoanResponseDTO
//	@Failure		403			{object}	utils.Response	"Not the game server"
//	@Failure		404			{object}	utils.Response	"No server loan"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/server-loans/{accountID}/interest [post]
func (h *ServerLoanHandler) AddInterest(w http.ResponseWriter, r *http.Request) {
	loan, err := h.serverLoanService.AddDailyInterest(r.Context(), respond.AccountID(r))
	h.respondLoan(w, r, loan, err)
}

// SetInterestStopped godoc
//
//	@Summary		Pause or resume interest
//	@Tags			Game server
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		string							true	"Account id"
//	@Param			request		body		dto.InterestStoppedRequestDTO	true	"Flag"
//	@Success		200			{object}	dto.ServerLoanResponseDTO
//	@Failure		403			{object}	utils.Response	"Not the game server"
//	@Failure		404			{object}	utils.Response	"No server loan"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/server-loans/{accountID}/interest-stopped [put]
func (h *ServerLoanHandler) SetInterestStopped(w http.ResponseWriter, r *http.Request) {
	var req dto.InterestStoppedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.serverLoanService.SetInterestStopped(r.Context(), respond.AccountID(r), req.Stopped)
	h.respondLoan(w, r, loan, err)
}

// RunInterest godoc
//
//	@Summary		Charge interest on every server loan now
//	@Tags			Game server
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Not the game server"
//	@Failure		500	{object}	utils.Response	"Some accounts failed"
//	@Router			/api/admin/server-loans/interest [post]
func (h *ServerLoanHandler) RunInterest(w http.ResponseWriter, r *http.Request) {
	h.runJob(w, r, h.serverLoanService.ApplyDailyInterest, "interest applied")
}

// RunSweep godoc
//
//	@Summary		Collect the weekly payment of every server loan now
//	@Tags			Game server
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Not the game server"
//	@Failure		500	{object}	utils.Response	"Some accounts failed"
//	@Router			/api/admin/server-loans/sweep [post]
func (h *ServerLoanHandler) RunSweep(w http.ResponseWriter, r *http.Request) {
	h.runJob(w, r, h.serverLoanService.SweepRepayments, "repayments collected")
}

func (h *ServerLoanHandler) runJob(w http.ResponseWriter, r *http.Request, job func(ctx context.Context) error, done string) {
	if err := job(r.Context()); err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: "ok", Message: done})
}

func (h *ServerLoanHandler) respondLoan(w http.ResponseWriter, r *http.Request, loan *domain.ServerLoan, err error) {
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewServerLoanResponse(loan))
}
