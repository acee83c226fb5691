package loans

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/dto"
	"github.com/GlebRadaev/gamebank/internal/handlers/respond"
	"github.com/GlebRadaev/gamebank/internal/service/loanservice"
	"github.com/GlebRadaev/gamebank/pkg/auth"
	"github.com/GlebRadaev/gamebank/pkg/utils"
)

//go:generate mockgen -source=loans.go -destination=mock_loans.go -package=loans

type Service interface {
	Create(ctx context.Context, in loanservice.CreateLoanInput) (*domain.PeerLoan, error)
	Repay(ctx context.Context, loanID, collectorID string) (*loanservice.RepayResult, error)
	ReleaseCollateral(ctx context.Context, loanID, borrowerID string) (*domain.PeerLoan, error)
	Get(ctx context.Context, loanID string) (*domain.PeerLoan, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.PeerLoan, error)
}

type LoanHandler struct {
	loanService Service
	now         func() time.Time
}

func New(loanService Service) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		now:         time.Now,
	}
}

// CreateLoan godoc
//
//	@Summary		Record a loan between two players
//	@Description	Called by the game server once both players accepted the terms. Moves the principal from the lender to the borrower. Either both transfers happen or neither does.
//	@Tags			Peer loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateLoanRequestDTO	true	"Loan"
//	@Success		201		{object}	dto.LoanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		402		{object}	utils.Response	"Lender cannot cover the principal"
//	@Failure		403		{object}	utils.Response	"Not a game server token"
//	@Failure		404		{object}	utils.Response	"Unknown player"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/loans [post]
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}
	if !req.DueDate.After(h.now()) {
		respond.Error(w, r, domain.Validation(domain.CodeInvalidInput, "due date must be in the future"))
		return
	}

	loan, err := h.loanService.Create(r.Context(), loanservice.CreateLoanInput{
		LenderID:    req.LenderID,
		BorrowerID:  req.BorrowerID,
		Principal:   req.Principal,
		RepayAmount: req.RepayAmount,
		DueDate:     req.DueDate,
		Collateral:  req.Collateral,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewLoanResponse(loan))
}

// RepayLoan godoc
//
//	@Summary		Collect a due loan
//	@Description	Called by the game server. Collects what the borrower can pay and hands it to the collector. With collateral the full amount is taken or the collateral is seized.
//	@Tags			Peer loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			loanID	path		string					true	"Loan id"
//	@Param			request	body		dto.RepayLoanRequestDTO	true	"Collector"
//	@Success		200		{object}	dto.RepayLoanResponseDTO
//	@Failure		400		{object}	utils.Response	"Nothing to collect"
//	@Failure		403		{object}	utils.Response	"Not a game server token"
//	@Failure		404		{object}	utils.Response	"Loan not found"
//	@Failure		409		{object}	utils.Response	"Loan not due or already settled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/loans/{loanID}/repay [post]
func (h *LoanHandler) RepayLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.RepayLoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	result, err := h.loanService.Repay(r.Context(), chi.URLParam(r, "loanID"), req.CollectorID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RepayLoanResponseDTO{
		Outcome:    string(result.Outcome),
		Collected:  result.Collected,
		Remaining:  result.Remaining,
		Collateral: result.Collateral,
		Loan:       dto.NewLoanResponse(result.Loan),
	})
}

// ReleaseCollateral godoc
//
//	@Summary		Take back collateral
//	@Description	The borrower of a fully repaid loan takes its collateral back.
//	@Tags			Peer loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			loanID	path		string	true	"Loan id"
//	@Success		200		{object}	dto.LoanResponseDTO
//	@Failure		404		{object}	utils.Response	"Loan not found"
//	@Failure		409		{object}	utils.Response	"Not releasable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/loans/{loanID}/release-collateral [post]
func (h *LoanHandler) ReleaseCollateral(w http.ResponseWriter, r *http.Request) {
	loan, err := h.loanService.ReleaseCollateral(r.Context(), chi.URLParam(r, "loanID"), auth.AccountID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponse(loan))
}

// GetLoan godoc
//
//	@Summary		Get a loan
//	@Tags			Peer loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			loanID	path		string	true	"Loan id"
//	@Success		200		{object}	dto.LoanResponseDTO
//	@Failure		404		{object}	utils.Response	"Loan not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/loans/{loanID} [get]
//	@Router			/api/admin/loans/{loanID} [get]
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loan, err := h.loanService.Get(r.Context(), chi.URLParam(r, "loanID"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponse(loan))
}

// ListLoans godoc
//
//	@Summary		List loans
//	@Description	Loans where the caller is lender or borrower.
//	@Tags			Peer loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LoanResponseDTO
//	@Success		204	{object}	utils.Response	"No loans"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loans [get]
func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.ListByAccount(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if len(loans) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.LoanResponseDTO, len(loans))
	for i := range loans {
		response[i] = dto.NewLoanResponse(&loans[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
