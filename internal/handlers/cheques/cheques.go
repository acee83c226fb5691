package cheques

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/dto"
	"github.com/GlebRadaev/gamebank/internal/handlers/respond"
	"github.com/GlebRadaev/gamebank/pkg/auth"
	"github.com/GlebRadaev/gamebank/pkg/utils"
)

//go:generate mockgen -source=cheques.go -destination=mock_cheques.go -package=cheques

type Service interface {
	Create(ctx context.Context, issuerID string, amount int64, note string) (*domain.Cheque, error)
	Redeem(ctx context.Context, id, redeemerID string) (*domain.Cheque, error)
	Get(ctx context.Context, id string) (*domain.Cheque, error)
	ListByIssuer(ctx context.Context, issuerID string, limit int) ([]domain.Cheque, error)
}

type ChequeHandler struct {
	chequeService Service
}

func New(chequeService Service) *ChequeHandler {
	return &ChequeHandler{
		chequeService: chequeService,
	}
}

// CreateCheque godoc
//
//	@Summary		Issue a cheque
//	@Description	Issue a bearer cheque with a fresh 16 digit number. Issuing does not move money.
//	@Tags			Cheques
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateChequeRequestDTO	true	"Cheque"
//	@Success		201		{object}	dto.ChequeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cheques [post]
func (h *ChequeHandler) CreateCheque(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateChequeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	cheque, err := h.chequeService.Create(r.Context(), auth.AccountID(r.Context()), req.Amount, req.Note)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewChequeResponse(cheque))
}

// RedeemCheque godoc
//
//	@Summary		Redeem a cheque
//	@Description	The first redeemer wins. Redeeming again as the same player succeeds without change.
//	@Tags			Cheques
//	@Security		BearerAuth
//	@Produce		json
//	@Param			chequeID	path		string	true	"Cheque number"
//	@Success		200			{object}	dto.ChequeResponseDTO
//	@Failure		401			{object}	utils.Response	"Not authorized"
//	@Failure		404			{object}	utils.Response	"Cheque not found"
//	@Failure		409			{object}	utils.Response	"Cheque already used"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/cheques/{chequeID}/redeem [post]
func (h *ChequeHandler) RedeemCheque(w http.ResponseWriter, r *http.Request) {
	cheque, err := h.chequeService.Redeem(r.Context(), chi.URLParam(r, "chequeID"), auth.AccountID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewChequeResponse(cheque))
}

// GetCheque godoc
//
//	@Summary		Get a cheque
//	@Tags			Cheques
//	@Security		BearerAuth
//	@Produce		json
//	@Param			chequeID	path		string	true	"Cheque number"
//	@Success		200			{object}	dto.ChequeResponseDTO
//	@Failure		401			{object}	utils.Response	"Not authorized"
//	@Failure		404			{object}	utils.Response	"Cheque not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/cheques/{chequeID} [get]
func (h *ChequeHandler) GetCheque(w http.ResponseWriter, r *http.Request) {
	cheque, err := h.chequeService.Get(r.Context(), chi.URLParam(r, "chequeID"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewChequeResponse(cheque))
}

// ListCheques godoc
//
//	@Summary		List issued cheques
//	@Tags			Cheques
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of cheques"
//	@Success		200		{array}		dto.ChequeResponseDTO
//	@Success		204		{object}	utils.Response	"No cheques"
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cheques [get]
func (h *ChequeHandler) ListCheques(w http.ResponseWriter, r *http.Request) {
	limit, err := respond.QueryInt(r, "limit")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}

	cheques, err := h.chequeService.ListByIssuer(r.Context(), auth.AccountID(r.Context()), n)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if len(cheques) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.ChequeResponseDTO, len(cheques))
	for i := range cheques {
		response[i] = dto.NewChequeResponse(&cheques[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
