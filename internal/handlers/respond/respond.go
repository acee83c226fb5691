// Package respond writes engine results as HTTP responses.
package respond

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/pkg/auth"
	"github.com/GlebRadaev/gamebank/pkg/utils"
)

// HTTPStatus maps an engine error onto a response status.
func HTTPStatus(err error) int {
	if errors.Is(err, domain.ErrInsufficientFunds) {
		return http.StatusPaymentRequired
	}
	switch domain.StatusOf(err) {
	case domain.StatusOK:
		return http.StatusOK
	case domain.StatusBadRequest:
		return http.StatusBadRequest
	case domain.StatusNotFound:
		return http.StatusNotFound
	case domain.StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	code := string(domain.CodeOf(err))
	message := err.Error()

	if status == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("code", code),
			zap.Error(err),
		)
		message = "Internal server error"
	}
	utils.RespondWithCode(w, status, code, message)
}

// AccountID is the account a request acts on: the {accountID} path parameter
// on game server routes, the token subject everywhere else.
func AccountID(r *http.Request) string {
	if id := chi.URLParam(r, "accountID"); id != "" {
		return id
	}
	return auth.AccountID(r.Context())
}

// QueryInt reads an optional integer query parameter.
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.Validation(domain.CodeInvalidInput, "query parameter "+name+" must be an integer")
	}
	return &v, nil
}
