package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Response struct {
	Status  string            `json:"status" example:"error"`
	Code    string            `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Message string            `json:"message" example:"insufficient funds"`
	Details map[string]string `json:"details,omitempty"`
}

var validate = validator.New()

// ValidateStruct checks the `validate` tags of a request DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Status: "error", Message: message})
}

func RespondWithCode(w http.ResponseWriter, status int, code, message string) {
	RespondWithJSON(w, status, Response{Status: "error", Code: code, Message: message})
}

func RespondWithValidationError(w http.ResponseWriter, err error) {
	resp := Response{Status: "error", Code: "INVALID_INPUT", Message: "Invalid request body"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Details = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			resp.Details[fe.Field()] = fmt.Sprintf("failed on '%s' tag", fe.Tag())
		}
	}
	RespondWithJSON(w, http.StatusBadRequest, resp)
}
