package httputil

import (
	"encoding/json"
	"net/http"

	"bankledger/internal/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// StatusFor maps a domain error kind to its HTTP status. Unknown errors
// are treated as internal.
func StatusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.AccountNotFound, apperr.MovementNotFound:
		return http.StatusNotFound
	case apperr.InvalidAmount, apperr.ValidationFailed, apperr.InsufficientFunds:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError translates a domain error into its outward-facing
// status and message.
func WriteDomainError(w http.ResponseWriter, err error) {
	WriteError(w, StatusFor(err), err.Error())
}
