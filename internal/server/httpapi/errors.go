package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/server/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps a service error to a status code and body. notFound
// is the message used for common.ErrNotFound, which differs per resource.
func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	var ve *validation.Error

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: ve.Problems})
	case errors.Is(err, common.ErrValidation):
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: []string{"Invalid request."}})
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "Invalid Credentials")
	case errors.Is(err, common.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "Account with userName already registered")
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, common.ErrStorageUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Storage unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
