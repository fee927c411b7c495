package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
)

type errorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	Available string `json:"available,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the failure taxonomy onto HTTP statuses. Insufficient stock
// carries the available amount back so the UI can tell the user how much they
// actually hold.
func writeError(w http.ResponseWriter, err error) {
	var validation *apperrors.ErrValidation
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Error(), Field: validation.Field})
		return
	}

	var notFound *apperrors.ErrNotFound
	if errors.As(err, &notFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFound.Error()})
		return
	}

	var conflict *apperrors.ErrConflict
	if errors.As(err, &conflict) {
		writeJSON(w, http.StatusConflict, errorResponse{Error: conflict.Error(), Field: conflict.Field})
		return
	}

	var insufficient *apperrors.ErrInsufficientStock
	if errors.As(err, &insufficient) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:     insufficient.Error(),
			Available: insufficient.Available.String(),
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
