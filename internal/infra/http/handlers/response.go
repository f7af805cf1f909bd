package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/workvine/crm-backend/internal/logging"
	"github.com/workvine/crm-backend/internal/usecase"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Code: code, Message: message})
}

// respondUseCaseError maps coded domain errors onto HTTP statuses.
// Anything unexpected becomes a generic 500; the cause stays server-side.
func respondUseCaseError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case usecase.CodeClientNotFound, usecase.CodeLeadNotFound:
			respondError(w, http.StatusNotFound, de.Code, de.Message)
		default:
			respondError(w, http.StatusBadRequest, de.Code, de.Message)
		}
		return
	}

	logging.Logger.WithError(err).Error("request failed")
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
