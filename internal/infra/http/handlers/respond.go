package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tahqeeq/outreach/internal/usecase"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain error codes onto HTTP statuses; anything else is a
// plain 500.
func writeError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		writeJSON(w, statusForCode(de.Code), errorResponse{
			Code:    de.Code,
			Message: de.Message,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

func statusForCode(code string) int {
	switch code {
	case "LEAD_NOT_FOUND", "TEMPLATE_NOT_FOUND", "JOB_NOT_FOUND", "TRIGGERS_NOT_FOUND":
		return http.StatusNotFound
	case "NOT_AUTHENTICATED", "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	case "MAIL_FAILED":
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}
