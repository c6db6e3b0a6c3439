// Package http provides the HTTP handlers and routing of the development
// backend API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/credkarma/credkarma/internal/models"
	"github.com/credkarma/credkarma/internal/service"
	"github.com/credkarma/credkarma/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string, fields ...models.FieldError) {
	writeJSON(w, status, models.ErrorResponse{Message: message, Errors: fields})
}

// writeServiceError maps the service sentinel errors to HTTP statuses.
// Anything unrecognized is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBehaviorNotFound),
		errors.Is(err, service.ErrRewardNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyUnlocked),
		errors.Is(err, service.ErrNotEnoughKarma):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// writeValidationError renders a validate.Errors as a 400 with field details.
func writeValidationError(w http.ResponseWriter, verr *validate.Errors) {
	writeError(w, http.StatusBadRequest, "Validation failed", verr.Fields...)
}
