// Package handlers exposes the application over HTTP with JSON bodies.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JuanjoFeller/billwise/internal/auth"
	"github.com/JuanjoFeller/billwise/internal/ledger"
	"github.com/JuanjoFeller/billwise/internal/middleware"
	"github.com/JuanjoFeller/billwise/internal/service"
	"github.com/JuanjoFeller/billwise/internal/storage"
)

// respondError maps domain errors onto HTTP statuses and writes the JSON
// error envelope. Unrecognized errors are logged and hidden behind a generic
// 500; they are safe for the client to re-trigger.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrMissingTotal),
		errors.Is(err, ledger.ErrNoParticipants),
		errors.Is(err, ledger.ErrIncompleteParticipant),
		errors.Is(err, ledger.ErrAllocationMismatch),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, auth.ErrWeakPassword):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, auth.ErrInvalidCredentials):
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())

	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, ledger.ErrUnknownParticipant):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())

	case errors.Is(err, ledger.ErrAlreadyPaid),
		errors.Is(err, storage.ErrConflict),
		errors.Is(err, auth.ErrEmailExists):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())

	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "something went wrong")
	}
}
