package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	ErrMsgPlayerNotFoundError    = "Player not found"
	ErrMsgNoActiveSessionError   = "No cultivation session is active"
	ErrMsgSessionActiveError     = "A cultivation session is already active"
	ErrMsgTargetNotFoundError    = "Equipment not found"
	ErrMsgRecipeNotFoundError    = "Recipe not found"
	ErrMsgInsufficientStockError = "Not enough elements"
	ErrMsgInsufficientFundsError = "Not enough currency"
	ErrMsgSlotLockedError        = "That reward is still locked"
	ErrMsgUnknownSlotError       = "Unknown reward slot"
	ErrMsgRewardNotFoundError    = "Reward not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal error details never reach the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrNoActiveSession):
		return http.StatusNotFound, ErrMsgNoActiveSessionError
	case errors.Is(err, domain.ErrSessionAlreadyActive):
		return http.StatusConflict, ErrMsgSessionActiveError
	case errors.Is(err, domain.ErrTargetNotFound):
		return http.StatusNotFound, ErrMsgTargetNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusBadRequest, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, ErrMsgInsufficientStockError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFundsError
	case errors.Is(err, domain.ErrSlotLocked):
		return http.StatusForbidden, ErrMsgSlotLockedError
	case errors.Is(err, domain.ErrUnknownSlot):
		return http.StatusBadRequest, ErrMsgUnknownSlotError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
