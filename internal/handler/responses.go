package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/logger"
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

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, logMessage string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(logMessage, "error", err)

	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	// Player messages
	ErrMsgPlayerNotFoundError = "Player not found"

	// Recipe messages
	ErrMsgRecipeNotFoundError    = "Recipe not found"
	ErrMsgRecipeUnavailableError = "Recipe is not available right now"

	// Crafting messages
	ErrMsgLevelTooLowError           = "Your level is too low for this recipe"
	ErrMsgInsufficientIngredientsErr = "Not enough ingredients"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrRecipeUnavailable):
		return http.StatusConflict, ErrMsgRecipeUnavailableError
	case errors.Is(err, domain.ErrPlayerStateNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrLevelTooLow):
		return http.StatusForbidden, ErrMsgLevelTooLowError
	case errors.Is(err, domain.ErrInsufficientIngredients):
		return http.StatusConflict, ErrMsgInsufficientIngredientsErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		// Recursively check the unwrapped error
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Default to a generic message so internal details never leak
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
