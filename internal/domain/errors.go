package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Player errors
	ErrMsgPlayerStateNotFound = "player state not found"

	// Recipe errors
	ErrMsgRecipeNotFound    = "recipe not found"
	ErrMsgRecipeUnavailable = "recipe is unavailable"

	// Craft eligibility errors
	ErrMsgLevelTooLow             = "player level too low"
	ErrMsgInsufficientIngredients = "insufficient ingredients"

	// Ledger contract errors
	ErrMsgNegativeQuantity = "quantity would go negative"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Business-rule errors raised by the crafting engine.
// These errors must stay distinguishable across all layers; wrap them with
// fmt.Errorf("%w: details", domain.ErrXxx) for additional context.
var (
	// Player errors
	ErrPlayerStateNotFound = errors.New(ErrMsgPlayerStateNotFound)

	// Recipe errors
	ErrRecipeNotFound    = errors.New(ErrMsgRecipeNotFound)
	ErrRecipeUnavailable = errors.New(ErrMsgRecipeUnavailable)

	// Craft eligibility errors
	ErrLevelTooLow             = errors.New(ErrMsgLevelTooLow)
	ErrInsufficientIngredients = errors.New(ErrMsgInsufficientIngredients)

	// Ledger contract errors
	ErrNegativeQuantity = errors.New(ErrMsgNegativeQuantity)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
