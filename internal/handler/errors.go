package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Crafting operation error messages
	ErrMsgCraftItemFailed = "Failed to craft item"

	// Recipe operation error messages
	ErrMsgListRecipesFailed = "Failed to list recipes"
	ErrMsgGetRecipeFailed   = "Failed to get recipe"

	// Player operation error messages
	ErrMsgGetPlayerFailed    = "Failed to get player state"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgItemCraftedSuccess = "Item crafted successfully"
)
