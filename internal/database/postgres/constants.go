package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player State Operations
const (
	ErrMsgInvalidUserID           = "invalid user id"
	ErrMsgFailedToGetPlayerState  = "failed to get player state"
	ErrMsgFailedToSavePlayerState = "failed to save player state"
	ErrMsgFailedToLockPlayerState = "failed to lock player state"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToGetRecipe      = "failed to get recipe"
	ErrMsgFailedToListRecipes    = "failed to list recipes"
	ErrMsgFailedToGetIngredients = "failed to get recipe ingredients"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToListInventory    = "failed to list inventory"
	ErrMsgFailedToGetInventoryItem = "failed to get inventory item"
	ErrMsgFailedToLockInventory    = "failed to lock inventory"
	ErrMsgFailedToDecrementItem    = "failed to decrement inventory item"
	ErrMsgFailedToUpsertItem       = "failed to upsert inventory item"
)
