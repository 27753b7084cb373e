package crafting

// ==================== Error Messages ====================

// Database operation error messages
const (
	ErrMsgGetRecipeFailed         = "failed to get recipe: %w"
	ErrMsgLoadPlayerStateFailed   = "failed to load player state: %w"
	ErrMsgListInventoryFailed     = "failed to list inventory: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgLockInventoryFailed     = "failed to lock inventory: %w"
	ErrMsgLockPlayerStateFailed   = "failed to lock player state: %w"
	ErrMsgSavePlayerStateFailed   = "failed to save player state: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgCraftCalled        = "Craft called"
	LogMsgItemCrafted        = "Item crafted"
	LogMsgPlayerLeveledUp    = "Player leveled up!"
	LogMsgCraftRejected      = "Craft rejected"
	LogMsgEventPublishFailed = "Failed to publish event"
)

// ==================== XP Sources ====================

// XP award source identifiers
const (
	XPSourceCraft = "craft"
)
