package domain

// InventoryEntry is one row of the per-player item ledger.
// An entry whose quantity reaches 0 is deleted, never stored as a zero-row.
type InventoryEntry struct {
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// IngredientShortfall describes one unmet ingredient requirement.
type IngredientShortfall struct {
	ItemID   string `json:"item_id"`
	Required int    `json:"required"`
	Held     int    `json:"held"`
}
