package domain

// CraftResult is the transient value returned to the caller of a successful
// craft. Failed crafts return a typed error instead.
type CraftResult struct {
	Success       bool   `json:"success"`
	CraftedItemID string `json:"crafted_item_id"`
	Quantity      int    `json:"quantity"`
	XPGained      int    `json:"xp_gained"`
	LeveledUp     bool   `json:"leveled_up"`
	Level         int    `json:"level"`
}
