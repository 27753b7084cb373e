package domain

import "time"

// Ingredient represents a single material requirement for a recipe
type Ingredient struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Recipe represents a crafting recipe managed by the catalog process.
// The crafting engine treats recipes as read-only.
type Recipe struct {
	ID             string       `json:"recipe_id"`
	Name           string       `json:"name"`
	RequiredLevel  int          `json:"required_level"`
	ResultItemID   string       `json:"result_item_id"`
	ResultQuantity int          `json:"result_quantity"`
	Ingredients    []Ingredient `json:"ingredients"`
	XPGained       int          `json:"xp_gained"`
	IsActive       bool         `json:"is_active"`
	CreatedAt      time.Time    `json:"created_at,omitempty"`
	UpdatedAt      time.Time    `json:"updated_at,omitempty"`
}

// IngredientCost returns the required quantity for an ingredient, 0 if the
// recipe does not consume it.
func (r *Recipe) IngredientCost(itemID string) int {
	for _, ing := range r.Ingredients {
		if ing.ItemID == itemID {
			return ing.Quantity
		}
	}
	return 0
}
