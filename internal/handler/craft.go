package handler

import (
	"net/http"

	"github.com/questward/craftforge/internal/crafting"
	"github.com/questward/craftforge/internal/logger"
)

// CraftRequest is the request body for crafting an item
type CraftRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid4"`
	RecipeID string `json:"recipe_id" validate:"required"`
}

// CraftResponse is the response body for a successful craft
type CraftResponse struct {
	Message       string `json:"message"`
	CraftedItemID string `json:"crafted_item_id"`
	Quantity      int    `json:"quantity"`
	XPGained      int    `json:"xp_gained"`
	LeveledUp     bool   `json:"leveled_up"`
	Level         int    `json:"level"`
}

// HandleCraft handles crafting an item from a recipe
// @Summary Craft item
// @Description Atomically consume a recipe's ingredients, grant the result item and award XP
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft details"
// @Success 200 {object} CraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Player level too low"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Recipe inactive or insufficient ingredients"
// @Failure 500 {object} ErrorResponse
// @Router /craft [post]
func HandleCraft(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft item"); err != nil {
			return
		}

		result, err := svc.Craft(r.Context(), req.UserID, req.RecipeID)
		if err != nil {
			respondServiceError(w, r, ErrMsgCraftItemFailed, err)
			return
		}

		log.Info("Item crafted successfully",
			"user_id", req.UserID,
			"recipe_id", req.RecipeID,
			"item_id", result.CraftedItemID,
			"leveled_up", result.LeveledUp)

		respondJSON(w, http.StatusOK, CraftResponse{
			Message:       MsgItemCraftedSuccess,
			CraftedItemID: result.CraftedItemID,
			Quantity:      result.Quantity,
			XPGained:      result.XPGained,
			LeveledUp:     result.LeveledUp,
			Level:         result.Level,
		})
	}
}
