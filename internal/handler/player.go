package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/inventory"
	"github.com/questward/craftforge/internal/logger"
	"github.com/questward/craftforge/internal/progression"
)

// PlayerStateResponse is the progression view of a player
type PlayerStateResponse struct {
	UserID        string `json:"user_id"`
	Level         int    `json:"level"`
	XP            int    `json:"xp"`
	TotalXP       int    `json:"total_xp"`
	XPToNextLevel int    `json:"xp_to_next_level"`
}

// InventoryResponse wraps a player's inventory entries
type InventoryResponse struct {
	UserID string                  `json:"user_id"`
	Items  []domain.InventoryEntry `json:"items"`
}

// HandleGetPlayer returns a player's level and XP progression
// @Summary Get player state
// @Description Get a player's level, XP and the XP remaining to the next level
// @Tags player
// @Produce json
// @Param user_id path string true "Player user ID"
// @Success 200 {object} PlayerStateResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /player/{user_id} [get]
func HandleGetPlayer(tracker progression.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID := chi.URLParam(r, "user_id")

		state, err := tracker.Get(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPlayerFailed, err)
			return
		}

		log.Debug("Player state retrieved", "user_id", userID, "level", state.Level)

		respondJSON(w, http.StatusOK, PlayerStateResponse{
			UserID:        state.UserID,
			Level:         state.Level,
			XP:            state.XP,
			TotalXP:       state.TotalXP,
			XPToNextLevel: tracker.XPToNextLevel(*state),
		})
	}
}

// HandleGetInventory returns a player's inventory entries
// @Summary Get inventory
// @Description Get a player's inventory ordered by item ID. Depleted items are absent, never zero.
// @Tags player
// @Produce json
// @Param user_id path string true "Player user ID"
// @Success 200 {object} InventoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /player/{user_id}/inventory [get]
func HandleGetInventory(ledger inventory.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID := chi.URLParam(r, "user_id")

		items, err := ledger.ListFor(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
			return
		}

		log.Debug("Inventory retrieved", "user_id", userID, "items", len(items))

		respondJSON(w, http.StatusOK, InventoryResponse{
			UserID: userID,
			Items:  items,
		})
	}
}
