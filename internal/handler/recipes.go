package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/questward/craftforge/internal/catalog"
	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/logger"
	"github.com/questward/craftforge/internal/progression"
)

// RecipeView is a recipe decorated with the requesting player's lock state
type RecipeView struct {
	domain.Recipe
	Locked bool `json:"locked"`
}

// RecipeListResponse wraps the active recipe list
type RecipeListResponse struct {
	Recipes []RecipeView `json:"recipes"`
}

// HandleListRecipes returns all active recipes ordered by required level
// @Summary List recipes
// @Description List active recipes ordered by required level. Recipes above the player's level are returned with locked set.
// @Tags recipes
// @Produce json
// @Param user_id query string true "Player user ID"
// @Success 200 {object} RecipeListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [get]
func HandleListRecipes(svc catalog.Service, tracker progression.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		state, err := tracker.Get(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListRecipesFailed, err)
			return
		}

		recipes, err := svc.ListAvailable(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListRecipesFailed, err)
			return
		}

		views := make([]RecipeView, 0, len(recipes))
		for _, recipe := range recipes {
			views = append(views, RecipeView{
				Recipe: recipe,
				Locked: recipe.RequiredLevel > state.Level,
			})
		}

		log.Debug("Recipes listed", "user_id", userID, "count", len(views))

		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: views})
	}
}

// HandleGetRecipe returns a single recipe by ID
// @Summary Get recipe
// @Description Get a single recipe with its ingredient requirements
// @Tags recipes
// @Produce json
// @Param recipe_id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{recipe_id} [get]
func HandleGetRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		recipeID := chi.URLParam(r, "recipe_id")

		recipe, err := svc.GetByID(r.Context(), recipeID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRecipeFailed, err)
			return
		}

		log.Debug("Recipe retrieved", "recipe_id", recipeID)

		respondJSON(w, http.StatusOK, recipe)
	}
}
