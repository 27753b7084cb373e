// Package catalog provides read-only access to the recipe definitions a
// player can attempt to craft.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/logger"
	"github.com/questward/craftforge/internal/repository"
)

const (
	// DefaultCacheSize bounds the recipe cache; catalogs are small
	DefaultCacheSize = 256

	// DefaultCacheTTL keeps cached recipes fresh against external edits
	DefaultCacheTTL = 5 * time.Minute
)

// Service defines the interface for recipe catalog lookups
type Service interface {
	// ListAvailable returns every active recipe, ordered ascending by
	// required level, for a known player. Recipes above the player's level
	// are included; callers render them as locked rather than hiding them.
	ListAvailable(ctx context.Context, userID string) ([]domain.Recipe, error)
	GetByID(ctx context.Context, recipeID string) (*domain.Recipe, error)
}

type service struct {
	repo  repository.Crafting
	cache *recipeCache
}

// NewService creates a new catalog service
func NewService(repo repository.Crafting) Service {
	return &service{
		repo:  repo,
		cache: newRecipeCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) ListAvailable(ctx context.Context, userID string) ([]domain.Recipe, error) {
	log := logger.FromContext(ctx)

	// The catalog is always scoped to a known player even though the list
	// itself is not level-filtered.
	state, err := s.repo.LoadPlayerState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}
	if state == nil {
		log.Warn("Player state not found", "user_id", userID)
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerStateNotFound, userID)
	}

	recipes, err := s.repo.ListActiveRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		if recipes[i].RequiredLevel != recipes[j].RequiredLevel {
			return recipes[i].RequiredLevel < recipes[j].RequiredLevel
		}
		return recipes[i].ID < recipes[j].ID
	})

	log.Debug("Recipes listed", "user_id", userID, "count", len(recipes))
	return recipes, nil
}

func (s *service) GetByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	if recipe, ok := s.cache.Get(recipeID); ok {
		return recipe, nil
	}

	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
	}

	s.cache.Set(recipeID, recipe)
	return recipe, nil
}
