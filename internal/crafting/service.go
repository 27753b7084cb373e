// Package crafting coordinates a craft attempt across the recipe catalog,
// the player's progression state, and the inventory ledger. A craft either
// fully commits (ingredients consumed, result granted, XP applied) or leaves
// every row untouched.
package crafting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/questward/craftforge/internal/concurrency"
	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/event"
	"github.com/questward/craftforge/internal/inventory"
	"github.com/questward/craftforge/internal/leveling"
	"github.com/questward/craftforge/internal/logger"
	"github.com/questward/craftforge/internal/metrics"
	"github.com/questward/craftforge/internal/progression"
	"github.com/questward/craftforge/internal/repository"
)

// Service defines the interface for crafting operations
type Service interface {
	Craft(ctx context.Context, userID, recipeID string) (*domain.CraftResult, error)
}

type service struct {
	repo     repository.Crafting
	strategy leveling.Strategy
	locks    *concurrency.KeyedMutex
	bus      event.Bus
}

// NewService creates a new crafting service
func NewService(repo repository.Crafting, strategy leveling.Strategy, locks *concurrency.KeyedMutex, bus event.Bus) Service {
	return &service{
		repo:     repo,
		strategy: strategy,
		locks:    locks,
		bus:      bus,
	}
}

// Craft executes a single craft of the given recipe for the given player.
// Eligibility is checked in a fixed order (recipe existence, availability,
// player existence, level, ingredients) so a request failing several checks
// always reports the first one. The commit itself runs under a per-player
// lock and re-validates ingredient quantities inside the transaction, so
// two concurrent crafts can never both spend the same ingredients.
func (s *service) Craft(ctx context.Context, userID, recipeID string) (*domain.CraftResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCraftCalled, "user_id", userID, "recipe_id", recipeID)

	start := time.Now()
	metrics.CraftsAttempted.WithLabelValues(recipeID).Inc()

	recipe, err := s.validateRecipe(ctx, recipeID)
	if err != nil {
		return nil, s.reject(ctx, recipeID, err)
	}

	if err := s.validatePlayer(ctx, userID, recipe); err != nil {
		return nil, s.reject(ctx, recipeID, err)
	}

	if err := s.validateIngredients(ctx, userID, recipe); err != nil {
		return nil, s.reject(ctx, recipeID, err)
	}

	var result *domain.CraftResult
	var oldLevel int
	err = s.locks.WithLock(userID, func() error {
		var commitErr error
		result, oldLevel, commitErr = s.commit(ctx, userID, recipe)
		return commitErr
	})
	if err != nil {
		return nil, s.reject(ctx, recipeID, err)
	}

	metrics.CraftsSucceeded.WithLabelValues(recipeID).Inc()
	metrics.CraftDuration.WithLabelValues(recipeID).Observe(time.Since(start).Seconds())

	s.publishCraftEvents(ctx, userID, recipe, result, oldLevel)

	log.Info(LogMsgItemCrafted,
		"user_id", userID,
		"recipe_id", recipeID,
		"item_id", result.CraftedItemID,
		"quantity", result.Quantity,
		"xp_gained", result.XPGained,
		"leveled_up", result.LeveledUp,
		"level", result.Level)
	return result, nil
}

// validateRecipe resolves the recipe and checks it is active.
func (s *service) validateRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetRecipeFailed, err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
	}
	if !recipe.IsActive {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeUnavailable, recipeID)
	}
	return recipe, nil
}

// validatePlayer checks the player exists and meets the recipe's level gate.
func (s *service) validatePlayer(ctx context.Context, userID string, recipe *domain.Recipe) error {
	state, err := s.repo.LoadPlayerState(ctx, userID)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadPlayerStateFailed, err)
	}
	if state == nil {
		return fmt.Errorf("%w: %s", domain.ErrPlayerStateNotFound, userID)
	}
	if state.Level < recipe.RequiredLevel {
		return fmt.Errorf("%w: Level %d required", domain.ErrLevelTooLow, recipe.RequiredLevel)
	}
	return nil
}

// validateIngredients checks the player's current ledger against the
// recipe's requirements. This is a pre-check on an unlocked read; the commit
// re-validates under row locks.
func (s *service) validateIngredients(ctx context.Context, userID string, recipe *domain.Recipe) error {
	entries, err := s.repo.ListInventory(ctx, userID)
	if err != nil {
		return fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	if ok, shortfalls := inventory.HasSufficient(entries, recipe.Ingredients); !ok {
		return shortfallError(shortfalls)
	}
	return nil
}

// commit performs the atomic part of a craft: consume ingredients, grant the
// result, apply XP. Caller holds the per-player lock. Returns the result and
// the player's level before XP was applied.
func (s *service) commit(ctx context.Context, userID string, recipe *domain.Recipe) (*domain.CraftResult, int, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock the ingredient rows and re-check quantities. The unlocked
	// pre-check may be stale by the time we get here.
	itemIDs := make([]string, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		itemIDs = append(itemIDs, ing.ItemID)
	}
	entries, err := tx.LockInventory(ctx, userID, itemIDs)
	if err != nil {
		return nil, 0, fmt.Errorf(ErrMsgLockInventoryFailed, err)
	}
	if ok, shortfalls := inventory.HasSufficient(entries, recipe.Ingredients); !ok {
		return nil, 0, shortfallError(shortfalls)
	}

	if err := inventory.Consume(ctx, tx, userID, recipe.Ingredients); err != nil {
		return nil, 0, err
	}

	if err := inventory.Grant(ctx, tx, userID, recipe.ResultItemID, recipe.ResultQuantity); err != nil {
		return nil, 0, err
	}

	state, err := tx.LockPlayerState(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf(ErrMsgLockPlayerStateFailed, err)
	}
	if state == nil {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrPlayerStateNotFound, userID)
	}

	oldLevel := state.Level
	updated := progression.ApplyXP(*state, recipe.XPGained, s.strategy)
	updated.UpdatedAt = time.Now().UTC()

	if err := tx.SavePlayerState(ctx, updated); err != nil {
		return nil, 0, fmt.Errorf(ErrMsgSavePlayerStateFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &domain.CraftResult{
		Success:       true,
		CraftedItemID: recipe.ResultItemID,
		Quantity:      recipe.ResultQuantity,
		XPGained:      recipe.XPGained,
		LeveledUp:     updated.Level > oldLevel,
		Level:         updated.Level,
	}, oldLevel, nil
}

// publishCraftEvents emits the post-commit events. Event delivery is best
// effort; the craft already committed.
func (s *service) publishCraftEvents(ctx context.Context, userID string, recipe *domain.Recipe, result *domain.CraftResult, oldLevel int) {
	log := logger.FromContext(ctx)

	evt := event.NewItemCraftedEvent(userID, recipe.ID, result.CraftedItemID, result.Quantity, result.XPGained)
	if err := s.bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	}

	if result.LeveledUp {
		log.Info(LogMsgPlayerLeveledUp, "user_id", userID, "old_level", oldLevel, "new_level", result.Level)
		evt := event.NewPlayerLeveledUpEvent(userID, oldLevel, result.Level, XPSourceCraft)
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
			metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		}
	}
}

// reject logs and counts a failed craft before returning the error unchanged.
func (s *service) reject(ctx context.Context, recipeID string, err error) error {
	logger.FromContext(ctx).Warn(LogMsgCraftRejected, "recipe_id", recipeID, "error", err)
	metrics.CraftsFailed.WithLabelValues(recipeID, failureReason(err)).Inc()
	return err
}

// shortfallError builds the insufficient-ingredients error with per-item
// have/need detail.
func shortfallError(shortfalls []domain.IngredientShortfall) error {
	detail := ""
	for i, sf := range shortfalls {
		if i > 0 {
			detail += ", "
		}
		detail += fmt.Sprintf("%s (need %d, have %d)", sf.ItemID, sf.Required, sf.Held)
	}
	return fmt.Errorf("%w: %s", domain.ErrInsufficientIngredients, detail)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return metrics.ReasonRecipeNotFound
	case errors.Is(err, domain.ErrRecipeUnavailable):
		return metrics.ReasonRecipeUnavailable
	case errors.Is(err, domain.ErrPlayerStateNotFound):
		return metrics.ReasonPlayerStateNotFound
	case errors.Is(err, domain.ErrLevelTooLow):
		return metrics.ReasonLevelTooLow
	case errors.Is(err, domain.ErrInsufficientIngredients):
		return metrics.ReasonInsufficientIngredients
	default:
		return metrics.ReasonInternal
	}
}
