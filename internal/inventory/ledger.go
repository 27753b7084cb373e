// Package inventory implements the per-player item ledger: sufficiency
// checks and the increments/decrements a craft commit performs.
package inventory

import (
	"context"
	"fmt"

	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/repository"
)

// Ledger defines read access to a player's inventory
type Ledger interface {
	ListFor(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
}

type ledger struct {
	repo repository.Crafting
}

// NewLedger creates a new inventory ledger
func NewLedger(repo repository.Crafting) Ledger {
	return &ledger{repo: repo}
}

// ListFor returns the player's ledger entries
func (l *ledger) ListFor(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	entries, err := l.repo.ListInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return entries, nil
}

// HasSufficient reports whether entries cover every requirement. Missing
// entries count as quantity 0. The returned shortfalls describe each unmet
// requirement for error messages.
func HasSufficient(entries []domain.InventoryEntry, requirements []domain.Ingredient) (bool, []domain.IngredientShortfall) {
	held := make(map[string]int, len(entries))
	for _, e := range entries {
		held[e.ItemID] = e.Quantity
	}

	var shortfalls []domain.IngredientShortfall
	for _, req := range requirements {
		if held[req.ItemID] < req.Quantity {
			shortfalls = append(shortfalls, domain.IngredientShortfall{
				ItemID:   req.ItemID,
				Required: req.Quantity,
				Held:     held[req.ItemID],
			})
		}
	}

	return len(shortfalls) == 0, shortfalls
}

// Consume decrements every requirement inside tx. The storage layer enforces
// the decrement conditionally, so a raced shortfall surfaces as
// domain.ErrInsufficientIngredients rather than a negative row.
func Consume(ctx context.Context, tx repository.Tx, userID string, requirements []domain.Ingredient) error {
	for _, req := range requirements {
		if req.Quantity <= 0 {
			return fmt.Errorf("%w: ingredient %s has non-positive quantity %d", domain.ErrInvalidInput, req.ItemID, req.Quantity)
		}
		if err := tx.DecrementInventoryItem(ctx, userID, req.ItemID, req.Quantity); err != nil {
			return fmt.Errorf("failed to consume %s: %w", req.ItemID, err)
		}
	}
	return nil
}

// Grant increments the entry for itemID by quantity inside tx, creating it
// if absent.
func Grant(ctx context.Context, tx repository.Tx, userID, itemID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: grant quantity must be positive, got %d", domain.ErrInvalidInput, quantity)
	}
	if err := tx.UpsertInventoryItem(ctx, userID, itemID, quantity); err != nil {
		return fmt.Errorf("failed to grant %s: %w", itemID, err)
	}
	return nil
}
