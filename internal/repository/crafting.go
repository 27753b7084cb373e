package repository

import (
	"context"

	"github.com/questward/craftforge/internal/domain"
)

// Crafting defines the persistence boundary consumed by the crafting engine.
// Lookups return (nil, nil) when the row is absent; callers translate that
// into the appropriate domain error.
type Crafting interface {
	LoadPlayerState(ctx context.Context, userID string) (*domain.PlayerState, error)
	ListActiveRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error)
	ListInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
	GetInventoryItem(ctx context.Context, userID, itemID string) (*domain.InventoryEntry, error)

	// BeginTx starts a fully isolated transaction; writes performed through
	// the returned Tx become visible only on Commit.
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx is the atomic unit a craft commit runs in. Row reads through a Tx take
// row-level locks so a concurrent craft for the same player blocks until
// Commit or Rollback.
type Tx interface {
	// LockPlayerState reads the player row under a row lock.
	// Returns (nil, nil) if no state exists.
	LockPlayerState(ctx context.Context, userID string) (*domain.PlayerState, error)
	SavePlayerState(ctx context.Context, state domain.PlayerState) error

	// LockInventory reads the given ledger rows under row locks, in a
	// deterministic order. Missing rows are simply absent from the result.
	LockInventory(ctx context.Context, userID string, itemIDs []string) ([]domain.InventoryEntry, error)

	// DecrementInventoryItem atomically subtracts amount from the entry,
	// deleting it when the quantity reaches 0. Fails with
	// domain.ErrInsufficientIngredients when the held quantity is below
	// amount; the row is left untouched in that case.
	DecrementInventoryItem(ctx context.Context, userID, itemID string, amount int) error

	// UpsertInventoryItem adds delta to the entry, creating it if absent.
	UpsertInventoryItem(ctx context.Context, userID, itemID string, delta int) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
