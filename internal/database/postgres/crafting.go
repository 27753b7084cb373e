// Package postgres implements the crafting persistence boundary against
// PostgreSQL using pgx. Row locking and conditional decrements enforce the
// atomicity guarantees the crafting service relies on.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/repository"
)

// CraftingRepository implements repository.Crafting for PostgreSQL
type CraftingRepository struct {
	db *pgxpool.Pool
}

// NewCraftingRepository creates a new CraftingRepository
func NewCraftingRepository(db *pgxpool.Pool) *CraftingRepository {
	return &CraftingRepository{db: db}
}

// LoadPlayerState returns the player's progression row, or (nil, nil) if absent
func (r *CraftingRepository) LoadPlayerState(ctx context.Context, userID string) (*domain.PlayerState, error) {
	return loadPlayerState(ctx, r.db, userID, false)
}

func loadPlayerState(ctx context.Context, q interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, userID string, forUpdate bool) (*domain.PlayerState, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT level, xp, total_xp, updated_at FROM player_states WHERE user_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	state := domain.PlayerState{UserID: userID}
	err = q.QueryRow(ctx, query, userUUID).Scan(&state.Level, &state.XP, &state.TotalXP, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		op := ErrMsgFailedToGetPlayerState
		if forUpdate {
			op = ErrMsgFailedToLockPlayerState
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &state, nil
}

// ListActiveRecipes returns every active recipe with its ingredients,
// ordered by required level then recipe ID
func (r *CraftingRepository) ListActiveRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, recipe_name, required_level, result_item_id, result_quantity,
		       xp_gained, is_active, created_at, updated_at
		FROM recipes
		WHERE is_active
		ORDER BY required_level, recipe_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	var ids []string
	for rows.Next() {
		var recipe domain.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.RequiredLevel, &recipe.ResultItemID,
			&recipe.ResultQuantity, &recipe.XPGained, &recipe.IsActive, &recipe.CreatedAt, &recipe.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
		}
		recipes = append(recipes, recipe)
		ids = append(ids, recipe.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}

	if len(recipes) == 0 {
		return recipes, nil
	}

	ingredients, err := r.loadIngredients(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].Ingredients = ingredients[recipes[i].ID]
	}
	return recipes, nil
}

// GetRecipe returns the recipe with its ingredients, or (nil, nil) if absent
func (r *CraftingRepository) GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.QueryRow(ctx, `
		SELECT recipe_id, recipe_name, required_level, result_item_id, result_quantity,
		       xp_gained, is_active, created_at, updated_at
		FROM recipes
		WHERE recipe_id = $1`, recipeID).
		Scan(&recipe.ID, &recipe.Name, &recipe.RequiredLevel, &recipe.ResultItemID,
			&recipe.ResultQuantity, &recipe.XPGained, &recipe.IsActive, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}

	ingredients, err := r.loadIngredients(ctx, []string{recipeID})
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients[recipeID]
	return &recipe, nil
}

func (r *CraftingRepository) loadIngredients(ctx context.Context, recipeIDs []string) (map[string][]domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, ingredient_id, quantity
		FROM recipe_ingredients
		WHERE recipe_id = ANY($1)
		ORDER BY recipe_id, position`, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredients, err)
	}
	defer rows.Close()

	result := make(map[string][]domain.Ingredient, len(recipeIDs))
	for rows.Next() {
		var recipeID string
		var ing domain.Ingredient
		if err := rows.Scan(&recipeID, &ing.ItemID, &ing.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredients, err)
		}
		result[recipeID] = append(result[recipeID], ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredients, err)
	}
	return result, nil
}

// ListInventory returns the player's ledger entries sorted by item ID
func (r *CraftingRepository) ListInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id, quantity FROM inventory_entries
		WHERE user_id = $1
		ORDER BY item_id`, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		entry := domain.InventoryEntry{UserID: userID}
		if err := rows.Scan(&entry.ItemID, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	return entries, nil
}

// GetInventoryItem returns a single ledger entry, or (nil, nil) if absent
func (r *CraftingRepository) GetInventoryItem(ctx context.Context, userID, itemID string) (*domain.InventoryEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	entry := domain.InventoryEntry{UserID: userID, ItemID: itemID}
	err = r.db.QueryRow(ctx, `
		SELECT quantity FROM inventory_entries
		WHERE user_id = $1 AND item_id = $2`, userUUID, itemID).
		Scan(&entry.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventoryItem, err)
	}
	return &entry, nil
}

// BeginTx starts a new transaction
func (r *CraftingRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &craftingTx{tx: tx}, nil
}

// craftingTx implements repository.Tx over a pgx transaction
type craftingTx struct {
	tx pgx.Tx
}

// LockPlayerState reads the player row under FOR UPDATE
func (t *craftingTx) LockPlayerState(ctx context.Context, userID string) (*domain.PlayerState, error) {
	return loadPlayerState(ctx, t.tx, userID, true)
}

// SavePlayerState upserts the player's progression row
func (t *craftingTx) SavePlayerState(ctx context.Context, state domain.PlayerState) error {
	userUUID, err := parseUserUUID(state.UserID)
	if err != nil {
		return err
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO player_states (user_id, level, xp, total_xp, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			level = EXCLUDED.level,
			xp = EXCLUDED.xp,
			total_xp = EXCLUDED.total_xp,
			updated_at = EXCLUDED.updated_at`,
		userUUID, state.Level, state.XP, state.TotalXP, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePlayerState, err)
	}
	return nil
}

// LockInventory reads the requested ledger rows under FOR UPDATE. Rows are
// locked in item-ID order so two crafts touching the same items cannot
// deadlock each other.
func (t *craftingTx) LockInventory(ctx context.Context, userID string, itemIDs []string) ([]domain.InventoryEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	sorted := make([]string, len(itemIDs))
	copy(sorted, itemIDs)
	sort.Strings(sorted)

	rows, err := t.tx.Query(ctx, `
		SELECT item_id, quantity FROM inventory_entries
		WHERE user_id = $1 AND item_id = ANY($2)
		ORDER BY item_id
		FOR UPDATE`, userUUID, sorted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockInventory, err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		entry := domain.InventoryEntry{UserID: userID}
		if err := rows.Scan(&entry.ItemID, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockInventory, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockInventory, err)
	}
	return entries, nil
}

// DecrementInventoryItem subtracts amount from the entry, deleting it when
// the quantity hits zero. The condition is enforced in SQL so a concurrent
// decrement can never push the row negative.
func (t *craftingTx) DecrementInventoryItem(ctx context.Context, userID, itemID string, amount int) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	// Exact depletion removes the row; zero quantities are never stored.
	tag, err := t.tx.Exec(ctx, `
		DELETE FROM inventory_entries
		WHERE user_id = $1 AND item_id = $2 AND quantity = $3`,
		userUUID, itemID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDecrementItem, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	tag, err = t.tx.Exec(ctx, `
		UPDATE inventory_entries
		SET quantity = quantity - $3
		WHERE user_id = $1 AND item_id = $2 AND quantity > $3`,
		userUUID, itemID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDecrementItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientIngredients, itemID)
	}
	return nil
}

// UpsertInventoryItem adds delta to the entry, creating it if absent
func (t *craftingTx) UpsertInventoryItem(ctx context.Context, userID, itemID string, delta int) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO inventory_entries (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id) DO UPDATE SET
			quantity = inventory_entries.quantity + EXCLUDED.quantity`,
		userUUID, itemID, delta)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertItem, err)
	}
	return nil
}

// Commit commits the transaction
func (t *craftingTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *craftingTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
