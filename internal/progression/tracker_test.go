package progression

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/leveling"
	"github.com/questward/craftforge/internal/repository"
)

// stubRepo provides just enough of repository.Crafting for tracker tests
type stubRepo struct {
	states map[string]*domain.PlayerState
}

func (s *stubRepo) LoadPlayerState(ctx context.Context, userID string) (*domain.PlayerState, error) {
	return s.states[userID], nil
}

func (s *stubRepo) ListActiveRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return nil, nil
}

func (s *stubRepo) GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	return nil, nil
}

func (s *stubRepo) ListInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return nil, nil
}

func (s *stubRepo) GetInventoryItem(ctx context.Context, userID, itemID string) (*domain.InventoryEntry, error) {
	return nil, nil
}

func (s *stubRepo) BeginTx(ctx context.Context) (repository.Tx, error) {
	return nil, nil
}

func TestTrackerGet(t *testing.T) {
	repo := &stubRepo{states: map[string]*domain.PlayerState{
		"user-1": {UserID: "user-1", Level: 5, XP: 20, TotalXP: 820},
	}}
	tr := NewTracker(repo, leveling.NewDefault())

	t.Run("existing player", func(t *testing.T) {
		state, err := tr.Get(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 5, state.Level)
		assert.Equal(t, 820, state.TotalXP)
	})

	t.Run("missing player", func(t *testing.T) {
		_, err := tr.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrPlayerStateNotFound)
	})
}

func TestTrackerXPToNextLevel(t *testing.T) {
	tr := NewTracker(&stubRepo{}, leveling.FixedStep{Step: 100})

	assert.Equal(t, 80, tr.XPToNextLevel(domain.PlayerState{Level: 1, XP: 20}))
	assert.Equal(t, 0, tr.XPToNextLevel(domain.PlayerState{Level: 1, XP: 150}))
}

func TestApplyXP(t *testing.T) {
	step := leveling.FixedStep{Step: 100}

	t.Run("no level up below threshold", func(t *testing.T) {
		state := ApplyXP(domain.PlayerState{UserID: "u", Level: 1, XP: 10, TotalXP: 10}, 50, step)
		assert.Equal(t, 1, state.Level)
		assert.Equal(t, 60, state.XP)
		assert.Equal(t, 60, state.TotalXP)
	})

	t.Run("level up carries remainder", func(t *testing.T) {
		state := ApplyXP(domain.PlayerState{Level: 1, XP: 80, TotalXP: 80}, 50, step)
		assert.Equal(t, 2, state.Level)
		assert.Equal(t, 30, state.XP)
		assert.Equal(t, 130, state.TotalXP)
	})

	t.Run("exact threshold advances with zero remainder", func(t *testing.T) {
		state := ApplyXP(domain.PlayerState{Level: 1, XP: 0}, 100, step)
		assert.Equal(t, 2, state.Level)
		assert.Equal(t, 0, state.XP)
	})

	t.Run("multiple level ups in one grant", func(t *testing.T) {
		state := ApplyXP(domain.PlayerState{Level: 1, XP: 0}, 350, step)
		assert.Equal(t, 4, state.Level)
		assert.Equal(t, 50, state.XP)
		assert.Equal(t, 350, state.TotalXP)
	})

	t.Run("negative gain ignored", func(t *testing.T) {
		before := domain.PlayerState{Level: 3, XP: 40, TotalXP: 500}
		state := ApplyXP(before, -25, step)
		assert.Equal(t, before, state)
	})

	t.Run("total XP is monotonic", func(t *testing.T) {
		state := domain.PlayerState{Level: 1}
		for i := 0; i < 10; i++ {
			next := ApplyXP(state, 75, step)
			assert.GreaterOrEqual(t, next.TotalXP, state.TotalXP)
			state = next
		}
		assert.Equal(t, 750, state.TotalXP)
	})

	t.Run("pure with respect to input", func(t *testing.T) {
		before := domain.PlayerState{Level: 1, XP: 80, TotalXP: 80}
		_ = ApplyXP(before, 50, step)
		assert.Equal(t, 80, before.XP, "input state must not be mutated")
	})
}
