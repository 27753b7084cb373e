// Package progression owns player level/XP state and the rule for turning
// earned XP into level advancement.
package progression

import (
	"context"
	"fmt"

	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/leveling"
	"github.com/questward/craftforge/internal/logger"
	"github.com/questward/craftforge/internal/repository"
)

// Tracker defines read access to player progression state
type Tracker interface {
	Get(ctx context.Context, userID string) (*domain.PlayerState, error)
	XPToNextLevel(state domain.PlayerState) int
}

type tracker struct {
	repo     repository.Crafting
	strategy leveling.Strategy
}

// NewTracker creates a new progression tracker
func NewTracker(repo repository.Crafting, strategy leveling.Strategy) Tracker {
	return &tracker{
		repo:     repo,
		strategy: strategy,
	}
}

// Get loads the player's progression state
func (t *tracker) Get(ctx context.Context, userID string) (*domain.PlayerState, error) {
	state, err := t.repo.LoadPlayerState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}
	if state == nil {
		logger.FromContext(ctx).Warn("Player state not found", "user_id", userID)
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerStateNotFound, userID)
	}
	return state, nil
}

// XPToNextLevel reports how much XP the player still needs to level up
func (t *tracker) XPToNextLevel(state domain.PlayerState) int {
	remaining := t.strategy.XPForNextLevel(state.Level) - state.XP
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ApplyXP adds gained XP to the state and advances the level while the
// accumulated XP meets the strategy's threshold, carrying the remainder.
// Pure: no I/O, deterministic given the strategy. Negative gains are ignored.
func ApplyXP(state domain.PlayerState, gained int, strategy leveling.Strategy) domain.PlayerState {
	if gained <= 0 {
		return state
	}

	state.XP += gained
	state.TotalXP += gained

	for {
		threshold := strategy.XPForNextLevel(state.Level)
		if threshold <= 0 || state.XP < threshold {
			break
		}
		state.XP -= threshold
		state.Level++
	}

	return state
}
