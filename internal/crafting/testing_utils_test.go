package crafting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/questward/craftforge/internal/domain"
	"github.com/questward/craftforge/internal/event"
	"github.com/questward/craftforge/internal/repository"
)

// MockRepository for crafting tests with thread-safety and row locking simulation
type MockRepository struct {
	sync.RWMutex
	states      map[string]*domain.PlayerState
	recipes     map[string]*domain.Recipe
	inventories map[string]map[string]int // userID -> itemID -> quantity

	// User locks for simulating DB row locking
	userLocks   map[string]*sync.Mutex
	userLocksMu sync.Mutex

	// Error injection for testing
	shouldFailBeginTx         bool
	shouldFailLockInventory   bool
	shouldFailSavePlayerState bool
	shouldFailCommit          bool
	beginTxError              error
	lockInventoryError        error
	savePlayerStateError      error
	commitError               error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		states:      make(map[string]*domain.PlayerState),
		recipes:     make(map[string]*domain.Recipe),
		inventories: make(map[string]map[string]int),
		userLocks:   make(map[string]*sync.Mutex),
	}
}

// ResetErrorFlags resets all error injection flags
func (m *MockRepository) ResetErrorFlags() {
	m.Lock()
	defer m.Unlock()
	m.shouldFailBeginTx = false
	m.shouldFailLockInventory = false
	m.shouldFailSavePlayerState = false
	m.shouldFailCommit = false
	m.beginTxError = nil
	m.lockInventoryError = nil
	m.savePlayerStateError = nil
	m.commitError = nil
}

// GetUserLock returns a mutex for a specific user ID, creating it if necessary
func (m *MockRepository) GetUserLock(userID string) *sync.Mutex {
	m.userLocksMu.Lock()
	defer m.userLocksMu.Unlock()
	if _, ok := m.userLocks[userID]; !ok {
		m.userLocks[userID] = &sync.Mutex{}
	}
	return m.userLocks[userID]
}

func (m *MockRepository) LoadPlayerState(ctx context.Context, userID string) (*domain.PlayerState, error) {
	m.RLock()
	defer m.RUnlock()
	state, ok := m.states[userID]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (m *MockRepository) ListActiveRecipes(ctx context.Context) ([]domain.Recipe, error) {
	m.RLock()
	defer m.RUnlock()
	var result []domain.Recipe
	for _, recipe := range m.recipes {
		if recipe.IsActive {
			result = append(result, *recipe)
		}
	}
	return result, nil
}

func (m *MockRepository) GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	m.RLock()
	defer m.RUnlock()
	recipe, ok := m.recipes[recipeID]
	if !ok {
		return nil, nil
	}
	copied := *recipe
	return &copied, nil
}

func (m *MockRepository) ListInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	m.RLock()
	defer m.RUnlock()
	return entriesFor(m.inventories[userID], userID), nil
}

func (m *MockRepository) GetInventoryItem(ctx context.Context, userID, itemID string) (*domain.InventoryEntry, error) {
	m.RLock()
	defer m.RUnlock()
	qty, ok := m.inventories[userID][itemID]
	if !ok {
		return nil, nil
	}
	return &domain.InventoryEntry{UserID: userID, ItemID: itemID, Quantity: qty}, nil
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	m.RLock()
	defer m.RUnlock()
	if m.shouldFailBeginTx {
		if m.beginTxError != nil {
			return nil, m.beginTxError
		}
		return nil, fmt.Errorf("failed to begin transaction")
	}
	return &MockTx{
		repo:         m,
		lockedUsers:  make(map[string]bool),
		stagedInvs:   make(map[string]map[string]int),
		stagedStates: make(map[string]*domain.PlayerState),
	}, nil
}

// Quantity reads a raw inventory quantity, for test assertions
func (m *MockRepository) Quantity(userID, itemID string) int {
	m.RLock()
	defer m.RUnlock()
	return m.inventories[userID][itemID]
}

// HasEntry reports whether an inventory row exists, for delete-at-zero assertions
func (m *MockRepository) HasEntry(userID, itemID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.inventories[userID][itemID]
	return ok
}

func entriesFor(inv map[string]int, userID string) []domain.InventoryEntry {
	if inv == nil {
		return nil
	}
	result := make([]domain.InventoryEntry, 0, len(inv))
	for itemID, qty := range inv {
		result = append(result, domain.InventoryEntry{UserID: userID, ItemID: itemID, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ItemID < result[j].ItemID })
	return result
}

// MockTx stages writes and applies them on Commit, so a rolled-back craft
// leaves the repository untouched
type MockTx struct {
	repo         *MockRepository
	lockedUsers  map[string]bool
	stagedInvs   map[string]map[string]int
	stagedStates map[string]*domain.PlayerState
	closed       bool
}

// lockUser simulates SELECT FOR UPDATE by locking the user record on first touch
func (t *MockTx) lockUser(userID string) {
	if !t.lockedUsers[userID] {
		t.repo.GetUserLock(userID).Lock()
		t.lockedUsers[userID] = true
	}
}

// stagedInv snapshots the user's inventory on first access
func (t *MockTx) stagedInv(userID string) map[string]int {
	if inv, ok := t.stagedInvs[userID]; ok {
		return inv
	}
	t.repo.RLock()
	inv := make(map[string]int, len(t.repo.inventories[userID]))
	for itemID, qty := range t.repo.inventories[userID] {
		inv[itemID] = qty
	}
	t.repo.RUnlock()
	t.stagedInvs[userID] = inv
	return inv
}

func (t *MockTx) LockPlayerState(ctx context.Context, userID string) (*domain.PlayerState, error) {
	if t.closed {
		return nil, errors.New(domain.ErrMsgTxClosed)
	}
	t.lockUser(userID)
	if staged, ok := t.stagedStates[userID]; ok {
		copied := *staged
		return &copied, nil
	}
	return t.repo.LoadPlayerState(ctx, userID)
}

func (t *MockTx) SavePlayerState(ctx context.Context, state domain.PlayerState) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.repo.RLock()
	shouldFail := t.repo.shouldFailSavePlayerState
	injectedErr := t.repo.savePlayerStateError
	t.repo.RUnlock()
	if shouldFail {
		if injectedErr != nil {
			return injectedErr
		}
		return fmt.Errorf("failed to save player state")
	}
	t.lockUser(state.UserID)
	copied := state
	t.stagedStates[state.UserID] = &copied
	return nil
}

func (t *MockTx) LockInventory(ctx context.Context, userID string, itemIDs []string) ([]domain.InventoryEntry, error) {
	if t.closed {
		return nil, errors.New(domain.ErrMsgTxClosed)
	}
	t.repo.RLock()
	shouldFail := t.repo.shouldFailLockInventory
	injectedErr := t.repo.lockInventoryError
	t.repo.RUnlock()
	if shouldFail {
		if injectedErr != nil {
			return nil, injectedErr
		}
		return nil, fmt.Errorf("failed to lock inventory")
	}
	t.lockUser(userID)
	inv := t.stagedInv(userID)

	requested := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		requested[id] = true
	}
	var result []domain.InventoryEntry
	for _, entry := range entriesFor(inv, userID) {
		if requested[entry.ItemID] {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (t *MockTx) DecrementInventoryItem(ctx context.Context, userID, itemID string, amount int) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.lockUser(userID)
	inv := t.stagedInv(userID)
	held := inv[itemID]
	if held < amount {
		return fmt.Errorf("%w: %s (need %d, have %d)", domain.ErrInsufficientIngredients, itemID, amount, held)
	}
	if held == amount {
		delete(inv, itemID)
	} else {
		inv[itemID] = held - amount
	}
	return nil
}

func (t *MockTx) UpsertInventoryItem(ctx context.Context, userID, itemID string, delta int) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.lockUser(userID)
	inv := t.stagedInv(userID)
	inv[itemID] += delta
	return nil
}

func (t *MockTx) Commit(ctx context.Context) error {
	t.repo.RLock()
	shouldFail := t.repo.shouldFailCommit
	injectedErr := t.repo.commitError
	t.repo.RUnlock()

	if shouldFail {
		t.releaseLocks()
		t.closed = true
		if injectedErr != nil {
			return injectedErr
		}
		return fmt.Errorf("failed to commit transaction")
	}

	t.repo.Lock()
	for userID, inv := range t.stagedInvs {
		stored := make(map[string]int, len(inv))
		for itemID, qty := range inv {
			stored[itemID] = qty
		}
		t.repo.inventories[userID] = stored
	}
	for userID, state := range t.stagedStates {
		copied := *state
		t.repo.states[userID] = &copied
	}
	t.repo.Unlock()

	t.releaseLocks()
	t.closed = true
	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.releaseLocks()
	t.closed = true
	t.stagedInvs = make(map[string]map[string]int)
	t.stagedStates = make(map[string]*domain.PlayerState)
	return nil
}

func (t *MockTx) releaseLocks() {
	for userID := range t.lockedUsers {
		t.repo.GetUserLock(userID).Unlock()
	}
	t.lockedUsers = make(map[string]bool)
}

// Test helper to setup test data
func setupTestData(repo *MockRepository) {
	repo.Lock()
	defer repo.Unlock()

	repo.states["user-alice"] = &domain.PlayerState{UserID: "user-alice", Level: 5, XP: 0, TotalXP: 900}
	repo.states["user-bob"] = &domain.PlayerState{UserID: "user-bob", Level: 1, XP: 0, TotalXP: 0}

	repo.recipes["recipe-1"] = &domain.Recipe{
		ID:             "recipe-1",
		Name:           "Health Potion",
		RequiredLevel:  3,
		ResultItemID:   "potion-health",
		ResultQuantity: 1,
		Ingredients: []domain.Ingredient{
			{ItemID: "herb-1", Quantity: 2},
			{ItemID: "water-1", Quantity: 1},
		},
		XPGained: 50,
		IsActive: true,
	}
	repo.recipes["recipe-retired"] = &domain.Recipe{
		ID:             "recipe-retired",
		Name:           "Old Charm",
		RequiredLevel:  1,
		ResultItemID:   "charm-old",
		ResultQuantity: 1,
		Ingredients: []domain.Ingredient{
			{ItemID: "herb-1", Quantity: 1},
		},
		XPGained: 10,
		IsActive: false,
	}

	repo.inventories["user-alice"] = map[string]int{
		"herb-1":  5,
		"water-1": 3,
	}
	repo.inventories["user-bob"] = map[string]int{
		"herb-1":  2,
		"water-1": 1,
	}
}

// recordingBus captures published events for assertions
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(ctx context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(eventType event.Type, handler event.Handler) {}

func (b *recordingBus) ofType(eventType event.Type) []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []event.Event
	for _, evt := range b.events {
		if evt.Type == eventType {
			result = append(result, evt)
		}
	}
	return result
}
