package battles

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	battles map[string]*combat.Battle
	byOwner map[string]map[string]struct{} // ownerID -> battle IDs
	clock   TimeProvider
}

// NewInMemoryRepository creates a new in-memory battle repository. Stored
// battles are copies, so callers never share state with the store.
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		battles: make(map[string]*combat.Battle),
		byOwner: make(map[string]map[string]struct{}),
		clock:   RealTime(),
	}
}

// Create stores a new battle
func (r *inMemoryRepository) Create(ctx context.Context, battle *combat.Battle) error {
	if battle == nil || battle.ID == "" {
		return apperrors.InvalidArgument("battle with an ID is required")
	}

	now := r.clock.Now()
	battle.CreatedAt = now
	battle.UpdatedAt = now

	stored, err := clone(battle)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[battle.ID]; exists {
		return apperrors.AlreadyExistsf("battle %s already exists", battle.ID)
	}

	r.battles[battle.ID] = stored
	if r.byOwner[battle.OwnerID] == nil {
		r.byOwner[battle.OwnerID] = make(map[string]struct{})
	}
	r.byOwner[battle.OwnerID][battle.ID] = struct{}{}

	return nil
}

// Get retrieves a battle by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*combat.Battle, error) {
	r.mu.RLock()
	stored, exists := r.battles[id]
	r.mu.RUnlock()

	if !exists {
		return nil, apperrors.NotFoundf("battle not found: %s", id)
	}

	return clone(stored)
}

// Update replaces a stored battle
func (r *inMemoryRepository) Update(ctx context.Context, battle *combat.Battle) error {
	if battle == nil || battle.ID == "" {
		return apperrors.InvalidArgument("battle with an ID is required")
	}

	battle.UpdatedAt = r.clock.Now()
	stored, err := clone(battle)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[battle.ID]; !exists {
		return apperrors.NotFoundf("battle not found: %s", battle.ID)
	}
	r.battles[battle.ID] = stored

	return nil
}

// Delete removes a battle
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.battles[id]
	if !exists {
		return apperrors.NotFoundf("battle not found: %s", id)
	}

	delete(r.battles, id)
	if owned := r.byOwner[stored.OwnerID]; owned != nil {
		delete(owned, id)
		if len(owned) == 0 {
			delete(r.byOwner, stored.OwnerID)
		}
	}

	return nil
}

// ListByOwner retrieves every battle an owner started
func (r *inMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*combat.Battle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*combat.Battle, 0, len(r.byOwner[ownerID]))
	for id := range r.byOwner[ownerID] {
		battle, err := clone(r.battles[id])
		if err != nil {
			return nil, err
		}
		result = append(result, battle)
	}

	sortByCreated(result)
	return result, nil
}

func sortByCreated(list []*combat.Battle) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
