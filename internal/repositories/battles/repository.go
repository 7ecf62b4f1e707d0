package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=mockbattles -source=repository.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
)

// Repository defines the interface for battle snapshot storage
type Repository interface {
	// Create stores a new battle
	Create(ctx context.Context, battle *combat.Battle) error

	// Get retrieves a battle by ID
	Get(ctx context.Context, id string) (*combat.Battle, error)

	// Update replaces a stored battle
	Update(ctx context.Context, battle *combat.Battle) error

	// Delete removes a battle
	Delete(ctx context.Context, id string) error

	// ListByOwner retrieves every stored battle an owner started, oldest first
	ListByOwner(ctx context.Context, ownerID string) ([]*combat.Battle, error)
}

// TimeProvider stamps stored battles
type TimeProvider interface {
	Now() time.Time
}

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }

// RealTime returns the wall clock
func RealTime() TimeProvider { return realTime{} }
