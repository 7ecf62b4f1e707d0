package services

import (
	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/events"
	"github.com/KirkDiggler/creature-battle/internal/repositories/battles"
	battleService "github.com/KirkDiggler/creature-battle/internal/services/battle"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Catalog       *catalog.Catalog
	EventBus      *events.Bus
	BattleService battleService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog          *catalog.Catalog
	BattleRepository battles.Repository
	EventBus         *events.Bus
	Roller           dice.Roller
	UUIDGenerator    uuid.Generator
	DefaultLevel     int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	// Use in-memory repository if none provided
	battleRepo := cfg.BattleRepository
	if battleRepo == nil {
		battleRepo = battles.NewInMemoryRepository()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	svc := battleService.NewService(&battleService.ServiceConfig{
		Repository:    battleRepo,
		Catalog:       cfg.Catalog,
		Roller:        cfg.Roller,
		UUIDGenerator: cfg.UUIDGenerator,
		EventBus:      bus,
		DefaultLevel:  cfg.DefaultLevel,
	})

	return &Provider{
		Catalog:       cfg.Catalog,
		EventBus:      bus,
		BattleService: svc,
	}
}
