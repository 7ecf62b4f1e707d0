package battle

//go:generate mockgen -destination=mock/mock_service.go -package=mockbattle -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/events"
	"github.com/KirkDiggler/creature-battle/internal/repositories/battles"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

const (
	// DefaultLevel is used for roster entries that leave the level unset
	DefaultLevel = 50
)

// Service defines the battle service interface
type Service interface {
	// StartBattle builds both active combatants and stores a new battle
	StartBattle(ctx context.Context, input *StartBattleInput) (*combat.Battle, error)

	// GetBattle retrieves a battle by ID
	GetBattle(ctx context.Context, battleID string) (*combat.Battle, error)

	// GetActiveBattle retrieves the newest unfinished battle an owner started
	GetActiveBattle(ctx context.Context, ownerID string) (*combat.Battle, error)

	// ListBattles retrieves every stored battle an owner started
	ListBattles(ctx context.Context, ownerID string) ([]*combat.Battle, error)

	// SubmitTurn resolves one move per side, given as zero-based slot indexes
	SubmitTurn(ctx context.Context, battleID string, moveA, moveB int) (*TurnOutcome, error)

	// SubmitMove resolves a turn where side B picks a random usable move
	SubmitMove(ctx context.Context, battleID string, moveA int) (*TurnOutcome, error)

	// EndTurn applies end-of-turn ailment damage to both sides
	EndTurn(ctx context.Context, battleID string) (*EndTurnOutcome, error)

	// CycleWeather advances the weather one step
	CycleWeather(ctx context.Context, battleID string) (*combat.Battle, error)

	// SetWeather replaces the weather
	SetWeather(ctx context.Context, battleID string, weather combat.Weather) (*combat.Battle, error)

	// DeleteBattle removes a battle
	DeleteBattle(ctx context.Context, battleID string) error
}

// Catalog is the reference data the service needs
type Catalog interface {
	combat.SpeciesLookup
	combat.MoveLookup
	Chart() *typechart.Chart
	DefaultMoveIDs(n int) []string
}

// StartBattleInput contains data for starting a battle. Only the first entry
// of each team fights.
type StartBattleInput struct {
	OwnerID   string
	ChannelID string
	TeamA     []combat.RosterEntry
	TeamB     []combat.RosterEntry
}

// TurnOutcome is a resolved turn and the battle after it
type TurnOutcome struct {
	Battle *combat.Battle
	Result *combat.TurnResult
}

// EndTurnOutcome is an end-of-turn tick and the battle after it
type EndTurnOutcome struct {
	Battle *combat.Battle
	Result *combat.EndTurnResult
}

type service struct {
	repository    battles.Repository
	catalog       Catalog
	roller        dice.Roller
	uuidGenerator uuid.Generator
	eventBus      *events.Bus
	defaultLevel  int

	locks keyedMutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    battles.Repository
	Catalog       Catalog
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
	EventBus      *events.Bus
	DefaultLevel  int
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		catalog:       cfg.Catalog,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
		eventBus:      cfg.EventBus,
		defaultLevel:  cfg.DefaultLevel,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.defaultLevel == 0 {
		svc.defaultLevel = DefaultLevel
	}

	return svc
}

// StartBattle builds both active combatants and stores a new battle
func (s *service) StartBattle(ctx context.Context, input *StartBattleInput) (*combat.Battle, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if len(input.TeamA) == 0 || len(input.TeamB) == 0 {
		return nil, apperrors.InvalidArgument("both teams must have at least one combatant")
	}
	if strings.TrimSpace(input.OwnerID) == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}

	a, err := s.buildCombatant(input.TeamA[0])
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build team A")
	}
	b, err := s.buildCombatant(input.TeamB[0])
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build team B")
	}

	battle, err := combat.NewBattle(s.uuidGenerator.New(), input.OwnerID, a, b)
	if err != nil {
		return nil, err
	}
	battle.ChannelID = input.ChannelID

	if err := s.repository.Create(ctx, battle); err != nil {
		return nil, apperrors.Wrap(err, "failed to save battle")
	}

	log.Printf("BattleService: Started battle %s for %s: %s (Lv%d) vs %s (Lv%d)",
		battle.ID, battle.OwnerID, a.Name(), a.Level(), b.Name(), b.Level())

	s.emit(&events.BattleStartedEvent{
		BaseEvent: events.NewBaseEvent(events.EventTypeBattleStarted, battle.ID),
		OwnerID:   battle.OwnerID,
		A:         a.Name(),
		B:         b.Name(),
	})

	return battle, nil
}

func (s *service) buildCombatant(entry combat.RosterEntry) (*combat.Combatant, error) {
	if entry.Level == 0 {
		entry.Level = s.defaultLevel
	}
	if len(entry.MoveIDs) == 0 {
		entry.MoveIDs = s.catalog.DefaultMoveIDs(combat.MaxMoves)
	}

	c, err := combat.NewCombatant(entry, s.catalog)
	if err != nil {
		return nil, err
	}
	if err := combat.HydrateMoves(c, s.catalog); err != nil {
		return nil, err
	}
	return c, nil
}

// GetBattle retrieves a battle by ID
func (s *service) GetBattle(ctx context.Context, battleID string) (*combat.Battle, error) {
	if strings.TrimSpace(battleID) == "" {
		return nil, apperrors.InvalidArgument("battle ID is required")
	}

	battle, err := s.repository.Get(ctx, battleID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get battle '%s'", battleID)
	}
	return battle, nil
}

// GetActiveBattle retrieves the newest unfinished battle an owner started
func (s *service) GetActiveBattle(ctx context.Context, ownerID string) (*combat.Battle, error) {
	list, err := s.ListBattles(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsOver() {
			return list[i], nil
		}
	}
	return nil, apperrors.NotFoundf("no active battle for '%s'", ownerID)
}

// ListBattles retrieves every stored battle an owner started
func (s *service) ListBattles(ctx context.Context, ownerID string) ([]*combat.Battle, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}

	list, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to list battles for '%s'", ownerID)
	}
	return list, nil
}

// SubmitTurn resolves one move per side
func (s *service) SubmitTurn(ctx context.Context, battleID string, moveA, moveB int) (*TurnOutcome, error) {
	unlock := s.lock(battleID)
	defer unlock()

	battle, err := s.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}

	return s.resolveTurn(ctx, battle, moveA, moveB)
}

// SubmitMove resolves a turn where side B picks a random usable move
func (s *service) SubmitMove(ctx context.Context, battleID string, moveA int) (*TurnOutcome, error) {
	unlock := s.lock(battleID)
	defer unlock()

	battle, err := s.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}

	moveB, err := ChooseMove(battle.B, s.roller)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to choose opponent move")
	}

	return s.resolveTurn(ctx, battle, moveA, moveB)
}

func (s *service) resolveTurn(ctx context.Context, battle *combat.Battle, moveA, moveB int) (*TurnOutcome, error) {
	result, err := battle.ResolveTurn(moveA, moveB, s.catalog.Chart(), s.roller)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to resolve turn for battle '%s'", battle.ID)
	}

	if err := s.repository.Update(ctx, battle); err != nil {
		return nil, apperrors.Wrap(err, "failed to save battle")
	}

	log.Printf("BattleService: Battle %s turn %d resolved with %d actions", battle.ID, result.Turn, len(result.Actions))

	for i, action := range result.Actions {
		s.emit(&events.ActionResolvedEvent{
			BaseEvent: events.NewBaseEvent(events.EventTypeActionResolved, battle.ID),
			Turn:      result.Turn,
			Side:      result.Order[i],
			Result:    action,
		})
	}
	s.emitFainted(battle, result.Fainted)

	return &TurnOutcome{Battle: battle, Result: result}, nil
}

// EndTurn applies end-of-turn ailment damage to both sides
func (s *service) EndTurn(ctx context.Context, battleID string) (*EndTurnOutcome, error) {
	unlock := s.lock(battleID)
	defer unlock()

	battle, err := s.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}

	result, err := battle.EndTurn()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to end turn for battle '%s'", battleID)
	}

	if err := s.repository.Update(ctx, battle); err != nil {
		return nil, apperrors.Wrap(err, "failed to save battle")
	}

	s.emit(&events.TurnEndedEvent{
		BaseEvent: events.NewBaseEvent(events.EventTypeTurnEnded, battle.ID),
		Turn:      result.Turn,
		HPLost:    result.HPLost,
		Lines:     result.Lines,
	})
	s.emitFainted(battle, result.Fainted)

	return &EndTurnOutcome{Battle: battle, Result: result}, nil
}

// CycleWeather advances the weather one step
func (s *service) CycleWeather(ctx context.Context, battleID string) (*combat.Battle, error) {
	return s.changeWeather(ctx, battleID, func(b *combat.Battle) {
		b.CycleWeather()
	})
}

// SetWeather replaces the weather
func (s *service) SetWeather(ctx context.Context, battleID string, weather combat.Weather) (*combat.Battle, error) {
	if _, err := combat.ParseWeather(string(weather)); err != nil {
		return nil, err
	}
	return s.changeWeather(ctx, battleID, func(b *combat.Battle) {
		b.SetWeather(weather)
	})
}

func (s *service) changeWeather(ctx context.Context, battleID string, apply func(*combat.Battle)) (*combat.Battle, error) {
	unlock := s.lock(battleID)
	defer unlock()

	battle, err := s.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}
	if battle.IsOver() {
		return nil, apperrors.FailedPreconditionf("battle '%s' is already over", battleID)
	}

	apply(battle)

	if err := s.repository.Update(ctx, battle); err != nil {
		return nil, apperrors.Wrap(err, "failed to save battle")
	}

	s.emit(&events.WeatherChangedEvent{
		BaseEvent: events.NewBaseEvent(events.EventTypeWeatherChanged, battle.ID),
		Weather:   battle.Weather,
	})

	return battle, nil
}

// DeleteBattle removes a battle
func (s *service) DeleteBattle(ctx context.Context, battleID string) error {
	unlock := s.lock(battleID)
	defer unlock()

	if err := s.repository.Delete(ctx, battleID); err != nil {
		return apperrors.Wrapf(err, "failed to delete battle '%s'", battleID)
	}
	return nil
}

// lock serializes every mutation of one battle. Different battles do not
// block each other.
func (s *service) lock(battleID string) func() {
	return s.locks.Lock(battleID)
}

func (s *service) emitFainted(battle *combat.Battle, fainted []combat.Side) {
	for _, side := range fainted {
		s.emit(&events.CombatantFaintedEvent{
			BaseEvent: events.NewBaseEvent(events.EventTypeCombatantFainted, battle.ID),
			Side:      side,
			Name:      battle.Combatant(side).Name(),
		})
	}
	if len(fainted) > 0 && battle.IsOver() {
		s.emit(&events.BattleFinishedEvent{
			BaseEvent: events.NewBaseEvent(events.EventTypeBattleFinished, battle.ID),
			Winner:    battle.Winner,
		})
	}
}

func (s *service) emit(event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("BattleService: Failed to emit %s for battle %s: %v", event.GetType(), event.GetBattleID(), err)
	}
}
