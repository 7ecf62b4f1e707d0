package combat

import (
	"strings"

	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

// MaxMoves is the number of move slots a combatant can carry
const MaxMoves = 4

// RosterEntry is what a team builder hands the engine for one creature
type RosterEntry struct {
	SpeciesID string   `json:"species_id"`
	Level     int      `json:"level"`
	MoveIDs   []string `json:"move_ids"`
}

// SpeciesLookup resolves species ids
type SpeciesLookup interface {
	Species(id string) (*catalog.Species, error)
}

// MoveLookup resolves move ids
type MoveLookup interface {
	Move(id string) (*catalog.Move, error)
}

// MoveSlot is a hydrated move with its remaining uses
type MoveSlot struct {
	move *catalog.Move
	pp   int
}

// Move returns the static move data
func (s *MoveSlot) Move() *catalog.Move {
	return s.move
}

// PP returns the remaining uses
func (s *MoveSlot) PP() int {
	return s.pp
}

func (s *MoveSlot) spend() {
	if s.pp > 0 {
		s.pp--
	}
}

// Combatant is the mutable in-battle state of one creature.
//
// Moves are created in two stages: NewCombatant records the move ids only and
// HydrateMoves swaps them for full move data exactly once. Until then the
// combatant cannot act.
type Combatant struct {
	speciesID string
	name      string
	sprite    string
	level     int
	types     []typechart.TypeName
	iv        int
	evs       [6]int
	stats     stats.Derived

	hp         int
	ailment    Ailment
	sleepTurns int
	badPoison  int
	stages     stats.Stages

	moveIDs []string
	moves   []*MoveSlot
}

// NewCombatant derives stats for a roster entry and sets HP to maximum
func NewCombatant(entry RosterEntry, species SpeciesLookup) (*Combatant, error) {
	if species == nil {
		return nil, apperrors.InvalidArgument("species catalog is required")
	}
	if entry.Level < stats.MinLevel || entry.Level > stats.MaxLevel {
		return nil, apperrors.InvalidArgumentf("level %d must be between %d and %d", entry.Level, stats.MinLevel, stats.MaxLevel)
	}
	if len(entry.MoveIDs) == 0 || len(entry.MoveIDs) > MaxMoves {
		return nil, apperrors.InvalidArgumentf("a combatant needs 1 to %d moves, got %d", MaxMoves, len(entry.MoveIDs))
	}
	for _, id := range entry.MoveIDs {
		if strings.TrimSpace(id) == "" {
			return nil, apperrors.InvalidArgument("move id cannot be empty")
		}
	}

	s, err := species.Species(entry.SpeciesID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to create combatant for '%s'", entry.SpeciesID)
	}

	c := &Combatant{
		speciesID: s.ID,
		name:      s.Name,
		sprite:    s.Sprite,
		level:     entry.Level,
		types:     append([]typechart.TypeName(nil), s.Types...),
		iv:        stats.DefaultIV,
		ailment:   AilmentNone,
		moveIDs:   append([]string(nil), entry.MoveIDs...),
	}
	c.stats = s.BaseStats().Derive(c.iv, c.evs[:], c.level)
	c.hp = c.stats.MaxHP

	return c, nil
}

// HydrateMoves joins the combatant's move ids against full move data and
// fills every slot's PP to the move's maximum
func HydrateMoves(c *Combatant, moves MoveLookup) error {
	if c == nil || moves == nil {
		return apperrors.InvalidArgument("combatant and move catalog are required")
	}
	if c.IsHydrated() {
		return apperrors.FailedPreconditionf("moves for '%s' are already hydrated", c.name)
	}

	slots := make([]*MoveSlot, 0, len(c.moveIDs))
	for _, id := range c.moveIDs {
		m, err := moves.Move(id)
		if err != nil {
			return apperrors.Wrapf(err, "failed to hydrate moves for '%s'", c.name)
		}
		slots = append(slots, &MoveSlot{move: m, pp: m.PP})
	}

	c.moves = slots
	return nil
}

// IsHydrated reports whether moves have been joined to their data
func (c *Combatant) IsHydrated() bool {
	return c.moves != nil
}

// SpeciesID returns the species the combatant was built from
func (c *Combatant) SpeciesID() string { return c.speciesID }

// Name returns the display name
func (c *Combatant) Name() string { return c.name }

// Sprite returns the sprite key
func (c *Combatant) Sprite() string { return c.sprite }

// Level returns the level
func (c *Combatant) Level() int { return c.level }

// Types returns a copy of the combatant's types
func (c *Combatant) Types() []typechart.TypeName {
	return append([]typechart.TypeName(nil), c.types...)
}

// Stats returns the derived battle stats
func (c *Combatant) Stats() stats.Derived { return c.stats }

// HP returns current HP
func (c *Combatant) HP() int { return c.hp }

// MaxHP returns maximum HP
func (c *Combatant) MaxHP() int { return c.stats.MaxHP }

// IsFainted reports whether HP has reached zero
func (c *Combatant) IsFainted() bool { return c.hp <= 0 }

// Stages returns a copy of the stat stages
func (c *Combatant) Stages() stats.Stages { return c.stages }

// ShiftStage moves a stat stage by delta, clamped, and returns the applied change
func (c *Combatant) ShiftStage(stat stats.Stat, delta int) int {
	return c.stages.Shift(stat, delta)
}

// MoveIDs returns the move ids the combatant was built with
func (c *Combatant) MoveIDs() []string {
	return append([]string(nil), c.moveIDs...)
}

// Moves returns the hydrated move slots, nil before hydration
func (c *Combatant) Moves() []*MoveSlot {
	if !c.IsHydrated() {
		return nil
	}
	return append([]*MoveSlot(nil), c.moves...)
}

// Slot returns the move slot at index
func (c *Combatant) Slot(index int) (*MoveSlot, error) {
	if !c.IsHydrated() {
		return nil, apperrors.FailedPreconditionf("moves for '%s' are not hydrated", c.name)
	}
	if index < 0 || index >= len(c.moves) {
		return nil, apperrors.InvalidArgumentf("move slot %d out of range for '%s' (has %d)", index+1, c.name, len(c.moves))
	}
	return c.moves[index], nil
}

func (c *Combatant) owns(slot *MoveSlot) bool {
	for _, s := range c.moves {
		if s == slot {
			return true
		}
	}
	return false
}

// SetHP sets current HP clamped to [0, max]. Snapshot restore goes through
// it so a stored HP above a since-lowered max cannot survive a reload.
func (c *Combatant) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > c.stats.MaxHP {
		hp = c.stats.MaxHP
	}
	c.hp = hp
}

// takeDamage removes up to amount HP and returns what was actually lost
func (c *Combatant) takeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > c.hp {
		amount = c.hp
	}
	c.hp -= amount
	return amount
}
