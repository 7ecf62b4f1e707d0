package catalog

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
)

// Category is a move's damage class
type Category string

const (
	CategoryPhysical Category = "Physical"
	CategorySpecial  Category = "Special"
	CategoryStatus   Category = "Status"
)

// Species is immutable reference data for a creature
type Species struct {
	ID     string               `json:"id"`
	Name   string               `json:"name"`
	Types  []typechart.TypeName `json:"types"`
	Base   []int                `json:"base"` // HP, Atk, Def, SpA, SpD, Spe
	Sprite string               `json:"sprite,omitempty"`
}

// BaseStatCount is the number of values a species lists under base
const BaseStatCount = 6

// BaseStats returns the base values as named fields. The species must have
// passed catalog validation.
func (s *Species) BaseStats() stats.BaseStats {
	return stats.BaseStats{
		HP:             s.Base[0],
		Attack:         s.Base[1],
		Defense:        s.Base[2],
		SpecialAttack:  s.Base[3],
		SpecialDefense: s.Base[4],
		Speed:          s.Base[5],
	}
}

// SecondaryEffect holds percentage chances to inflict an ailment on the target
// after a damaging hit
type SecondaryEffect struct {
	Burn      int `json:"burn,omitempty"`
	Paralysis int `json:"para,omitempty"`
	Freeze    int `json:"freeze,omitempty"`
	Poison    int `json:"poison,omitempty"`
}

// StageEffect shifts one of the target's stat stages
type StageEffect struct {
	Target stats.Stat `json:"target"`
	Delta  int        `json:"delta"`
}

// StatusEffect is a guaranteed ailment from a Status move
type StatusEffect struct {
	Burn bool `json:"burn,omitempty"`
}

// Move is immutable reference data for an action
type Move struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Type      typechart.TypeName `json:"type"`
	Category  Category           `json:"cat"`
	Power     int                `json:"power"`
	Accuracy  int                `json:"acc"`
	PP        int                `json:"pp"`
	Secondary *SecondaryEffect   `json:"sec,omitempty"`
	Stage     *StageEffect       `json:"stage,omitempty"`
	Status    *StatusEffect      `json:"status,omitempty"`
}

// AlwaysHits reports whether the move skips the accuracy roll
func (m *Move) AlwaysHits() bool {
	return m.Accuracy <= 0 || m.Accuracy >= 1000
}

// IsDamaging reports whether the move goes through the damage pipeline
func (m *Move) IsDamaging() bool {
	return m.Category == CategoryPhysical || m.Category == CategorySpecial
}
