package combat

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
)

// stabBonus is the damage multiplier for a move matching one of the attacker's types
const stabBonus = 1.5

// IsSameType reports whether t is one of the combatant's types
func IsSameType(c *Combatant, t typechart.TypeName) bool {
	for _, own := range c.types {
		if own == t {
			return true
		}
	}
	return false
}

// STAB returns the same-type bonus for a move of type t
func STAB(c *Combatant, t typechart.TypeName) float64 {
	if IsSameType(c, t) {
		return stabBonus
	}
	return 1
}

// TypeEffectiveness combines the chart multiplier across the defender's types
func TypeEffectiveness(attacking typechart.TypeName, defender *Combatant, chart *typechart.Chart) float64 {
	defending := defender.types
	if len(defending) > 2 {
		defending = defending[:2]
	}
	return chart.Combine(attacking, defending)
}
