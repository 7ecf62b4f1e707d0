package battle

import (
	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

// ChooseMove picks a random slot among the combatant's moves that still have
// PP. With every slot drained it falls back to slot 0 so the engine narrates
// the empty move.
func ChooseMove(c *combat.Combatant, roller dice.Roller) (int, error) {
	if c == nil || !c.IsHydrated() {
		return 0, apperrors.FailedPrecondition("combatant moves are not hydrated")
	}

	var usable []int
	for i, slot := range c.Moves() {
		if slot.PP() > 0 {
			usable = append(usable, i)
		}
	}
	if len(usable) == 0 {
		return 0, nil
	}
	if len(usable) == 1 {
		return usable[0], nil
	}

	roll, err := roller.Roll(1, len(usable), 0)
	if err != nil {
		return 0, err
	}
	return usable[roll.Total-1], nil
}
