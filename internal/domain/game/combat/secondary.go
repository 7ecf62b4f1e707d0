package combat

import (
	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

// applySecondary rolls a move's secondary chances in burn, paralysis, freeze,
// poison order. Draws stop once the defender carries an ailment, so at most
// one sticks. Returns the ailment applied, if any.
func applySecondary(defender *Combatant, sec *catalog.SecondaryEffect, roller dice.Roller) (Ailment, error) {
	if sec == nil {
		return AilmentNone, nil
	}

	chances := []struct {
		ailment Ailment
		percent int
	}{
		{AilmentBurn, sec.Burn},
		{AilmentParalysis, sec.Paralysis},
		{AilmentFreeze, sec.Freeze},
		{AilmentPoison, sec.Poison},
	}

	for _, ch := range chances {
		if ch.percent <= 0 || defender.HasAilment() {
			continue
		}
		draw, err := roller.Float()
		if err != nil {
			return AilmentNone, apperrors.Wrapf(err, "failed to roll %s chance", ch.ailment)
		}
		if draw*100 < float64(ch.percent) && defender.Inflict(ch.ailment) {
			return ch.ailment, nil
		}
	}

	return AilmentNone, nil
}
