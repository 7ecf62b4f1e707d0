package combat

import (
	"math"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

// paralysisSpeedFactor scales speed while paralyzed
const paralysisSpeedFactor = 0.25

// EffectiveSpeed is speed after its stage and the paralysis penalty, at least 1
func EffectiveSpeed(c *Combatant) int {
	s := int(math.Floor(float64(c.stats.Speed) * stats.StageModifier(c.stages.Speed)))
	if c.Ailment() == AilmentParalysis {
		s = int(math.Floor(float64(s) * paralysisSpeedFactor))
	}
	if s < 1 {
		return 1
	}
	return s
}

// MovesFirst decides whether a acts before b this turn. Faster goes first and
// an exact tie is a coin flip.
func MovesFirst(a, b *Combatant, roller dice.Roller) (bool, error) {
	sa, sb := EffectiveSpeed(a), EffectiveSpeed(b)
	if sa != sb {
		return sa > sb, nil
	}

	coin, err := roller.Roll(1, 2, 0)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to break speed tie")
	}
	return coin.Is(1), nil
}
