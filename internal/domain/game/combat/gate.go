package combat

import (
	"fmt"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

const (
	paralysisBlockChance = 0.25
	freezeThawChance     = 0.20
)

// Legality is the outcome of the pre-move ailment check
type Legality struct {
	Allowed bool
	// Narrative explains a block
	Narrative string
	// Recovered is set when the check itself ended the ailment (woke up, thawed)
	Recovered Ailment
}

// CanAct runs the ailment gate for a combatant about to use a move. It
// mutates sleep counters and clears sleep or freeze when they end, whether
// or not the move that follows succeeds.
func CanAct(c *Combatant, roller dice.Roller) (Legality, error) {
	if c.Ailment() == AilmentSleep {
		if c.sleepTick() {
			return Legality{Narrative: fmt.Sprintf("%s is fast asleep.", c.name)}, nil
		}
		return Legality{Allowed: true, Recovered: AilmentSleep}, nil
	}

	switch c.Ailment() {
	case AilmentParalysis:
		draw, err := roller.Float()
		if err != nil {
			return Legality{}, apperrors.Wrap(err, "failed to roll paralysis check")
		}
		if draw < paralysisBlockChance {
			return Legality{Narrative: fmt.Sprintf("%s is paralyzed! It can't move!", c.name)}, nil
		}
	case AilmentFreeze:
		draw, err := roller.Float()
		if err != nil {
			return Legality{}, apperrors.Wrap(err, "failed to roll freeze check")
		}
		if draw >= freezeThawChance {
			return Legality{Narrative: fmt.Sprintf("%s is frozen solid!", c.name)}, nil
		}
		c.thaw()
		return Legality{Allowed: true, Recovered: AilmentFreeze}, nil
	}

	return Legality{Allowed: true}, nil
}

func recoveryNotice(name string, a Ailment) string {
	switch a {
	case AilmentSleep:
		return fmt.Sprintf("%s woke up! ", name)
	case AilmentFreeze:
		return fmt.Sprintf("%s thawed out! ", name)
	}
	return ""
}
