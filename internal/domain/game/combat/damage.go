package combat

import (
	"math"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

const (
	critSides       = 16
	critMultiplier  = 2.0
	varianceFloor   = 0.85
	varianceSpread  = 0.15
	burnPhysicalCut = 0.5
)

// Field is the shared battle context a move resolves in
type Field struct {
	Weather Weather
	Chart   *typechart.Chart
}

// DamageResult breaks down one damage calculation
type DamageResult struct {
	Damage        int
	Base          int
	Critical      bool
	Variance      float64
	STAB          float64
	Effectiveness float64
	Modifier      float64
}

// BaseDamage is the level, power and stat part of the formula before any modifier
func BaseDamage(level, power, offense, defense int) int {
	if defense < 1 {
		defense = 1
	}
	levelTerm := math.Floor(float64(2*level)/5) + 2
	inner := math.Floor(levelTerm * float64(power) * (float64(offense) / float64(defense)))
	return int(math.Floor(inner/50)) + 2
}

// CalculateDamage rolls a crit and variance and computes final damage for a
// damaging move. A 0x type match deals 0; every other hit deals at least 1.
func CalculateDamage(attacker, defender *Combatant, move *catalog.Move, field Field, roller dice.Roller) (*DamageResult, error) {
	critRoll, err := roller.Roll(1, critSides, 0)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to roll critical hit")
	}
	crit := critRoll.Is(1)

	draw, err := roller.Float()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to roll damage variance")
	}

	offRaw, offStage := attacker.stats.Attack, attacker.stages.Attack
	defRaw, defStage := defender.stats.Defense, defender.stages.Defense
	if move.Category == catalog.CategorySpecial {
		offRaw, offStage = attacker.stats.SpecialAttack, attacker.stages.SpecialAttack
		defRaw, defStage = defender.stats.SpecialDefense, defender.stages.SpecialDefense
	}
	if crit {
		if offStage < 0 {
			offStage = 0
		}
		if defStage > 0 {
			defStage = 0
		}
	}

	offense := int(math.Floor(float64(offRaw) * stats.StageModifier(offStage)))
	defense := int(math.Floor(float64(defRaw) * stats.StageModifier(defStage)))
	if defense < 1 {
		defense = 1
	}

	result := &DamageResult{
		Base:          BaseDamage(attacker.level, move.Power, offense, defense),
		Critical:      crit,
		Variance:      varianceFloor + draw*varianceSpread,
		STAB:          STAB(attacker, move.Type),
		Effectiveness: TypeEffectiveness(move.Type, defender, field.Chart),
	}

	modifier := field.Weather.Modifier(move.Type)
	if crit {
		modifier *= critMultiplier
	}
	modifier *= result.Variance
	modifier *= result.STAB
	modifier *= result.Effectiveness
	if move.Category == catalog.CategoryPhysical && attacker.Ailment() == AilmentBurn {
		modifier *= burnPhysicalCut
	}
	result.Modifier = modifier

	if result.Effectiveness == 0 {
		return result, nil
	}

	result.Damage = int(math.Floor(float64(result.Base) * modifier))
	if result.Damage < 1 {
		result.Damage = 1
	}
	return result, nil
}
