package combat

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

// Outcome classifies how an action ended
type Outcome string

const (
	OutcomeFainted Outcome = "fainted"
	OutcomeNoPP    Outcome = "no_pp"
	OutcomeBlocked Outcome = "blocked"
	OutcomeMissed  Outcome = "missed"
	OutcomeStatus  Outcome = "status"
	OutcomeDamage  Outcome = "damage"
)

// StageChange records a stat stage shift applied by a status move
type StageChange struct {
	Stat      stats.Stat `json:"stat"`
	Requested int        `json:"requested"`
	Applied   int        `json:"applied"`
}

// ActionResult is the structured outcome of one action plus its narration
type ActionResult struct {
	Attacker        string       `json:"attacker"`
	Defender        string       `json:"defender"`
	Move            string       `json:"move"`
	Outcome         Outcome      `json:"outcome"`
	Hit             bool         `json:"hit"`
	Critical        bool         `json:"critical,omitempty"`
	Damage          int          `json:"damage,omitempty"`
	Effectiveness   float64      `json:"effectiveness,omitempty"`
	// Inflicted and Recovered are ailment transitions caused by this action.
	// They are empty, and omitted from JSON, when nothing changed.
	Inflicted       Ailment      `json:"inflicted,omitempty"`
	Recovered       Ailment      `json:"recovered,omitempty"`
	StageChange     *StageChange `json:"stage_change,omitempty"`
	DefenderFainted bool         `json:"defender_fainted,omitempty"`
	Narrative       string       `json:"narrative"`
}

// ResolveAction executes one move from attacker against defender.
//
// Gameplay outcomes (fainted attacker, no PP, ailment block, miss) come back
// as narratives. Errors are reserved for broken inputs: nil combatants, an
// unhydrated attacker or a slot the attacker does not own.
func ResolveAction(attacker, defender *Combatant, slot *MoveSlot, field Field, roller dice.Roller) (*ActionResult, error) {
	if attacker == nil || defender == nil {
		return nil, apperrors.InvalidArgument("attacker and defender are required")
	}
	if roller == nil {
		return nil, apperrors.InvalidArgument("roller is required")
	}
	if slot == nil || slot.move == nil {
		return nil, apperrors.InvalidArgument("move slot is required")
	}
	if !attacker.IsHydrated() {
		return nil, apperrors.FailedPreconditionf("moves for '%s' are not hydrated", attacker.name)
	}
	if !attacker.owns(slot) {
		return nil, apperrors.FailedPreconditionf("'%s' does not know %s", attacker.name, slot.move.Name)
	}

	move := slot.move
	result := &ActionResult{
		Attacker: attacker.name,
		Defender: defender.name,
		Move:     move.Name,
	}

	if attacker.IsFainted() {
		result.Outcome = OutcomeFainted
		result.Narrative = fmt.Sprintf("%s has fainted and cannot move!", attacker.name)
		return result, nil
	}

	if slot.pp <= 0 {
		result.Outcome = OutcomeNoPP
		result.Narrative = fmt.Sprintf("%s has no PP left for %s!", attacker.name, move.Name)
		return result, nil
	}

	legality, err := CanAct(attacker, roller)
	if err != nil {
		return nil, err
	}
	if !legality.Allowed {
		result.Outcome = OutcomeBlocked
		result.Narrative = legality.Narrative
		return result, nil
	}
	result.Recovered = legality.Recovered
	prefix := recoveryNotice(attacker.name, legality.Recovered)

	slot.spend()

	hit, err := rollHit(attacker, defender, move, roller)
	if err != nil {
		return nil, err
	}
	if !hit {
		result.Outcome = OutcomeMissed
		result.Narrative = prefix + fmt.Sprintf("%s's %s missed!", attacker.name, move.Name)
		return result, nil
	}
	result.Hit = true

	if !move.IsDamaging() {
		resolveStatus(result, defender, move)
		result.Narrative = prefix + result.Narrative
		return result, nil
	}

	if err := resolveDamage(result, attacker, defender, move, field, roller); err != nil {
		return nil, err
	}
	result.Narrative = prefix + result.Narrative
	return result, nil
}

func rollHit(attacker, defender *Combatant, move *catalog.Move, roller dice.Roller) (bool, error) {
	if move.AlwaysHits() {
		return true, nil
	}

	chance := float64(move.Accuracy) *
		stats.AccuracyModifier(attacker.stages.Accuracy) /
		stats.AccuracyModifier(defender.stages.Evasion)
	chance = math.Max(1, math.Min(100, chance))

	draw, err := roller.Float()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to roll accuracy")
	}
	return draw*100 < chance, nil
}

func resolveStatus(result *ActionResult, defender *Combatant, move *catalog.Move) {
	result.Outcome = OutcomeStatus
	used := fmt.Sprintf("%s used %s!", result.Attacker, move.Name)

	switch {
	case move.Stage != nil:
		applied := defender.ShiftStage(move.Stage.Target, move.Stage.Delta)
		result.StageChange = &StageChange{
			Stat:      move.Stage.Target,
			Requested: move.Stage.Delta,
			Applied:   applied,
		}
		result.Narrative = used
	case move.Status != nil && move.Status.Burn && defender.Inflict(AilmentBurn):
		result.Inflicted = AilmentBurn
		result.Narrative = fmt.Sprintf("%s %s %s", used, defender.name, ailmentVerb(AilmentBurn))
	default:
		result.Narrative = used
	}
}

func resolveDamage(result *ActionResult, attacker, defender *Combatant, move *catalog.Move, field Field, roller dice.Roller) error {
	dmg, err := CalculateDamage(attacker, defender, move, field, roller)
	if err != nil {
		return err
	}

	result.Outcome = OutcomeDamage
	result.Effectiveness = dmg.Effectiveness
	result.Damage = defender.takeDamage(dmg.Damage)
	result.DefenderFainted = defender.IsFainted()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s used %s!", attacker.name, move.Name)

	if dmg.Effectiveness == 0 {
		sb.WriteString(" It had no effect.")
		result.Narrative = sb.String()
		return nil
	}

	result.Critical = dmg.Critical
	fmt.Fprintf(&sb, " %d damage.", result.Damage)
	if dmg.Critical {
		sb.WriteString(" Critical hit!")
	}
	switch {
	case dmg.Effectiveness >= 2:
		sb.WriteString(" It's super effective!")
	case dmg.Effectiveness <= 0.5:
		sb.WriteString(" It's not very effective...")
	}

	inflicted, err := applySecondary(defender, move.Secondary, roller)
	if err != nil {
		return err
	}
	if inflicted != AilmentNone {
		result.Inflicted = inflicted
		fmt.Fprintf(&sb, " %s %s", defender.name, ailmentVerb(inflicted))
	}

	result.Narrative = sb.String()
	return nil
}
