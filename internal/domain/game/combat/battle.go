package combat

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
)

// Side identifies one half of a battle
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Status is the lifecycle state of a battle
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// maxLogEntries bounds the battle log kept on the snapshot
const maxLogEntries = 100

// Battle is a 1v1 fight between the active combatants of two rosters
type Battle struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	ChannelID string     `json:"channel_id,omitempty"`
	Status    Status     `json:"status"`
	Weather   Weather    `json:"weather"`
	Turn      int        `json:"turn"`
	A         *Combatant `json:"a"`
	B         *Combatant `json:"b"`
	Winner    Side       `json:"winner,omitempty"`
	Log       []string   `json:"log"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TurnResult is what happened during one ResolveTurn call
type TurnResult struct {
	Turn    int             `json:"turn"`
	Order   []Side          `json:"order"`
	Actions []*ActionResult `json:"actions"`
	Fainted []Side          `json:"fainted,omitempty"`
	Lines   []string        `json:"lines"`
}

// EndTurnResult is what happened during one EndTurn call
type EndTurnResult struct {
	Turn    int          `json:"turn"`
	HPLost  map[Side]int `json:"hp_lost"`
	Fainted []Side       `json:"fainted,omitempty"`
	Lines   []string     `json:"lines"`
}

// NewBattle creates an active battle between two hydrated combatants
func NewBattle(id, ownerID string, a, b *Combatant) (*Battle, error) {
	if a == nil || b == nil {
		return nil, apperrors.InvalidArgument("both combatants are required")
	}
	if !a.IsHydrated() || !b.IsHydrated() {
		return nil, apperrors.FailedPrecondition("combatants must be hydrated before battle")
	}

	now := time.Now()
	return &Battle{
		ID:        id,
		OwnerID:   ownerID,
		Status:    StatusActive,
		Weather:   WeatherNone,
		Turn:      1,
		A:         a,
		B:         b,
		Log:       []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Combatant returns the combatant on a side
func (b *Battle) Combatant(side Side) *Combatant {
	if side == SideB {
		return b.B
	}
	return b.A
}

// IsOver reports whether the battle has finished
func (b *Battle) IsOver() bool {
	return b.Status == StatusFinished
}

// ResolveTurn resolves one move per side in speed order. The second actor is
// skipped when the first knocks it out.
func (b *Battle) ResolveTurn(moveA, moveB int, chart *typechart.Chart, roller dice.Roller) (*TurnResult, error) {
	if b.IsOver() {
		return nil, apperrors.FailedPreconditionf("battle %s is already over", b.ID)
	}
	if roller == nil {
		return nil, apperrors.InvalidArgument("roller is required")
	}

	slots := map[Side]*MoveSlot{}
	picks := []struct {
		side  Side
		index int
	}{{SideA, moveA}, {SideB, moveB}}
	for _, p := range picks {
		slot, err := b.Combatant(p.side).Slot(p.index)
		if err != nil {
			return nil, apperrors.Wrapf(err, "invalid move for side %s", p.side)
		}
		slots[p.side] = slot
	}

	aFirst, err := MovesFirst(b.A, b.B, roller)
	if err != nil {
		return nil, err
	}
	order := []Side{SideB, SideA}
	if aFirst {
		order = []Side{SideA, SideB}
	}

	result := &TurnResult{Turn: b.Turn, Order: order}
	field := Field{Weather: b.Weather, Chart: chart}

	for _, side := range order {
		actor, target := b.Combatant(side), b.Combatant(side.Other())
		if actor.IsFainted() {
			continue
		}

		action, err := ResolveAction(actor, target, slots[side], field, roller)
		if err != nil {
			return nil, apperrors.Wrapf(err, "failed to resolve side %s", side)
		}
		result.Actions = append(result.Actions, action)
		result.Lines = append(result.Lines, action.Narrative)

		if target.IsFainted() {
			result.Fainted = append(result.Fainted, side.Other())
			result.Lines = append(result.Lines, fmt.Sprintf("%s fainted!", target.name))
			break
		}
	}

	b.append(result.Lines...)
	b.settle(b.Turn)
	b.Turn++
	b.UpdatedAt = time.Now()

	return result, nil
}

// EndTurn applies end-of-turn ailment damage to both sides. Its lines are
// logged under the turn that was last resolved.
func (b *Battle) EndTurn() (*EndTurnResult, error) {
	if b.IsOver() {
		return nil, apperrors.FailedPreconditionf("battle %s is already over", b.ID)
	}

	turn := max(1, b.Turn-1)
	result := &EndTurnResult{Turn: turn, HPLost: map[Side]int{}}
	for _, side := range []Side{SideA, SideB} {
		c := b.Combatant(side)
		lost := ApplyEndOfTurn(c)
		result.HPLost[side] = lost
		if lost == 0 {
			continue
		}
		result.Lines = append(result.Lines, fmt.Sprintf("%s (-%d)", decayNarrative(c.name, c.Ailment()), lost))
		if c.IsFainted() {
			result.Fainted = append(result.Fainted, side)
			result.Lines = append(result.Lines, fmt.Sprintf("%s fainted!", c.name))
		}
	}
	result.Lines = append(result.Lines, "End of turn effects applied.")

	b.appendAt(turn, result.Lines...)
	b.settle(turn)
	b.UpdatedAt = time.Now()

	return result, nil
}

// CycleWeather advances to the next weather and returns it
func (b *Battle) CycleWeather() Weather {
	b.SetWeather(b.Weather.Next())
	return b.Weather
}

// SetWeather replaces the weather and logs the change
func (b *Battle) SetWeather(w Weather) {
	b.Weather = w
	b.append(fmt.Sprintf("Weather is now %s.", w))
	b.UpdatedAt = time.Now()
}

// WinnerSide reports the side whose opponent fainted. ok is false while both
// stand or when both fell together.
func (b *Battle) WinnerSide() (Side, bool) {
	aDown, bDown := b.A.IsFainted(), b.B.IsFainted()
	switch {
	case bDown && !aDown:
		return SideA, true
	case aDown && !bDown:
		return SideB, true
	}
	return "", false
}

func (b *Battle) settle(turn int) {
	if !b.A.IsFainted() && !b.B.IsFainted() {
		return
	}
	b.Status = StatusFinished
	if side, ok := b.WinnerSide(); ok {
		b.Winner = side
		b.appendAt(turn, fmt.Sprintf("%s wins!", b.Combatant(side).name))
		return
	}
	b.appendAt(turn, "Both combatants fainted. It's a draw!")
}

func (b *Battle) append(lines ...string) {
	b.appendAt(b.Turn, lines...)
}

func (b *Battle) appendAt(turn int, lines ...string) {
	for _, line := range lines {
		b.Log = append(b.Log, fmt.Sprintf("Turn %d: %s", turn, line))
	}
	if len(b.Log) > maxLogEntries {
		b.Log = b.Log[len(b.Log)-maxLogEntries:]
	}
}
