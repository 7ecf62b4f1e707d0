package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/creature-battle/internal/dice"
)

// ManualMockRoller implements dice.Roller with predetermined results.
// Integer rolls and float draws are scripted independently.
type ManualMockRoller struct {
	mu         sync.Mutex
	rolls      []int
	rollIndex  int
	floats     []float64
	floatIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetRolls sets the integer roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetFloats sets the float draws, each in [0, 1)
func (m *ManualMockRoller) SetFloats(floats []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = floats
	m.floatIndex = 0
}

// Reset clears all scripted values
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls, m.rollIndex = nil, 0
	m.floats, m.floatIndex = nil, 0
}

// Remaining returns how many scripted rolls and floats have not been consumed
func (m *ManualMockRoller) Remaining() (rolls, floats int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex, len(m.floats) - m.floatIndex
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rolls := make([]int, count)
	rawTotal := 0
	for i := 0; i < count; i++ {
		if m.rollIndex >= len(m.rolls) {
			return nil, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
		}
		roll := m.rolls[m.rollIndex]
		m.rollIndex++
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		rawTotal += roll
	}

	return &dice.RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// Float implements dice.Roller.Float
func (m *ManualMockRoller) Float() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.floatIndex >= len(m.floats) {
		return 0, fmt.Errorf("no more predetermined floats available (used %d of %d)", m.floatIndex, len(m.floats))
	}
	f := m.floats[m.floatIndex]
	m.floatIndex++
	if f < 0 || f >= 1 {
		return 0, fmt.Errorf("invalid float %v, must be in [0, 1)", f)
	}
	return f, nil
}
