package dice_test

import (
	"testing"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	mockdice "github.com/KirkDiggler/creature-battle/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d16 roll",
			setupRolls: []int{1},
			count:      1,
			sides:      16,
			wantTotal:  1,
			wantRolls:  []int{1},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12,
			wantRolls:  []int{4, 5},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      20,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestManualMockRoller_Float(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetFloats([]float64{0, 0.5, 0.99})

	for _, want := range []float64{0, 0.5, 0.99} {
		got, err := roller.Float()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := roller.Float()
	assert.Error(t, err, "exhausted floats should error")

	roller.SetFloats([]float64{1.0})
	_, err = roller.Float()
	assert.Error(t, err, "1.0 is outside [0, 1)")
}

func TestSeededRoller_IsReproducible(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 50; i++ {
		ra, err := a.Roll(1, 16, 0)
		require.NoError(t, err)
		rb, err := b.Roll(1, 16, 0)
		require.NoError(t, err)
		assert.Equal(t, ra.Rolls, rb.Rolls)

		fa, _ := a.Float()
		fb, _ := b.Float()
		assert.Equal(t, fa, fb)
	}
}

func TestRandomRoller_Bounds(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 1000; i++ {
		result, err := roller.Roll(2, 6, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Total, 5)
		assert.LessOrEqual(t, result.Total, 15)

		f, err := roller.Float()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)
	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
}

func TestRollResult_Is(t *testing.T) {
	assert.True(t, (&dice.RollResult{Rolls: []int{1}}).Is(1))
	assert.False(t, (&dice.RollResult{Rolls: []int{1, 1}}).Is(1))
	assert.False(t, (*dice.RollResult)(nil).Is(1))
}
