package combat

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	mockdice "github.com/KirkDiggler/creature-battle/internal/dice/mock"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAction_Damage(t *testing.T) {
	t.Run("super effective hit with no secondary", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "thunderbolt")
		blastoise := newHydrated(t, "blastoise", 50, "surf")

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{2})
		roller.SetFloats([]float64{0, 0, 0.5})

		res, err := ResolveAction(pikachu, blastoise, pikachu.moves[0], noWeather(), roller)
		require.NoError(t, err)

		assert.Equal(t, OutcomeDamage, res.Outcome)
		assert.Equal(t, 61, res.Damage)
		assert.Equal(t, 2.0, res.Effectiveness)
		assert.Empty(t, res.Inflicted)
		assert.Empty(t, res.Recovered)
		assert.Equal(t, "Pikachu used Thunderbolt! 61 damage. It's super effective!", res.Narrative)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "inflicted")
		assert.NotContains(t, string(raw), "recovered")
		assert.Equal(t, 154-61, blastoise.HP())
		assert.Equal(t, 14, pikachu.moves[0].PP())
	})

	t.Run("critical hit", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "tackle")
		blastoise := newHydrated(t, "blastoise", 50, "surf")

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{1})
		roller.SetFloats([]float64{0, 0})

		res, err := ResolveAction(pikachu, blastoise, pikachu.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.True(t, res.Critical)
		assert.Equal(t, 22, res.Damage)
		assert.Equal(t, "Pikachu used Tackle! 22 damage. Critical hit!", res.Narrative)
	})

	t.Run("not very effective", func(t *testing.T) {
		charizard := newHydrated(t, "charizard", 50, "flamethrower")
		blastoise := newHydrated(t, "blastoise", 50, "surf")

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{5})
		roller.SetFloats([]float64{0, 0.5, 0.99})

		res, err := ResolveAction(charizard, blastoise, charizard.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Contains(t, res.Narrative, "It's not very effective...")
		assert.GreaterOrEqual(t, res.Damage, 1)
	})

	t.Run("immune target takes nothing and skips secondaries", func(t *testing.T) {
		snorlax := newHydrated(t, "snorlax", 50, "tri-attack")
		gengar := newHydrated(t, "gengar", 50, "shadow-ball")

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{1})
		roller.SetFloats([]float64{0, 0, 0, 0, 0})

		res, err := ResolveAction(snorlax, gengar, snorlax.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Damage)
		assert.False(t, res.Critical)
		assert.Equal(t, "Snorlax used Tri Attack! It had no effect.", res.Narrative)
		assert.Equal(t, gengar.MaxHP(), gengar.HP())
		assert.Equal(t, AilmentNone, gengar.Ailment())

		_, floats := roller.Remaining()
		assert.Equal(t, 3, floats)
	})

	t.Run("secondary effects stop at the first that sticks", func(t *testing.T) {
		snorlax := newHydrated(t, "snorlax", 50, "tri-attack")
		blastoise := newHydrated(t, "blastoise", 50, "surf")

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{2})
		// hit, variance, burn miss, paralysis hit, one left over
		roller.SetFloats([]float64{0, 0, 0.5, 0.1, 0})

		res, err := ResolveAction(snorlax, blastoise, snorlax.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, AilmentParalysis, res.Inflicted)
		assert.Equal(t, AilmentParalysis, blastoise.Ailment())
		assert.Contains(t, res.Narrative, "Blastoise is paralyzed!")

		_, floats := roller.Remaining()
		assert.Equal(t, 1, floats)
	})

	t.Run("existing ailment blocks secondary draws", func(t *testing.T) {
		charizard := newHydrated(t, "charizard", 50, "flamethrower")
		venusaur := newHydrated(t, "venusaur", 50, "tackle")
		require.True(t, venusaur.Inflict(AilmentPoison))

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{2})
		roller.SetFloats([]float64{0, 0})

		res, err := ResolveAction(charizard, venusaur, charizard.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Empty(t, res.Inflicted)
		assert.Equal(t, AilmentPoison, venusaur.Ailment())
		assert.Contains(t, res.Narrative, "It's super effective!")
	})
}

func TestResolveAction_Preconditions(t *testing.T) {
	t.Run("fainted attacker does nothing", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "tackle")
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		pikachu.SetHP(0)

		res, err := ResolveAction(pikachu, snorlax, pikachu.moves[0], noWeather(), mockdice.NewManualMockRoller())
		require.NoError(t, err)
		assert.Equal(t, OutcomeFainted, res.Outcome)
		assert.Equal(t, "Pikachu has fainted and cannot move!", res.Narrative)
		assert.Equal(t, 35, pikachu.moves[0].PP())
	})

	t.Run("no pp never touches the defender", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "thunderbolt")
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		pikachu.moves[0].pp = 0

		res, err := ResolveAction(pikachu, snorlax, pikachu.moves[0], noWeather(), mockdice.NewManualMockRoller())
		require.NoError(t, err)
		assert.Equal(t, OutcomeNoPP, res.Outcome)
		assert.Equal(t, "Pikachu has no PP left for Thunderbolt!", res.Narrative)
		assert.Equal(t, snorlax.MaxHP(), snorlax.HP())
		assert.Equal(t, AilmentNone, snorlax.Ailment())
		assert.Equal(t, 0, pikachu.moves[0].PP())
	})

	t.Run("miss still spends pp", func(t *testing.T) {
		blastoise := newHydrated(t, "blastoise", 50, "hydro-pump")
		charizard := newHydrated(t, "charizard", 50, "flamethrower")

		roller := mockdice.NewManualMockRoller()
		roller.SetFloats([]float64{0.8})

		res, err := ResolveAction(blastoise, charizard, blastoise.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, OutcomeMissed, res.Outcome)
		assert.Equal(t, "Blastoise's Hydro Pump missed!", res.Narrative)
		assert.Equal(t, 4, blastoise.moves[0].PP())
		assert.Equal(t, charizard.MaxHP(), charizard.HP())
	})

	t.Run("accuracy stage lowers hit chance", func(t *testing.T) {
		blastoise := newHydrated(t, "blastoise", 50, "hydro-pump")
		charizard := newHydrated(t, "charizard", 50, "flamethrower")
		blastoise.ShiftStage(stats.Accuracy, -6)

		roller := mockdice.NewManualMockRoller()
		roller.SetFloats([]float64{0.3})

		res, err := ResolveAction(blastoise, charizard, blastoise.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, OutcomeMissed, res.Outcome)
	})

	t.Run("data contract errors", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "tackle")
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		roller := mockdice.NewManualMockRoller()

		_, err := ResolveAction(nil, snorlax, pikachu.moves[0], noWeather(), roller)
		assert.True(t, apperrors.IsInvalidArgument(err))

		_, err = ResolveAction(pikachu, snorlax, nil, noWeather(), roller)
		assert.True(t, apperrors.IsInvalidArgument(err))

		_, err = ResolveAction(pikachu, snorlax, snorlax.moves[0], noWeather(), roller)
		assert.True(t, apperrors.IsFailedPrecondition(err))

		unhydrated, err := NewCombatant(RosterEntry{SpeciesID: "golem", Level: 5, MoveIDs: []string{"tackle"}}, nil)
		assert.Nil(t, unhydrated)
		assert.True(t, apperrors.IsInvalidArgument(err))
	})
}

func TestResolveAction_Gate(t *testing.T) {
	t.Run("sleep blocks then wakes and acts", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "tackle")
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		require.True(t, pikachu.PutToSleep(1))

		res, err := ResolveAction(pikachu, snorlax, pikachu.moves[0], noWeather(), mockdice.NewManualMockRoller())
		require.NoError(t, err)
		assert.Equal(t, OutcomeBlocked, res.Outcome)
		assert.Equal(t, "Pikachu is fast asleep.", res.Narrative)
		assert.Equal(t, 0, pikachu.SleepTurns())
		assert.Equal(t, 35, pikachu.moves[0].PP())

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{2})
		roller.SetFloats([]float64{0, 0})

		res, err = ResolveAction(pikachu, snorlax, pikachu.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, OutcomeDamage, res.Outcome)
		assert.Equal(t, AilmentSleep, res.Recovered)
		assert.Equal(t, AilmentNone, pikachu.Ailment())
		assert.Contains(t, res.Narrative, "Pikachu woke up! Pikachu used Tackle!")
	})

	t.Run("paralysis blocks on a low draw and persists", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "tackle")
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		require.True(t, snorlax.Inflict(AilmentParalysis))

		roller := mockdice.NewManualMockRoller()
		roller.SetFloats([]float64{0.1})

		res, err := ResolveAction(snorlax, pikachu, snorlax.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, "Snorlax is paralyzed! It can't move!", res.Narrative)
		assert.Equal(t, AilmentParalysis, snorlax.Ailment())
		assert.Equal(t, 35, snorlax.moves[0].PP())
	})

	t.Run("freeze thaws on a low draw", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "tackle")
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		require.True(t, snorlax.Inflict(AilmentFreeze))

		roller := mockdice.NewManualMockRoller()
		roller.SetFloats([]float64{0.5})

		res, err := ResolveAction(snorlax, pikachu, snorlax.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, "Snorlax is frozen solid!", res.Narrative)
		assert.Equal(t, AilmentFreeze, snorlax.Ailment())

		roller.SetRolls([]int{2})
		roller.SetFloats([]float64{0.1, 0, 0})

		res, err = ResolveAction(snorlax, pikachu, snorlax.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, OutcomeDamage, res.Outcome)
		assert.Equal(t, AilmentNone, snorlax.Ailment())
		assert.Contains(t, res.Narrative, "Snorlax thawed out!")
	})
}

func TestResolveAction_Status(t *testing.T) {
	t.Run("stage drop lands on the defender and clamps", func(t *testing.T) {
		pikachu := newHydrated(t, "pikachu", 50, "growl")
		snorlax := newHydrated(t, "snorlax", 50, "tackle")

		roller := mockdice.NewManualMockRoller()
		roller.SetFloats([]float64{0, 0})

		res, err := ResolveAction(pikachu, snorlax, pikachu.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, OutcomeStatus, res.Outcome)
		assert.Equal(t, "Pikachu used Growl!", res.Narrative)
		assert.Equal(t, -1, snorlax.Stages().Attack)
		assert.Equal(t, -1, res.StageChange.Applied)

		snorlax.ShiftStage(stats.Attack, -10)
		res, err = ResolveAction(pikachu, snorlax, pikachu.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, stats.MinStage, snorlax.Stages().Attack)
		assert.Equal(t, 0, res.StageChange.Applied)
	})

	t.Run("guaranteed burn", func(t *testing.T) {
		charizard := newHydrated(t, "charizard", 50, "will-o-wisp")
		blastoise := newHydrated(t, "blastoise", 50, "surf")

		roller := mockdice.NewManualMockRoller()
		roller.SetFloats([]float64{0, 0})

		res, err := ResolveAction(charizard, blastoise, charizard.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, "Charizard used Will-O-Wisp! Blastoise was burned!", res.Narrative)
		assert.Equal(t, AilmentBurn, blastoise.Ailment())

		blastoise.Cure()
		require.True(t, blastoise.Inflict(AilmentPoison))
		res, err = ResolveAction(charizard, blastoise, charizard.moves[0], noWeather(), roller)
		require.NoError(t, err)
		assert.Equal(t, "Charizard used Will-O-Wisp!", res.Narrative)
		assert.Equal(t, AilmentPoison, blastoise.Ailment())
	})

	t.Run("splash always hits and does nothing", func(t *testing.T) {
		snorlax := newHydrated(t, "snorlax", 50, "splash")
		pikachu := newHydrated(t, "pikachu", 50, "tackle")

		res, err := ResolveAction(snorlax, pikachu, snorlax.moves[0], noWeather(), mockdice.NewManualMockRoller())
		require.NoError(t, err)
		assert.Equal(t, "Snorlax used Splash!", res.Narrative)
		assert.Equal(t, pikachu.MaxHP(), pikachu.HP())
	})
}

func TestRollHit_AlwaysHitMoves(t *testing.T) {
	roller := dice.NewSeededRoller(7)
	attacker := newHydrated(t, "snorlax", 50, "swift", "splash")
	defender := newHydrated(t, "pikachu", 50, "tackle")
	defender.ShiftStage(stats.Evasion, 6)
	attacker.ShiftStage(stats.Accuracy, -6)

	for _, slot := range attacker.moves {
		for i := 0; i < 10_000; i++ {
			hit, err := rollHit(attacker, defender, slot.move, roller)
			require.NoError(t, err)
			require.True(t, hit, "%s missed on draw %d", slot.move.Name, i)
		}
	}
}

func TestCanAct_ParalysisRate(t *testing.T) {
	roller := dice.NewSeededRoller(42)
	c := newHydrated(t, "pikachu", 50, "tackle")
	require.True(t, c.Inflict(AilmentParalysis))

	const trials = 20_000
	blocked := 0
	for i := 0; i < trials; i++ {
		legality, err := CanAct(c, roller)
		require.NoError(t, err)
		if !legality.Allowed {
			blocked++
		}
	}

	rate := float64(blocked) / trials
	assert.InDelta(t, 0.25, rate, 0.02)
	assert.Equal(t, AilmentParalysis, c.Ailment())
}

func TestCanAct_FreezeRate(t *testing.T) {
	roller := dice.NewSeededRoller(99)

	const trials = 10_000
	thawed := 0
	for i := 0; i < trials; i++ {
		c := &Combatant{name: "x", ailment: AilmentFreeze}
		legality, err := CanAct(c, roller)
		require.NoError(t, err)
		if legality.Allowed {
			thawed++
			assert.Equal(t, AilmentNone, c.Ailment())
		}
	}

	assert.InDelta(t, 0.20, float64(thawed)/trials, 0.02)
}
