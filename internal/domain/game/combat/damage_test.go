package combat

import (
	"testing"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	mockdice "github.com/KirkDiggler/creature-battle/internal/dice/mock"
	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	"github.com/KirkDiggler/creature-battle/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBaseDamage(t *testing.T) {
	assert.Equal(t, 37, BaseDamage(50, 80, 100, 100))
	assert.Equal(t, 2, BaseDamage(1, 0, 10, 10))
	assert.Equal(t, BaseDamage(50, 80, 100, 1), BaseDamage(50, 80, 100, 0), "defense floors at 1")
}

func TestCalculateDamage_NeutralScenario(t *testing.T) {
	attacker := &Combatant{name: "a", level: 50, types: []typechart.TypeName{typechart.Water}, stats: stats.Derived{MaxHP: 100, Attack: 100}, hp: 100}
	defender := &Combatant{name: "d", level: 50, types: []typechart.TypeName{typechart.Normal}, stats: stats.Derived{MaxHP: 100, Defense: 100}, hp: 100}
	move := testutils.CreateTestMove("strike", "Strike", typechart.Normal, catalog.CategoryPhysical, 80, 10)

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{2})
	roller.SetFloats([]float64{0})

	res, err := CalculateDamage(attacker, defender, move, noWeather(), roller)
	require.NoError(t, err)
	assert.Equal(t, 37, res.Base)
	assert.False(t, res.Critical)
	assert.Equal(t, 1.0, res.STAB)
	assert.Equal(t, 1.0, res.Effectiveness)
	assert.Equal(t, 31, res.Damage)
}

func TestCalculateDamage_Modifiers(t *testing.T) {
	tackle := func() *catalog.Move {
		return testutils.CreateTestMove("tackle", "Tackle", typechart.Normal, catalog.CategoryPhysical, 40, 35)
	}
	draws := func(crit int) dice.Roller {
		r := mockdice.NewManualMockRoller()
		r.SetRolls([]int{crit})
		r.SetFloats([]float64{0})
		return r
	}

	t.Run("burn halves physical damage", func(t *testing.T) {
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		blastoise := newHydrated(t, "blastoise", 50, "surf")

		healthy, err := CalculateDamage(snorlax, blastoise, tackle(), noWeather(), draws(2))
		require.NoError(t, err)
		assert.Equal(t, 26, healthy.Damage)

		require.True(t, snorlax.Inflict(AilmentBurn))
		burned, err := CalculateDamage(snorlax, blastoise, tackle(), noWeather(), draws(2))
		require.NoError(t, err)
		assert.Equal(t, 13, burned.Damage)
	})

	t.Run("crit ignores a lowered offense stage", func(t *testing.T) {
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		blastoise := newHydrated(t, "blastoise", 50, "surf")

		clean, err := CalculateDamage(snorlax, blastoise, tackle(), noWeather(), draws(1))
		require.NoError(t, err)

		snorlax.ShiftStage(stats.Attack, -2)
		lowered, err := CalculateDamage(snorlax, blastoise, tackle(), noWeather(), draws(1))
		require.NoError(t, err)
		assert.Equal(t, clean.Damage, lowered.Damage)

		noCrit, err := CalculateDamage(snorlax, blastoise, tackle(), noWeather(), draws(2))
		require.NoError(t, err)
		assert.Less(t, noCrit.Damage, clean.Damage)
	})

	t.Run("crit ignores a raised defense stage", func(t *testing.T) {
		snorlax := newHydrated(t, "snorlax", 50, "tackle")
		blastoise := newHydrated(t, "blastoise", 50, "surf")

		clean, err := CalculateDamage(snorlax, blastoise, tackle(), noWeather(), draws(1))
		require.NoError(t, err)

		blastoise.ShiftStage(stats.Defense, 6)
		raised, err := CalculateDamage(snorlax, blastoise, tackle(), noWeather(), draws(1))
		require.NoError(t, err)
		assert.Equal(t, clean.Damage, raised.Damage)
	})

	t.Run("rain boosts water and weakens fire", func(t *testing.T) {
		blastoise := newHydrated(t, "blastoise", 50, "surf")
		charizard := newHydrated(t, "charizard", 50, "flamethrower")
		surf := blastoise.moves[0].move
		rain := Field{Weather: WeatherRain, Chart: typechart.Standard()}

		dry, err := CalculateDamage(blastoise, charizard, surf, noWeather(), draws(2))
		require.NoError(t, err)
		wet, err := CalculateDamage(blastoise, charizard, surf, rain, draws(2))
		require.NoError(t, err)
		assert.Greater(t, wet.Damage, dry.Damage)

		fire := charizard.moves[0].move
		dryFire, err := CalculateDamage(charizard, blastoise, fire, noWeather(), draws(2))
		require.NoError(t, err)
		wetFire, err := CalculateDamage(charizard, blastoise, fire, rain, draws(2))
		require.NoError(t, err)
		assert.Less(t, wetFire.Damage, dryFire.Damage)
	})
}

func TestCalculateDamage_AtLeastOne(t *testing.T) {
	roller := dice.NewSeededRoller(3)
	rain := Field{Weather: WeatherRain, Chart: typechart.Standard()}

	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(stats.MinLevel, stats.MaxLevel).Draw(rt, "level")
		power := rapid.IntRange(1, 250).Draw(rt, "power")
		attack := rapid.IntRange(1, 500).Draw(rt, "attack")
		defense := rapid.IntRange(1, 800).Draw(rt, "defense")
		offStage := rapid.IntRange(stats.MinStage, stats.MaxStage).Draw(rt, "offStage")
		defStage := rapid.IntRange(stats.MinStage, stats.MaxStage).Draw(rt, "defStage")

		attacker := &Combatant{
			name: "a", level: level, types: []typechart.TypeName{typechart.Normal},
			stats: stats.Derived{MaxHP: 100, Attack: attack}, hp: 100,
			ailment: AilmentBurn, stages: stats.Stages{Attack: offStage},
		}
		defender := &Combatant{
			name: "d", level: level, types: []typechart.TypeName{typechart.Water, typechart.Rock},
			stats: stats.Derived{MaxHP: 100, Defense: defense}, hp: 100,
			stages: stats.Stages{Defense: defStage},
		}
		move := testutils.CreateTestMove("ember", "Ember", typechart.Fire, catalog.CategoryPhysical, power, 10)

		res, err := CalculateDamage(attacker, defender, move, rain, roller)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if res.Damage < 1 {
			rt.Fatalf("damage %d below 1 (base %d, modifier %v)", res.Damage, res.Base, res.Modifier)
		}
	})
}

func TestTyping(t *testing.T) {
	chart := typechart.Standard()
	charizard := newHydrated(t, "charizard", 50, "flamethrower")
	golem := newHydrated(t, "golem", 50, "earthquake")

	assert.True(t, IsSameType(charizard, typechart.Flying))
	assert.False(t, IsSameType(charizard, typechart.Water))
	assert.Equal(t, 1.5, STAB(charizard, typechart.Fire))
	assert.Equal(t, 1.0, STAB(charizard, typechart.Water))

	assert.Equal(t, 4.0, TypeEffectiveness(typechart.Water, golem, chart))
	assert.Equal(t, 0.0, TypeEffectiveness(typechart.Electric, golem, chart))
	assert.Equal(t, 0.25, TypeEffectiveness(typechart.Normal, &Combatant{types: []typechart.TypeName{typechart.Rock, typechart.Steel}}, chart))
	assert.Equal(t, 1.0, TypeEffectiveness(typechart.Normal, charizard, nil))
}
