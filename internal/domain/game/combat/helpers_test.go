package combat

import (
	"testing"

	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	"github.com/KirkDiggler/creature-battle/internal/testutils"
	"github.com/stretchr/testify/require"
)

func newHydrated(t *testing.T, speciesID string, level int, moveIDs ...string) *Combatant {
	t.Helper()
	cat := testutils.TestCatalog()

	c, err := NewCombatant(RosterEntry{SpeciesID: speciesID, Level: level, MoveIDs: moveIDs}, cat)
	require.NoError(t, err)
	require.NoError(t, HydrateMoves(c, cat))
	return c
}

func noWeather() Field {
	return Field{Weather: WeatherNone, Chart: typechart.Standard()}
}
