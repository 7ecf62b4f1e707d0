package battles

import (
	"testing"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	"github.com/KirkDiggler/creature-battle/internal/testutils"
	"github.com/stretchr/testify/require"
)

func newTestBattle(t *testing.T, id, ownerID string) *combat.Battle {
	t.Helper()
	cat := testutils.TestCatalog()

	build := func(speciesID string, moves ...string) *combat.Combatant {
		c, err := combat.NewCombatant(combat.RosterEntry{SpeciesID: speciesID, Level: 50, MoveIDs: moves}, cat)
		require.NoError(t, err)
		require.NoError(t, combat.HydrateMoves(c, cat))
		return c
	}

	battle, err := combat.NewBattle(id, ownerID, build("charizard", "flamethrower", "tackle"), build("blastoise", "surf"))
	require.NoError(t, err)
	return battle
}
