package battle

import (
	"testing"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	"github.com/KirkDiggler/creature-battle/internal/testutils"
	"github.com/bwmarrin/discordgo"
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

	b, err := combat.NewBattle(id, ownerID, build("pikachu", "thunderbolt", "tackle"), build("snorlax", "body-slam"))
	require.NoError(t, err)
	return b
}

func buttons(components []discordgo.MessageComponent) []discordgo.Button {
	var out []discordgo.Button
	for _, row := range components {
		actionRow, ok := row.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range actionRow.Components {
			if button, ok := c.(discordgo.Button); ok {
				out = append(out, button)
			}
		}
	}
	return out
}
