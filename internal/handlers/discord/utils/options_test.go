package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func commandInteraction(options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    "battle",
				Options: options,
			},
		},
	}
}

func TestGetOptions_DescendIntoSubcommand(t *testing.T) {
	i := commandInteraction(&discordgo.ApplicationCommandInteractionDataOption{
		Name: "start",
		Type: discordgo.ApplicationCommandOptionSubCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "species", Type: discordgo.ApplicationCommandOptionString, Value: "pikachu"},
			{Name: "level", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(42)},
		},
	})

	assert.Equal(t, "pikachu", GetStringOption(i, "species"))
	assert.Equal(t, 42, GetIntOption(i, "level"))
	assert.Equal(t, "", GetStringOption(i, "opponent"))
	assert.Equal(t, 0, GetIntOption(i, "slot"))
	assert.Equal(t, "start", Subcommand(i))
}

func TestGetOptions_NoOptions(t *testing.T) {
	i := commandInteraction()
	assert.Nil(t, GetCommandOption(i, "anything"))
	assert.Equal(t, "", Subcommand(i))
}
