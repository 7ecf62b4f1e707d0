package builders

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/KirkDiggler/creature-battle/internal/handlers/discord/customid"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHPBar(t *testing.T) {
	tests := []struct {
		hp, max int
		want    string
	}{
		{hp: 100, max: 100, want: "██████████"},
		{hp: 50, max: 100, want: "█████░░░░░"},
		{hp: 1, max: 100, want: "█░░░░░░░░░"},
		{hp: 0, max: 100, want: "░░░░░░░░░░"},
		{hp: 150, max: 100, want: "██████████"},
		{hp: 10, max: 0, want: "░░░░░░░░░░"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HPBar(tt.hp, tt.max), "%d/%d", tt.hp, tt.max)
	}
}

func TestEmbedBuilder_FillsEmptyValues(t *testing.T) {
	embed := NewEmbed().Title("t").Field("empty", "", true).Thumbnail("").Build()

	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "\u200b", embed.Fields[0].Value)
	assert.Nil(t, embed.Thumbnail)
}

func TestEmbedBuilder_ClampsToDiscordLimits(t *testing.T) {
	long := strings.Repeat("a", MaxFieldValueLength+10)
	b := NewEmbed().Description(strings.Repeat("x", MaxDescriptionLength) + "newest")
	for range MaxFields + 2 {
		b.Field("", long, false)
	}
	embed := b.Build()

	assert.Len(t, embed.Fields, MaxFields)
	assert.Equal(t, "\u200b", embed.Fields[0].Name)
	assert.Equal(t, MaxFieldValueLength, utf8.RuneCountInString(embed.Fields[0].Value))
	assert.True(t, strings.HasSuffix(embed.Fields[0].Value, "…"))
	assert.Equal(t, MaxDescriptionLength, utf8.RuneCountInString(embed.Description))
	assert.True(t, strings.HasSuffix(embed.Description, "newest"))
}

func TestHPColor(t *testing.T) {
	assert.Equal(t, ColorSuccess, HPColor(51, 100))
	assert.Equal(t, ColorWarning, HPColor(50, 100))
	assert.Equal(t, ColorWarning, HPColor(21, 100))
	assert.Equal(t, ColorError, HPColor(20, 100))
	assert.Equal(t, ColorError, HPColor(0, 0))
}

func TestComponentBuilder_WrapsRows(t *testing.T) {
	b := NewComponentBuilder(customid.NewBuilder("battle"))
	for i := range 6 {
		b.Button("x", discordgo.PrimaryButton, i == 5, "move", "battle-1", "1")
	}
	rows := b.NewRow().EmojiButton("End", "⏭️", discordgo.SecondaryButton, false, "endturn", "battle-1").Build()

	require.Len(t, rows, 3)
	first := rows[0].(discordgo.ActionsRow)
	assert.Len(t, first.Components, 5)
	assert.Equal(t, "battle:move:battle-1:1", first.Components[0].(discordgo.Button).CustomID)

	second := rows[1].(discordgo.ActionsRow)
	assert.True(t, second.Components[0].(discordgo.Button).Disabled)

	third := rows[2].(discordgo.ActionsRow)
	assert.Equal(t, "battle:endturn:battle-1", third.Components[0].(discordgo.Button).CustomID)
}

func TestComponentBuilder_CapsRows(t *testing.T) {
	b := NewComponentBuilder(customid.NewBuilder("battle"))
	for range MaxRows + 1 {
		b.NewRow().Button("x", discordgo.PrimaryButton, false, "endturn", "battle-1")
	}

	assert.Len(t, b.Build(), MaxRows)
	assert.Empty(t, NewComponentBuilder(customid.NewBuilder("battle")).NewRow().Build())
	assert.Panics(t, func() { NewComponentBuilder(nil) })
}
