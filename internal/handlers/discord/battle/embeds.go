package battle

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	"github.com/KirkDiggler/creature-battle/internal/handlers/discord/builders"
	"github.com/KirkDiggler/creature-battle/internal/handlers/discord/customid"
	"github.com/bwmarrin/discordgo"
)

var customIDs = customid.NewBuilder(CustomIDPrefix)

var weatherEmoji = map[combat.Weather]string{
	combat.WeatherNone: "🌤️",
	combat.WeatherSun:  "☀️",
	combat.WeatherRain: "🌧️",
	combat.WeatherSand: "🏜️",
	combat.WeatherHail: "🌨️",
}

var ailmentBadge = map[combat.Ailment]string{
	combat.AilmentBurn:      "🔥 BRN",
	combat.AilmentPoison:    "☠️ PSN",
	combat.AilmentBadPoison: "☠️ TOX",
	combat.AilmentParalysis: "⚡ PAR",
	combat.AilmentSleep:     "💤 SLP",
	combat.AilmentFreeze:    "🧊 FRZ",
}

// battleResponse renders the battle with the given narrative lines and its controls
func (h *Handler) battleResponse(b *combat.Battle, lines []string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{buildBattleEmbed(b, lines, h.spriteURL(b.B.Sprite()))},
		Components: buildBattleComponents(b),
	}
}

// spriteURL resolves a sprite name against the configured base URL
func (h *Handler) spriteURL(sprite string) string {
	if h.spriteBaseURL == "" || sprite == "" {
		return ""
	}
	return strings.TrimSuffix(h.spriteBaseURL, "/") + "/" + sprite + ".png"
}

// buildBattleEmbed creates the battle state embed
func buildBattleEmbed(b *combat.Battle, lines []string, thumbnail string) *discordgo.MessageEmbed {
	embed := builders.NewEmbed().
		Title(fmt.Sprintf("⚔️ %s vs %s - Turn %d", b.A.Name(), b.B.Name(), b.Turn)).
		Description(strings.Join(lines, "\n")).
		Color(builders.HPColor(b.A.HP(), b.A.MaxHP())).
		Thumbnail(thumbnail).
		Footer(fmt.Sprintf("Battle %s", b.ID))

	embed.Field(combatantHeader(b.A), combatantSummary(b.A), true)
	embed.Field(combatantHeader(b.B), combatantSummary(b.B), true)
	embed.Field("Weather", fmt.Sprintf("%s %s", weatherEmoji[b.Weather], b.Weather), false)
	embed.Field("Your Moves", movesSummary(b.A), false)

	if b.IsOver() {
		result := "Both combatants fainted. It's a draw!"
		if side, ok := b.WinnerSide(); ok {
			result = fmt.Sprintf("🏆 %s wins!", b.Combatant(side).Name())
		}
		embed.Field("Battle Over", result, false).Color(builders.ColorInfo)
	}

	return embed.Build()
}

// buildBattleComponents creates one button per move plus turn controls.
// Every button is disabled once the battle is over.
func buildBattleComponents(b *combat.Battle) []discordgo.MessageComponent {
	over := b.IsOver()
	components := builders.NewComponentBuilder(customIDs)

	for i, slot := range b.A.Moves() {
		label := fmt.Sprintf("%s (%d/%d)", slot.Move().Name, slot.PP(), slot.Move().PP)
		components.Button(label, discordgo.PrimaryButton, over || slot.PP() == 0, "move", b.ID, fmt.Sprint(i+1))
	}

	components.NewRow().
		EmojiButton("End Turn", "⏭️", discordgo.SecondaryButton, over, "endturn", b.ID).
		EmojiButton("Weather", weatherEmoji[b.Weather.Next()], discordgo.SecondaryButton, over, "weather", b.ID)

	return components.Build()
}

func combatantHeader(c *combat.Combatant) string {
	return fmt.Sprintf("%s Lv%d", c.Name(), c.Level())
}

func combatantSummary(c *combat.Combatant) string {
	types := make([]string, 0, len(c.Types()))
	for _, t := range c.Types() {
		types = append(types, string(t))
	}

	summary := fmt.Sprintf("%s\n**%d/%d HP**\n%s", builders.HPBar(c.HP(), c.MaxHP()), c.HP(), c.MaxHP(), strings.Join(types, "/"))
	if badge, ok := ailmentBadge[c.Ailment()]; ok {
		summary += "\n" + badge
	}
	if c.IsFainted() {
		summary += "\n💀 **FAINTED**"
	}
	return summary
}

func movesSummary(c *combat.Combatant) string {
	var sb strings.Builder
	for i, slot := range c.Moves() {
		m := slot.Move()
		power := "-"
		if m.Power > 0 {
			power = fmt.Sprint(m.Power)
		}
		fmt.Fprintf(&sb, "`%d` **%s** %s/%s pow %s, PP %d/%d\n", i+1, m.Name, m.Type, m.Category, power, slot.PP(), m.PP)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// errorResponse creates an ephemeral error response
func errorResponse(message string, err error) *discordgo.InteractionResponseData {
	description := message
	if err != nil {
		description = fmt.Sprintf("%s: %v", message, err)
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{builders.ErrorEmbed("Battle", description).Build()},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

func ephemeral(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}
