package builders

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// Discord rejects embeds past these lengths
const (
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
	MaxFields            = 25
)

// blank renders as an empty field; Discord rejects empty strings
const blank = "\u200b"

// Embed colors
const (
	ColorSuccess = 0x00ff00
	ColorError   = 0xff0000
	ColorWarning = 0xffaa00
	ColorInfo    = 0x0099ff
)

// EmbedBuilder builds Discord embeds fluently, clamping text to Discord's limits
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new rich embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{embed: &discordgo.MessageEmbed{Type: discordgo.EmbedTypeRich}}
}

func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = truncate(title, MaxTitleLength)
	return b
}

// Description keeps the tail of long text, so the newest log lines survive
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = truncateHead(description, MaxDescriptionLength)
	return b
}

func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

func (b *EmbedBuilder) Timestamp(ts time.Time) *EmbedBuilder {
	b.embed.Timestamp = ts.Format(time.RFC3339)
	return b
}

func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Thumbnail is a no-op for an empty url
func (b *EmbedBuilder) Thumbnail(url string) *EmbedBuilder {
	if url != "" {
		b.embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}
	return b
}

// Field appends a field. Fields past MaxFields are dropped.
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if len(b.embed.Fields) >= MaxFields {
		return b
	}
	if name == "" {
		name = blank
	}
	if value == "" {
		value = blank
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   truncate(name, MaxFieldNameLength),
		Value:  truncate(value, MaxFieldValueLength),
		Inline: inline,
	})
	return b
}

func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// ErrorEmbed creates a red, timestamped error embed
func ErrorEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title("❌ " + title).
		Description(description).
		Color(ColorError).
		Timestamp(time.Now())
}

// HPBar renders hp as a ten segment bar. A combatant with any HP left shows
// at least one segment.
func HPBar(hp, maxHP int) string {
	const segments = 10
	if maxHP <= 0 {
		return strings.Repeat("░", segments)
	}
	hp = max(0, min(hp, maxHP))

	filled := hp * segments / maxHP
	if hp > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", segments-filled)
}

// HPColor is green above half HP, orange above a fifth and red below
func HPColor(hp, maxHP int) int {
	switch {
	case maxHP > 0 && hp*2 > maxHP:
		return ColorSuccess
	case maxHP > 0 && hp*5 > maxHP:
		return ColorWarning
	default:
		return ColorError
	}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

func truncateHead(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return "…" + string(runes[len(runes)-limit+1:])
}
