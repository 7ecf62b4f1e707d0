package builders

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/handlers/discord/customid"
	"github.com/bwmarrin/discordgo"
)

// Discord's action row limits
const (
	MaxButtonsPerRow = 5
	MaxRows          = 5
)

// ComponentBuilder lays buttons out into action rows, wrapping full rows.
// Button custom ids come from one customid.Builder domain.
type ComponentBuilder struct {
	ids  *customid.Builder
	rows [][]discordgo.MessageComponent
}

// NewComponentBuilder panics without a custom id builder
func NewComponentBuilder(ids *customid.Builder) *ComponentBuilder {
	if ids == nil {
		panic("custom id builder is required")
	}
	return &ComponentBuilder{ids: ids}
}

// Button adds a button whose custom id is domain:action:target:args...
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, disabled bool, action, target string, args ...string) *ComponentBuilder {
	return b.add(discordgo.Button{
		Label:    label,
		Style:    style,
		Disabled: disabled,
		CustomID: b.ids.Button(action, target, args...),
	})
}

// EmojiButton is Button with a leading emoji
func (b *ComponentBuilder) EmojiButton(label, emoji string, style discordgo.ButtonStyle, disabled bool, action, target string, args ...string) *ComponentBuilder {
	return b.add(discordgo.Button{
		Label:    label,
		Style:    style,
		Disabled: disabled,
		CustomID: b.ids.Button(action, target, args...),
		Emoji:    &discordgo.ComponentEmoji{Name: emoji},
	})
}

// NewRow makes the next button start a fresh row. It is a no-op on an empty row.
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if n := len(b.rows); n > 0 && len(b.rows[n-1]) > 0 {
		b.rows = append(b.rows, nil)
	}
	return b
}

// Build returns the action rows. Rows past MaxRows are dropped.
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, len(b.rows))
	for _, row := range b.rows {
		if len(row) == 0 {
			continue
		}
		if len(out) == MaxRows {
			log.Printf("ComponentBuilder: dropping rows past %d", MaxRows)
			break
		}
		out = append(out, discordgo.ActionsRow{Components: row})
	}
	return out
}

func (b *ComponentBuilder) add(c discordgo.MessageComponent) *ComponentBuilder {
	n := len(b.rows)
	if n == 0 || len(b.rows[n-1]) == MaxButtonsPerRow {
		b.rows = append(b.rows, nil)
		n++
	}
	b.rows[n-1] = append(b.rows[n-1], c)
	return b
}
