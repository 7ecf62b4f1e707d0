package discord

import (
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/bwmarrin/discordgo"
)

// InteractionFunc is the handler shape discordgo dispatches interactions to.
// It is an alias so wrapped handlers still satisfy AddHandler's type switch.
type InteractionFunc = func(*discordgo.Session, *discordgo.InteractionCreate)

// Chain applies middlewares so the first one listed runs outermost
func Chain(handler InteractionFunc, middlewares ...func(InteractionFunc) InteractionFunc) InteractionFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// RecoverMiddleware turns a panic in handler into an ephemeral error reply
func RecoverMiddleware(handler InteractionFunc) InteractionFunc {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC handling %v interaction: %v\nStack trace:\n%s", i.Type, r, debug.Stack())
				respondWithError(s, i, fmt.Sprintf("An unexpected error occurred: %v", r))
			}
		}()

		handler(s, i)
	}
}

// LogMiddleware logs every interaction with who sent it and how long it took
func LogMiddleware(handler InteractionFunc) InteractionFunc {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		start := time.Now()
		handler(s, i)
		log.Printf("Discord: %v interaction %q from %s handled in %s",
			i.Type, interactionName(i), interactionUser(i), time.Since(start).Round(time.Millisecond))
	}
}

func interactionName(i *discordgo.InteractionCreate) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	default:
		return ""
	}
}

func interactionUser(i *discordgo.InteractionCreate) string {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.ID
	case i.User != nil:
		return i.User.ID
	default:
		return "unknown"
	}
}

// respondWithError replies ephemerally, falling back to a followup when the
// interaction was already acknowledged
func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	content := "❌ " + message

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content, Flags: discordgo.MessageFlagsEphemeral},
	})
	if err == nil {
		return
	}

	_, followErr := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if followErr != nil {
		log.Printf("Failed to send error response %q: respond: %v, followup: %v", message, err, followErr)
	}
}
