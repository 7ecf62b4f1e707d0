package discord

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/creature-battle/internal/handlers/discord/battle"
	"github.com/KirkDiggler/creature-battle/internal/handlers/discord/customid"
	battleService "github.com/KirkDiggler/creature-battle/internal/services/battle"
	"github.com/bwmarrin/discordgo"
)

type commandHandler interface {
	HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

type buttonHandler interface {
	HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error
}

// Handler routes Discord interactions to the feature handlers
type Handler struct {
	commands map[string]commandHandler // by slash command name
	buttons  map[string]buttonHandler  // by custom id domain
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	BattleService battleService.Service
	SpriteBaseURL string
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	battleHandler := battle.NewHandler(&battle.HandlerConfig{
		BattleService: cfg.BattleService,
		SpriteBaseURL: cfg.SpriteBaseURL,
	})

	return &Handler{
		commands: map[string]commandHandler{battle.CommandName: battleHandler},
		buttons:  map[string]buttonHandler{battle.CustomIDPrefix: battleHandler},
	}
}

// Commands returns every slash command the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		battle.Command(),
	}
}

// RegisterCommands replaces the application's commands in guildID (or
// globally when empty) with Commands, dropping any stale ones
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	registered, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	for _, cmd := range registered {
		log.Printf("Registered command: /%s", cmd.Name)
	}
	return nil
}

// HandleInteraction dispatches slash commands and button presses
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	handler, ok := h.commands[name]
	if !ok {
		log.Printf("Unknown command: %s", name)
		return
	}

	if err := handler.HandleCommand(s, i); err != nil {
		log.Printf("Error handling /%s: %v", name, err)
		respondWithError(s, i, fmt.Sprintf("Failed to handle /%s", name))
	}
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	id := i.MessageComponentData().CustomID
	parsed, err := customid.Parse(id)
	if err != nil {
		log.Printf("Ignoring component %q: %v", id, err)
		return
	}

	handler, ok := h.buttons[parsed.Domain]
	if !ok {
		log.Printf("Unknown component domain: %s", parsed.Domain)
		return
	}

	if err := handler.HandleButton(s, i, id); err != nil {
		log.Printf("Error handling button %s: %v", id, err)
		respondWithError(s, i, fmt.Sprintf("Failed to handle %s action", parsed.Domain))
	}
}
