package battle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/handlers/discord/customid"
	"github.com/KirkDiggler/creature-battle/internal/handlers/discord/utils"
	battleService "github.com/KirkDiggler/creature-battle/internal/services/battle"
	"github.com/bwmarrin/discordgo"
)

const (
	// CommandName is the top level slash command
	CommandName = "battle"

	// CustomIDPrefix prefixes every button this handler owns
	CustomIDPrefix = "battle"
)

// Handler handles /battle commands and battle buttons
type Handler struct {
	battleService battleService.Service
	spriteBaseURL string
}

// HandlerConfig holds configuration for the battle handler
type HandlerConfig struct {
	BattleService battleService.Service

	// SpriteBaseURL is prefixed to species sprite names for embed thumbnails.
	// Thumbnails are omitted when empty.
	SpriteBaseURL string
}

// NewHandler creates a new battle handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.BattleService == nil {
		panic("battle service is required")
	}
	return &Handler{
		battleService: cfg.BattleService,
		spriteBaseURL: cfg.SpriteBaseURL,
	}
}

// Command returns the slash command definition
func Command() *discordgo.ApplicationCommand {
	minLevel := float64(1)
	minSlot := float64(1)

	weatherChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 5)
	for _, w := range []combat.Weather{combat.WeatherNone, combat.WeatherSun, combat.WeatherRain, combat.WeatherSand, combat.WeatherHail} {
		weatherChoices = append(weatherChoices, &discordgo.ApplicationCommandOptionChoice{Name: string(w), Value: string(w)})
	}

	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Creature battle commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "start",
				Description: "Start a battle against a bot controlled opponent",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "species",
						Description: "Your species id",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
					{
						Name:        "opponent",
						Description: "Opponent species id",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
					{
						Name:        "level",
						Description: "Level for both combatants",
						Type:        discordgo.ApplicationCommandOptionInteger,
						MinValue:    &minLevel,
						MaxValue:    100,
					},
				},
			},
			{
				Name:        "move",
				Description: "Use one of your moves",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "slot",
						Description: "Move slot",
						Type:        discordgo.ApplicationCommandOptionInteger,
						Required:    true,
						MinValue:    &minSlot,
						MaxValue:    combat.MaxMoves,
					},
				},
			},
			{
				Name:        "endturn",
				Description: "Apply end of turn effects",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "weather",
				Description: "Change the weather",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "set",
						Description: "Weather to set, cycles when omitted",
						Type:        discordgo.ApplicationCommandOptionString,
						Choices:     weatherChoices,
					},
				},
			},
			{
				Name:        "status",
				Description: "Show your active battle",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	}
}

// StartRequest holds the options of /battle start
type StartRequest struct {
	UserID    string
	ChannelID string
	Species   string
	Opponent  string
	Level     int
}

// HandleCommand routes a /battle interaction to its subcommand
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub := utils.Subcommand(i)
	if sub == "" {
		return fmt.Errorf("missing subcommand")
	}

	ctx := context.Background()
	userID := interactionUserID(i)

	var resp *discordgo.InteractionResponseData
	switch sub {
	case "start":
		resp = h.Start(ctx, &StartRequest{
			UserID:    userID,
			ChannelID: i.ChannelID,
			Species:   utils.GetStringOption(i, "species"),
			Opponent:  utils.GetStringOption(i, "opponent"),
			Level:     utils.GetIntOption(i, "level"),
		})
	case "move":
		resp = h.Move(ctx, userID, "", utils.GetIntOption(i, "slot"))
	case "endturn":
		resp = h.EndTurn(ctx, userID, "")
	case "weather":
		resp = h.Weather(ctx, userID, "", utils.GetStringOption(i, "set"))
	case "status":
		resp = h.Status(ctx, userID)
	default:
		return fmt.Errorf("unknown battle subcommand: %s", sub)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: resp,
	})
}

// HandleButton handles a battle button. customID has the form
// battle:<action>:<battleID>[:<slot>].
func (h *Handler) HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	parsed, err := customid.Parse(customID)
	if err != nil {
		return err
	}
	if parsed.Domain != CustomIDPrefix || parsed.Target == "" {
		return fmt.Errorf("invalid battle custom id: %q", customID)
	}
	action, battleID := parsed.Action, parsed.Target

	log.Printf("BattleHandler: button action=%s, battle=%s, user=%s", action, battleID, interactionUserID(i))

	ctx := context.Background()
	userID := interactionUserID(i)

	var resp *discordgo.InteractionResponseData
	switch action {
	case "move":
		slot, convErr := parsed.IntArg(0)
		if convErr != nil {
			return convErr
		}
		resp = h.Move(ctx, userID, battleID, slot)
	case "endturn":
		resp = h.EndTurn(ctx, userID, battleID)
	case "weather":
		resp = h.Weather(ctx, userID, battleID, "")
	default:
		return fmt.Errorf("unknown battle action: %s", action)
	}

	responseType := discordgo.InteractionResponseUpdateMessage
	if resp.Flags&discordgo.MessageFlagsEphemeral != 0 {
		responseType = discordgo.InteractionResponseChannelMessageWithSource
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: resp,
	})
}

// Start creates a battle between the two requested species
func (h *Handler) Start(ctx context.Context, req *StartRequest) *discordgo.InteractionResponseData {
	started, err := h.battleService.StartBattle(ctx, &battleService.StartBattleInput{
		OwnerID:   req.UserID,
		ChannelID: req.ChannelID,
		TeamA:     []combat.RosterEntry{{SpeciesID: req.Species, Level: req.Level}},
		TeamB:     []combat.RosterEntry{{SpeciesID: req.Opponent, Level: req.Level}},
	})
	if err != nil {
		return errorResponse("Failed to start battle", err)
	}

	return h.battleResponse(started, []string{
		fmt.Sprintf("%s (Lv%d) challenges %s (Lv%d)!", started.A.Name(), started.A.Level(), started.B.Name(), started.B.Level()),
	})
}

// Move submits the user's move. The opponent's move is picked by the service.
// An empty battleID targets the user's active battle.
func (h *Handler) Move(ctx context.Context, userID, battleID string, slot int) *discordgo.InteractionResponseData {
	b, errResp := h.ownedBattle(ctx, userID, battleID)
	if errResp != nil {
		return errResp
	}

	outcome, err := h.battleService.SubmitMove(ctx, b.ID, slot-1)
	if err != nil {
		return errorResponse("Failed to resolve turn", err)
	}

	return h.battleResponse(outcome.Battle, outcome.Result.Lines)
}

// EndTurn applies end of turn effects
func (h *Handler) EndTurn(ctx context.Context, userID, battleID string) *discordgo.InteractionResponseData {
	b, errResp := h.ownedBattle(ctx, userID, battleID)
	if errResp != nil {
		return errResp
	}

	outcome, err := h.battleService.EndTurn(ctx, b.ID)
	if err != nil {
		return errorResponse("Failed to end turn", err)
	}

	return h.battleResponse(outcome.Battle, outcome.Result.Lines)
}

// Weather sets the named weather, or cycles it when name is empty
func (h *Handler) Weather(ctx context.Context, userID, battleID, name string) *discordgo.InteractionResponseData {
	b, errResp := h.ownedBattle(ctx, userID, battleID)
	if errResp != nil {
		return errResp
	}

	var (
		updated *combat.Battle
		err     error
	)
	if strings.TrimSpace(name) == "" {
		updated, err = h.battleService.CycleWeather(ctx, b.ID)
	} else {
		weather, parseErr := combat.ParseWeather(name)
		if parseErr != nil {
			return errorResponse("Unknown weather", parseErr)
		}
		updated, err = h.battleService.SetWeather(ctx, b.ID, weather)
	}
	if err != nil {
		return errorResponse("Failed to change weather", err)
	}

	return h.battleResponse(updated, []string{fmt.Sprintf("Weather is now %s.", updated.Weather)})
}

// Status shows the user's active battle
func (h *Handler) Status(ctx context.Context, userID string) *discordgo.InteractionResponseData {
	b, errResp := h.ownedBattle(ctx, userID, "")
	if errResp != nil {
		return errResp
	}
	return h.battleResponse(b, recentLines(b.Log, 5))
}

// ownedBattle loads battleID, or the user's active battle when it is empty,
// and checks the user started it
func (h *Handler) ownedBattle(ctx context.Context, userID, battleID string) (*combat.Battle, *discordgo.InteractionResponseData) {
	if battleID == "" {
		b, err := h.battleService.GetActiveBattle(ctx, userID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, ephemeral("❌ You have no active battle. Start one with `/battle start`.")
			}
			return nil, errorResponse("Failed to find your battle", err)
		}
		return b, nil
	}

	b, err := h.battleService.GetBattle(ctx, battleID)
	if err != nil {
		return nil, errorResponse("Failed to get battle", err)
	}
	if b.OwnerID != userID {
		return nil, ephemeral("❌ Only the trainer who started this battle can act in it.")
	}
	return b, nil
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func recentLines(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
