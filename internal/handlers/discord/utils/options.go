package utils

import "github.com/bwmarrin/discordgo"

type option = discordgo.ApplicationCommandInteractionDataOption

// Subcommand returns the name of the invoked subcommand, or "" for a plain
// command
func Subcommand(i *discordgo.InteractionCreate) string {
	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 {
		return ""
	}
	switch opts[0].Type {
	case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
		return opts[0].Name
	default:
		return ""
	}
}

// GetCommandOption finds an option by name at the top level or inside the
// invoked subcommand (group)
func GetCommandOption(i *discordgo.InteractionCreate, name string) *option {
	return findOption(i.ApplicationCommandData().Options, name)
}

func findOption(opts []*option, name string) *option {
	for _, opt := range opts {
		if opt.Name == name {
			return opt
		}
	}
	// only one subcommand is ever present, so descend into the first option
	if len(opts) > 0 && len(opts[0].Options) > 0 {
		return findOption(opts[0].Options, name)
	}
	return nil
}

// GetStringOption returns the named string option or ""
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	if opt := GetCommandOption(i, name); opt != nil {
		return opt.StringValue()
	}
	return ""
}

// GetIntOption returns the named integer option or 0
func GetIntOption(i *discordgo.InteractionCreate, name string) int {
	if opt := GetCommandOption(i, name); opt != nil {
		return int(opt.IntValue())
	}
	return 0
}
