package discord

import "github.com/bwmarrin/discordgo"

// Config contains configuration variables for the Discord Adapter.
type Config struct {
	// Token is the Discord bot token used for authentication.
	Token string

	// HelpCommand is the command string that triggers help.
	// When a user sends this exact string, the input is converted to sarah.HelpInput.
	// Empty disables help.
	HelpCommand string

	// AbortCommand is the command string that triggers context cancellation.
	// When a user sends this exact string, the input is converted to sarah.AbortInput.
	// Empty disables abort.
	AbortCommand string

	// Intents declares the Gateway Intents the bot requires.
	Intents discordgo.Intent
}

// NewConfig creates and returns a new Config instance with default settings.
// Token is empty and must be set before use.
// The bot only needs to see guild messages and their content; help and abort are off
// so that no input other than a registered command's trigger produces a reply.
func NewConfig() *Config {
	return &Config{
		Token:        "",
		HelpCommand:  "",
		AbortCommand: "",
		Intents:      discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent,
	}
}
