// Command aboutbot runs a Discord bot that answers !about with a configured message.
//
// Usage:
//
//	export DISCORD_TOKEN="your-bot-token"
//	export MESSAGES_TOML='[commands]
//	about = "I am a bot."
//	gay = "🏳️‍🌈"'
//	aboutbot
//
// Both secrets may also live in Secrets.toml in the working directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newCommand().Run(ctx, os.Args)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "aboutbot",
		Version: Version,
		Usage:   "Discord bot that replies to !about",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "secrets",
				Value:   "Secrets.toml",
				Usage:   "path to the TOML file holding MESSAGES_TOML and DISCORD_TOKEN",
				Sources: cli.EnvVars("ABOUTBOT_SECRETS"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (trace, debug, info, warn, error)",
				Sources: cli.EnvVars("ABOUTBOT_LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd.String("secrets"), cmd.String("log-level"))
		},
	}
}
