package main

import (
	"context"
	"fmt"
	"time"

	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"

	"github.com/oklahomer/go-sarah-aboutbot/config"
	"github.com/oklahomer/go-sarah-aboutbot/discord"
	"github.com/oklahomer/go-sarah-aboutbot/internal/logging"
	"github.com/oklahomer/go-sarah-aboutbot/responder"
	"github.com/oklahomer/go-sarah-aboutbot/secrets"
)

// shutdownTimeout bounds the wait for the Discord session to close.
const shutdownTimeout = 5 * time.Second

// setup loads the configuration and builds the adapter. Nothing connects yet.
func setup(secretsPath string) (*config.Config, *discord.Adapter, error) {
	store, err := secrets.Load(secretsPath, config.SecretNames...)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(store)
	if err != nil {
		return nil, nil, err
	}

	adapterConfig := discord.NewConfig()
	adapterConfig.Token = cfg.Token

	adapter, err := discord.NewAdapter(adapterConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create adapter: %w", err)
	}

	return cfg, adapter, nil
}

func run(ctx context.Context, secretsPath string, logLevel string) error {
	logging.SetupLogger(logLevel, nil)

	cfg, adapter, err := setup(secretsPath)
	if err != nil {
		return err
	}

	sarah.RegisterBot(sarah.NewBot(adapter))
	sarah.RegisterCommand(discord.DISCORD, responder.NewAbout(&cfg.Messages.Commands))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := sarah.Run(runCtx, sarah.NewConfig()); err != nil {
		return fmt.Errorf("failed to run: %w", err)
	}

	logger.Infof("Bot is running. Press Ctrl+C to stop.")

	return wait(ctx, adapter, cancel, shutdownTimeout)
}

// stopper is satisfied by *discord.Adapter.
type stopper interface {
	Done() <-chan struct{}
	Err() error
}

// wait blocks until the adapter stops or ctx is canceled.
// On cancellation it stops the bot and gives the adapter up to timeout to close its session.
func wait(ctx context.Context, adapter stopper, stopBot context.CancelFunc, timeout time.Duration) error {
	select {
	case <-adapter.Done():
		return adapter.Err()

	case <-ctx.Done():
		logger.Infof("Shutting down...")
		stopBot()

		select {
		case <-adapter.Done():
		case <-time.After(timeout):
			logger.Warnf("Discord session did not close within %s", timeout)
		}

		return nil
	}
}
