// Package config loads the bot's startup configuration from a secret store.
package config

import (
	"fmt"

	"github.com/oklahomer/go-sarah-aboutbot/secrets"
)

const (
	// MessagesSecret names the secret holding the messages TOML document.
	MessagesSecret = "MESSAGES_TOML"

	// TokenSecret names the secret holding the Discord bot token.
	TokenSecret = "DISCORD_TOKEN"
)

// SecretNames lists every secret Load reads.
var SecretNames = []string{MessagesSecret, TokenSecret}

// Config is the immutable startup configuration.
type Config struct {
	Messages *Messages
	Token    string
}

// Load reads the messages and the token from store.
// Any returned error is fatal: the bot must not connect without both.
func Load(store secrets.Getter) (*Config, error) {
	blob, ok := store.Get(MessagesSecret)
	if !ok {
		return nil, fmt.Errorf("'%s' %w", MessagesSecret, ErrMissingSecret)
	}

	messages, err := ParseMessages([]byte(blob))
	if err != nil {
		return nil, err
	}

	token, ok := store.Get(TokenSecret)
	if !ok {
		return nil, fmt.Errorf("'%s' %w", TokenSecret, ErrMissingSecret)
	}

	return &Config{
		Messages: messages,
		Token:    token,
	}, nil
}
