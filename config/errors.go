package config

import "errors"

// ErrMissingSecret indicates that a required secret is absent from the store.
var ErrMissingSecret = errors.New("secret was not found")

// ErrMalformedConfiguration indicates that the messages secret does not describe every command response.
var ErrMalformedConfiguration = errors.New("failed to parse messages TOML from secrets")
