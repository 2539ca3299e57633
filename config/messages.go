package config

import (
	"fmt"

	gotoml "github.com/pelletier/go-toml/v2"
)

// Messages holds the canned responses keyed by command.
type Messages struct {
	Commands CommandResponses `toml:"commands"`
}

// CommandResponses maps each command to its reply.
type CommandResponses struct {
	// Gay is loaded and validated but not bound to any trigger yet.
	Gay string `toml:"gay"`

	// About is sent in reply to !about.
	About string `toml:"about"`
}

// rawMessages mirrors Messages with pointers so that absent keys are distinguishable.
type rawMessages struct {
	Commands *struct {
		Gay   *string `toml:"gay"`
		About *string `toml:"about"`
	} `toml:"commands"`
}

// ParseMessages decodes a messages TOML document.
// Both commands.about and commands.gay must be present and non-empty.
func ParseMessages(blob []byte) (*Messages, error) {
	raw := &rawMessages{}
	if err := gotoml.Unmarshal(blob, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfiguration, err)
	}

	if raw.Commands == nil {
		return nil, fmt.Errorf("%w: [commands] table is missing", ErrMalformedConfiguration)
	}

	required := []struct {
		key   string
		value *string
	}{
		{key: "commands.gay", value: raw.Commands.Gay},
		{key: "commands.about", value: raw.Commands.About},
	}
	for _, r := range required {
		if r.value == nil || *r.value == "" {
			return nil, fmt.Errorf("%w: %s is missing", ErrMalformedConfiguration, r.key)
		}
	}

	return &Messages{
		Commands: CommandResponses{
			Gay:   *raw.Commands.Gay,
			About: *raw.Commands.About,
		},
	}, nil
}
