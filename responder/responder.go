// Package responder provides go-sarah commands that answer a literal trigger with a fixed reply.
package responder

import (
	"context"

	"github.com/oklahomer/go-sarah/v4"

	"github.com/oklahomer/go-sarah-aboutbot/config"
	"github.com/oklahomer/go-sarah-aboutbot/discord"
)

const (
	// AboutIdentifier identifies the about command.
	AboutIdentifier = "about"

	// AboutTrigger is the message text that is answered with the configured about response.
	AboutTrigger = "!about"
)

// Command replies with a fixed response when the message equals its trigger.
// It holds no mutable state and may be executed concurrently.
type Command struct {
	identifier string
	trigger    string
	response   string
}

var _ sarah.Command = (*Command)(nil)

// New creates a Command for the given trigger and response.
func New(identifier, trigger, response string) *Command {
	return &Command{
		identifier: identifier,
		trigger:    trigger,
		response:   response,
	}
}

// NewAbout creates the command that answers !about with responses.About.
func NewAbout(responses *config.CommandResponses) *Command {
	return New(AboutIdentifier, AboutTrigger, responses.About)
}

// Identifier returns the command's identifier.
func (c *Command) Identifier() string {
	return c.identifier
}

// Match reports whether the message is exactly the trigger. Case and whitespace count.
func (c *Command) Match(input sarah.Input) bool {
	return input.Message() == c.trigger
}

// Execute returns the configured response addressed to the input's channel.
func (c *Command) Execute(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	return discord.NewResponse(input, c.response)
}

// Instruction returns the usage shown in help.
func (c *Command) Instruction(_ *sarah.HelpInput) string {
	return "Input " + c.trigger + "."
}
