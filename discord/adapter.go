package discord

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"
)

const (
	// DISCORD is a designated sarah.BotType for Discord integration.
	DISCORD sarah.BotType = "discord"
)

// session is an internal interface that abstracts the discordgo.Session methods
// used by the Adapter. This allows mocking the session in tests.
// *discordgo.Session satisfies this interface.
type session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ChannelID represents a Discord channel as sarah.OutputDestination.
type ChannelID string

var _ sarah.OutputDestination = ChannelID("")

// AdapterOption defines a function signature for Adapter's functional options.
type AdapterOption func(adapter *Adapter)

// WithSession creates an AdapterOption with the given *discordgo.Session.
// If this option is not given, NewAdapter creates a new session from Config.Token.
func WithSession(session *discordgo.Session) AdapterOption {
	return func(adapter *Adapter) {
		adapter.session = session
	}
}

// Adapter is a sarah.Adapter implementation that connects to the Discord gateway.
type Adapter struct {
	config  *Config
	session session

	done     chan struct{}
	stopOnce sync.Once
	err      error
}

var _ sarah.Adapter = (*Adapter)(nil)

// NewAdapter creates a new Adapter with the given Config and options.
func NewAdapter(config *Config, options ...AdapterOption) (*Adapter, error) {
	adapter := &Adapter{
		config: config,
		done:   make(chan struct{}),
	}

	for _, opt := range options {
		opt(adapter)
	}

	if adapter.session == nil {
		if config.Token == "" {
			return nil, ErrEmptyToken
		}

		s, err := discordgo.New("Bot " + config.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		s.Identify.Intents = config.Intents
		adapter.session = s
	}

	return adapter, nil
}

// BotType returns a designated BotType for Discord integration.
func (a *Adapter) BotType() sarah.BotType {
	return DISCORD
}

// Done returns a channel that is closed once Run returns.
func (a *Adapter) Done() <-chan struct{} {
	return a.done
}

// Err blocks until Run returns and reports why it stopped. It is nil after a clean shutdown.
func (a *Adapter) Err() error {
	<-a.done
	return a.err
}

func (a *Adapter) stop(err error) {
	a.stopOnce.Do(func() {
		a.err = err
		close(a.done)
	})
}

// Run establishes a connection with Discord and blocks until the context is canceled.
func (a *Adapter) Run(ctx context.Context, enqueueInput func(sarah.Input) error, notifyErr func(error)) {
	a.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		a.handleReady(r)
	})
	a.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		a.handleMessage(s, m, enqueueInput)
	})

	err := a.session.Open()
	if err != nil {
		err = fmt.Errorf("failed to open Discord session: %w", err)
		notifyErr(sarah.NewBotNonContinuableError(err.Error()))
		a.stop(err)
		return
	}

	<-ctx.Done()

	if closeErr := a.session.Close(); closeErr != nil {
		logger.Errorf("Failed to close Discord session: %+v", closeErr)
	}
	a.stop(nil)
}

// handleReady logs the identity the gateway session is established with.
func (a *Adapter) handleReady(r *discordgo.Ready) {
	if r.User == nil {
		logger.Warnf("Received Ready event without user identity")
		return
	}

	logger.Infof("%s is connected!", r.User.DisplayName())
}

// handleMessage converts an incoming Discord message and passes it to enqueueInput.
func (a *Adapter) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate, enqueueInput func(sarah.Input) error) {
	input, err := MessageToInput(m)
	if err != nil {
		logger.Debugf("Skipping message: %+v", err)
		return
	}

	// Ignore messages from the bot itself.
	if s != nil && s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	if enqueueErr := enqueueInput(a.wrapInput(input)); enqueueErr != nil {
		logger.Errorf("Failed to enqueue input: %+v", enqueueErr)
	}
}

// wrapInput turns configured help and abort commands into go-sarah's special inputs.
// Both are disabled when the corresponding Config field is empty.
func (a *Adapter) wrapInput(input *Input) sarah.Input {
	trimmed := strings.TrimSpace(input.Message())
	switch {
	case a.config.HelpCommand != "" && trimmed == a.config.HelpCommand:
		return sarah.NewHelpInput(input)

	case a.config.AbortCommand != "" && trimmed == a.config.AbortCommand:
		return sarah.NewAbortInput(input)

	default:
		return input
	}
}

// SendMessage sends the given message to Discord.
// A failed delivery is logged and dropped; the adapter keeps serving subsequent events.
func (a *Adapter) SendMessage(_ context.Context, output sarah.Output) {
	destination, ok := output.Destination().(ChannelID)
	if !ok {
		logger.Errorf("Destination is not instance of ChannelID. %#v.", output.Destination())
		return
	}

	channelID := string(destination)

	var err error
	switch content := output.Content().(type) {
	case string:
		_, err = a.session.ChannelMessageSend(channelID, content)

	case *discordgo.MessageSend:
		_, err = a.session.ChannelMessageSendComplex(channelID, content)

	case *sarah.CommandHelps:
		_, err = a.session.ChannelMessageSend(channelID, formatHelps(content))

	default:
		logger.Warnf("Unexpected output %#v", output)
		return
	}

	if err != nil {
		logger.Errorf("Failed to send message to %s: %+v", channelID, err)
	}
}

func formatHelps(helps *sarah.CommandHelps) string {
	lines := make([]string, 0, len(*helps))
	for _, h := range *helps {
		lines = append(lines, fmt.Sprintf("**%s**: %s", h.Identifier, h.Instruction))
	}
	return strings.Join(lines, "\n")
}

// Input is a sarah.Input implementation that represents a received Discord message.
type Input struct {
	Event     *discordgo.MessageCreate
	senderKey string
	text      string
	sentAt    time.Time
	channelID ChannelID
}

var _ sarah.Input = (*Input)(nil)

// SenderKey returns a unique key representing the sender in the channel.
func (i *Input) SenderKey() string {
	return i.senderKey
}

// Message returns the received text as is.
func (i *Input) Message() string {
	return i.text
}

// SentAt returns when the message was sent.
func (i *Input) SentAt() time.Time {
	return i.sentAt
}

// ReplyTo returns the Discord channel where the message was received.
func (i *Input) ReplyTo() sarah.OutputDestination {
	return i.channelID
}

// MessageToInput converts a *discordgo.MessageCreate event to *Input.
func MessageToInput(m *discordgo.MessageCreate) (*Input, error) {
	if m.Message == nil || m.Author == nil {
		return nil, ErrNoAuthor
	}

	return &Input{
		Event:     m,
		senderKey: fmt.Sprintf("%s_%s", m.ChannelID, m.Author.ID),
		text:      m.Content,
		sentAt:    m.Timestamp,
		channelID: ChannelID(m.ChannelID),
	}, nil
}

// NewResponse creates a *sarah.CommandResponse that replies with the given content
// to the channel the input came from.
// The content is either a string or a *discordgo.MessageSend.
func NewResponse(input sarah.Input, content interface{}) (*sarah.CommandResponse, error) {
	if _, ok := input.(*Input); !ok {
		return nil, fmt.Errorf("%T is not a *discord.Input", input)
	}

	switch content.(type) {
	case string, *discordgo.MessageSend:
		return &sarah.CommandResponse{
			Content: content,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported response content %T", content)
	}
}
