// Package discord adapts the crocodile game to Discord slash commands,
// buttons and channel messages.
package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/crocodile/internal/services/game"
	"github.com/KirkDiggler/crocodile/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Intents the bot needs to read guesses and answer commands
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent |
	discordgo.IntentsDirectMessages

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	croc        *CrocCommand
	gameService game.Service
	messaging   messaging.Service
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened discordgo session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// HomeChannelID limits guessing to one channel when set
	HomeChannelID string

	GameService game.Service
	Messaging   messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		croc:        NewCrocCommand(cfg.GameService, cfg.Messaging),
		gameService: cfg.GameService,
		messaging:   cfg.Messaging,
		config:      cfg,
	}

	bot.session.Identify.Intents = Intents
	bot.session.AddHandler(bot.handleInteraction)
	bot.session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.croc); err != nil {
		return fmt.Errorf("failed to register croc command: %w", err)
	}

	log.Info().Str("home_channel", b.config.HomeChannelID).Msg("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Str("id", cmdID).Msg("failed to delete command")
		} else {
			log.Debug().Str("command", cmdName).Str("id", cmdID).Msg("deleted command")
		}
	}

	return b.session.Close()
}

// Run starts the bot and stops it when ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	if err := b.Stop(); err != nil {
		return fmt.Errorf("failed to stop bot: %w", err)
	}
	return nil
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to the session user when no application ID is configured
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, per guild when GuildID is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Info().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Str("guild", b.config.GuildID).Msg("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Error().Err(err).Str("command", name).Str("session", i.ChannelID).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.croc.HandleComponent(s, i); err != nil {
			log.Error().Err(err).Str("component", i.MessageComponentData().CustomID).Str("session", i.ChannelID).Msg("error handling component")
		}
	}
}

// acceptsGuess reports whether a channel message should be treated as a guess
func (b *Bot) acceptsGuess(m *discordgo.MessageCreate) bool {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return false
	}

	if b.config.HomeChannelID != "" && m.ChannelID != b.config.HomeChannelID {
		return false
	}

	return true
}

// handleMessageCreate feeds channel messages to the game as guesses
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !b.acceptsGuess(m) {
		return
	}

	ctx := context.Background()
	input := &game.SubmitGuessInput{
		SessionID:   m.ChannelID,
		UserID:      m.Author.ID,
		DisplayName: displayName(m.Member, m.Author),
		Text:        m.Content,
		SentAt:      m.Timestamp,
	}

	output, err := b.gameService.SubmitGuess(ctx, input)
	if err != nil {
		log.Error().Err(err).Str("session", m.ChannelID).Str("user", m.Author.ID).Msg("failed to submit guess")
		return
	}

	replies, err := guessReplies(ctx, b.messaging, input, output)
	if err != nil {
		log.Error().Err(err).Str("session", m.ChannelID).Msg("failed to render guess replies")
		return
	}

	for _, reply := range replies {
		if _, err := s.ChannelMessageSendComplex(m.ChannelID, reply); err != nil {
			log.Error().Err(err).Str("session", m.ChannelID).Msg("failed to send reply")
		}
	}
}
