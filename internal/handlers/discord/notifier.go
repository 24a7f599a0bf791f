package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_transport.go github.com/KirkDiggler/crocodile/internal/handlers/discord Transport
//go:generate mockgen -package=mocks -destination=mocks/mock_name_source.go github.com/KirkDiggler/crocodile/internal/handlers/discord NameSource

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/services/game"
	"github.com/KirkDiggler/crocodile/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Transport delivers plain text to Discord
type Transport interface {
	SendChannelMessage(channelID, content string) error
	SendDirectMessage(userID, content string) error
}

// NameSource looks up the display names known to a session
type NameSource interface {
	GetRanking(ctx context.Context, input *game.GetRankingInput) (*game.GetRankingOutput, error)
}

// NotifierConfig holds the dependencies of a Notifier
type NotifierConfig struct {
	Transport Transport
	Messaging messaging.Service

	// Names resolves user IDs in the daily report, optional
	Names NameSource

	// RecipientID receives the daily report by direct message
	RecipientID string
}

// Notifier sends the background timers' messages
type Notifier struct {
	transport   Transport
	messaging   messaging.Service
	names       NameSource
	recipientID string
}

// NewNotifier creates a notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Transport == nil {
		return nil, errors.New("transport cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Notifier{
		transport:   cfg.Transport,
		messaging:   cfg.Messaging,
		names:       cfg.Names,
		recipientID: cfg.RecipientID,
	}, nil
}

// SendNudge invites the session's channel to start a round
func (n *Notifier) SendNudge(ctx context.Context, sessionID string) error {
	output, err := n.messaging.GetNudgeMessage(ctx, &messaging.GetNudgeMessageInput{})
	if err != nil {
		return err
	}

	if err := n.transport.SendChannelMessage(sessionID, output.Message); err != nil {
		return fmt.Errorf("failed to send nudge: %w", err)
	}

	return nil
}

// SendDailyReport sends a day's guess counts to the report recipient
func (n *Notifier) SendDailyReport(ctx context.Context, stats *models.DailyStats) error {
	if n.recipientID == "" {
		return errors.New("no report recipient configured")
	}

	if stats == nil {
		return errors.New("stats cannot be nil")
	}

	output, err := n.messaging.GetDailyReportMessage(ctx, &messaging.GetDailyReportMessageInput{
		Stats: stats,
		Names: n.lookupNames(ctx, stats.SessionID),
	})
	if err != nil {
		return err
	}

	if err := n.transport.SendDirectMessage(n.recipientID, output.Message); err != nil {
		return fmt.Errorf("failed to send daily report: %w", err)
	}

	return nil
}

func (n *Notifier) lookupNames(ctx context.Context, sessionID string) map[string]string {
	names := make(map[string]string)
	if n.names == nil {
		return names
	}

	ranking, err := n.names.GetRanking(ctx, &game.GetRankingInput{SessionID: sessionID})
	if err != nil {
		// IDs are shown instead
		log.Warn().Err(err).Str("session", sessionID).Msg("could not load names for daily report")
		return names
	}

	for _, entry := range ranking.Entries {
		if entry.DisplayName != "" {
			names[entry.UserID] = entry.DisplayName
		}
	}

	return names
}

// sessionTransport sends through a discordgo session
type sessionTransport struct {
	session *discordgo.Session
}

// NewSessionTransport creates a Transport backed by a discordgo session
func NewSessionTransport(s *discordgo.Session) Transport {
	return &sessionTransport{session: s}
}

func (t *sessionTransport) SendChannelMessage(channelID, content string) error {
	_, err := t.session.ChannelMessageSend(channelID, content)
	return err
}

func (t *sessionTransport) SendDirectMessage(userID, content string) error {
	channel, err := t.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open direct channel: %w", err)
	}

	_, err = t.session.ChannelMessageSend(channel.ID, content)
	return err
}
