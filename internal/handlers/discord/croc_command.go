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

// DefaultTopLimit is how many players /croc top lists when not told otherwise
const DefaultTopLimit = 10

// CrocCommand handles the /croc command and the leader buttons
type CrocCommand struct {
	BaseCommand
	gameService game.Service
	messaging   messaging.Service
}

// NewCrocCommand creates a new croc command handler
func NewCrocCommand(gameService game.Service, messagingService messaging.Service) *CrocCommand {
	minDelta := float64(-1000)

	return &CrocCommand{
		BaseCommand: BaseCommand{
			Name:        "croc",
			Description: "Crocodile word guessing game",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("start", "Become the leader and get a secret word"),
				subcommand("status", "Show the current round"),
				subcommand("hint", "Reveal one more hint (leader only)"),
				subcommand("show", "Show your secret word again (leader only)"),
				subcommand("replace", "Swap the secret word for a new one"),
				subcommand("stop", "Stop the current round"),
				subcommand("reset", "Stop the round and wipe all scores (moderators)"),
				subcommand("clearused", "Make every word drawable again (moderators)"),
				subcommand("score", "Show a player's score",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "player",
						Description: "Whose score to show, yourself by default",
					},
				),
				subcommand("top", "Show the leaderboard",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "limit",
						Description: "How many players to list",
					},
				),
				subcommand("addword", "Add a word to the pool",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "word",
						Description: "The new word",
						Required:    true,
					},
				),
				subcommand("adjust", "Change a player's score by hand",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "player",
						Description: "Whose score to change",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "delta",
						Description: "Points to add, negative to take away",
						Required:    true,
						MinValue:    &minDelta,
					},
				),
				subcommand("special", "Start a special round with your own word",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "word",
						Description: "The secret word",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "reward",
						Description: "Points for the winner",
					},
				),
			},
		},
		gameService: gameService,
		messaging:   messagingService,
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// actor is the user behind an interaction
type actor struct {
	sessionID string
	userID    string
	name      string
}

func newActor(i *discordgo.InteractionCreate) actor {
	user, member := interactionUser(i)
	a := actor{
		sessionID: i.ChannelID,
		name:      displayName(member, user),
	}
	if user != nil {
		a.userID = user.ID
	}
	return a
}

// Handle processes a Discord interaction for the croc command
func (c *CrocCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	who := newActor(i)
	sub := data.Options[0]

	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}

	switch sub.Name {
	case "start":
		return c.handleStart(ctx, s, i, who)
	case "status":
		return c.handleStatus(ctx, s, i, who)
	case "hint":
		return c.handleHint(ctx, s, i, who)
	case "show":
		return c.handleShow(ctx, s, i, who)
	case "replace":
		return c.handleReplace(ctx, s, i, who)
	case "stop":
		return c.handleStop(ctx, s, i, who)
	case "reset":
		return c.handleReset(ctx, s, i, who)
	case "clearused":
		return c.handleClearUsed(ctx, s, i, who)
	case "score":
		target := who
		if opt, ok := options["player"]; ok {
			if user := opt.UserValue(s); user != nil {
				target = actor{sessionID: who.sessionID, userID: user.ID, name: displayName(nil, user)}
			}
		}
		return c.handleScore(ctx, s, i, target)
	case "top":
		limit := DefaultTopLimit
		if n := intOption(options, "limit"); n > 0 {
			limit = int(n)
		}
		return c.handleTop(ctx, s, i, who, limit)
	case "addword":
		return c.handleAddWord(ctx, s, i, who, stringOption(options, "word"))
	case "adjust":
		opt, ok := options["player"]
		if !ok || opt.UserValue(s) == nil {
			return RespondWithError(s, i, "Unknown player.")
		}
		return c.handleAdjust(ctx, s, i, who, opt.UserValue(s), int(intOption(options, "delta")))
	case "special":
		return c.handleSpecial(ctx, s, i, who, stringOption(options, "word"), int(intOption(options, "reward")))
	default:
		return errors.New("unknown subcommand")
	}
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := options[name]; ok && opt != nil {
		return opt.StringValue()
	}
	return ""
}

func intOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	if opt, ok := options[name]; ok && opt != nil {
		return opt.IntValue()
	}
	return 0
}

// HandleComponent processes the leader buttons
func (c *CrocCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	who := newActor(i)

	switch i.MessageComponentData().CustomID {
	case ButtonShowWord:
		return c.handleShow(ctx, s, i, who)
	case ButtonReplaceWord:
		return c.handleReplace(ctx, s, i, who)
	case ButtonStopRound:
		return c.handleStop(ctx, s, i, who)
	default:
		return nil
	}
}

// respondError explains a failed operation to the user who triggered it
func (c *CrocCommand) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor, err error) error {
	event := log.Debug()
	if errors.Is(err, game.ErrStoreUnavailable) || errors.Is(err, game.ErrInvalidInput) {
		event = log.Warn()
	}
	event.Err(err).Str("session", who.sessionID).Str("user", who.userID).Msg("croc command rejected")

	output, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return RespondWithError(s, i, err.Error())
	}
	return RespondWithError(s, i, output.Message)
}

func (c *CrocCommand) leaderWord(ctx context.Context, word string, replaced bool) string {
	output, err := c.messaging.GetLeaderWordMessage(ctx, &messaging.GetLeaderWordMessageInput{
		Word:     word,
		Replaced: replaced,
	})
	if err != nil {
		return fmt.Sprintf("Your word: **%s**", word)
	}
	return output.Message
}

func (c *CrocCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor) error {
	output, err := c.gameService.StartRound(ctx, &game.StartRoundInput{
		SessionID:   who.sessionID,
		UserID:      who.userID,
		DisplayName: who.name,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	embed, err := announceRound(ctx, c.messaging, output.Round)
	if err != nil {
		return err
	}

	if err := RespondWithEmbed(s, i, embed, leaderButtons()); err != nil {
		return err
	}

	return FollowupEphemeral(s, i, c.leaderWord(ctx, output.Round.Word.Text, false))
}

func (c *CrocCommand) handleSpecial(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor, word string, reward int) error {
	output, err := c.gameService.StartSpecialRound(ctx, &game.StartSpecialRoundInput{
		SessionID:   who.sessionID,
		UserID:      who.userID,
		DisplayName: who.name,
		Word:        word,
		Reward:      reward,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	embed, err := announceRound(ctx, c.messaging, output.Round)
	if err != nil {
		return err
	}

	if err := RespondWithEmbed(s, i, embed, leaderButtons()); err != nil {
		return err
	}

	return FollowupEphemeral(s, i, c.leaderWord(ctx, output.Round.Word.Text, false))
}

func (c *CrocCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor) error {
	status, err := c.gameService.CurrentStatus(ctx, &game.CurrentStatusInput{SessionID: who.sessionID})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	output, err := c.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Round: status.Round,
		Mask:  status.Mask,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(s, i, newEmbed("🐊 Status", output.Message, messaging.ToneNeutral), nil)
}

func (c *CrocCommand) handleHint(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor) error {
	hint, err := c.gameService.RequestHint(ctx, &game.RequestHintInput{
		SessionID: who.sessionID,
		UserID:    who.userID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	output, err := c.messaging.GetHintMessage(ctx, &messaging.GetHintMessageInput{Mask: hint.Mask})
	if err != nil {
		return err
	}

	return RespondWithMessage(s, i, output.Message)
}

func (c *CrocCommand) handleShow(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor) error {
	output, err := c.gameService.ShowWord(ctx, &game.ShowWordInput{
		SessionID: who.sessionID,
		UserID:    who.userID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	return RespondWithEphemeralMessage(s, i, c.leaderWord(ctx, output.Word.Text, false))
}

func (c *CrocCommand) handleReplace(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor) error {
	output, err := c.gameService.ReplaceWord(ctx, &game.ReplaceWordInput{
		SessionID: who.sessionID,
		UserID:    who.userID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	// The word itself only goes to the leader
	if output.Round.LeaderID == who.userID {
		if err := RespondWithEphemeralMessage(s, i, c.leaderWord(ctx, output.Round.Word.Text, true)); err != nil {
			return err
		}
	} else if err := RespondWithEphemeralMessage(s, i, "🔄 The word was replaced."); err != nil {
		return err
	}

	embed, err := announceRound(ctx, c.messaging, output.Round)
	if err != nil {
		return err
	}

	_, err = s.ChannelMessageSendComplex(who.sessionID, &discordgo.MessageSend{
		Content: fmt.Sprintf("🔄 %s swapped the word.", who.name),
		Embeds:  []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: leaderButtons()},
		},
	})
	return err
}

func (c *CrocCommand) handleStop(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor) error {
	output, err := c.gameService.StopRound(ctx, &game.StopRoundInput{
		SessionID: who.sessionID,
		UserID:    who.userID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	message := fmt.Sprintf("🛑 %s stopped the round.", who.name)
	if output.Round != nil && output.Round.Word != nil {
		message += fmt.Sprintf(" The word was **%s**.", output.Round.Word.Text)
	}

	return RespondWithMessage(s, i, message)
}

func (c *CrocCommand) handleReset(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor) error {
	output, err := c.gameService.ResetAll(ctx, &game.ResetAllInput{
		SessionID: who.sessionID,
		UserID:    who.userID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	message := "🧹 All scores were reset."
	if output.RoundStopped {
		message = "🧹 The round was stopped and all scores were reset."
	}

	return RespondWithMessage(s, i, message)
}

func (c *CrocCommand) handleClearUsed(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor) error {
	_, err := c.gameService.ClearUsedWords(ctx, &game.ClearUsedWordsInput{
		SessionID: who.sessionID,
		UserID:    who.userID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	return RespondWithEphemeralMessage(s, i, "♻️ Every word can be drawn again.")
}

func (c *CrocCommand) handleScore(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, target actor) error {
	ranking, err := c.gameService.GetRanking(ctx, &game.GetRankingInput{SessionID: target.sessionID})
	if err != nil {
		return c.respondError(ctx, s, i, target, err)
	}

	for place, entry := range ranking.Entries {
		if entry.UserID == target.userID {
			return RespondWithMessage(s, i, fmt.Sprintf("🏅 %s has %d points (#%d).", target.name, entry.Points, place+1))
		}
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🏅 %s has no points yet.", target.name))
}

func (c *CrocCommand) handleTop(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor, limit int) error {
	ranking, err := c.gameService.GetRanking(ctx, &game.GetRankingInput{
		SessionID: who.sessionID,
		Limit:     limit,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	output, err := c.messaging.GetRankingMessage(ctx, &messaging.GetRankingMessageInput{
		Entries: ranking.Entries,
		Title:   "🏆 Leaderboard",
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(s, i, newEmbed("", output.Message, messaging.ToneCelebration), nil)
}

func (c *CrocCommand) handleAddWord(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor, word string) error {
	output, err := c.gameService.AddWord(ctx, &game.AddWordInput{
		SessionID: who.sessionID,
		UserID:    who.userID,
		Word:      word,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("📝 Added **%s** to the pool.", output.Word.Text))
}

func (c *CrocCommand) handleAdjust(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, who actor, target *discordgo.User, delta int) error {
	targetName := displayName(nil, target)
	if resolved := i.ApplicationCommandData().Resolved; resolved != nil {
		if member, ok := resolved.Members[target.ID]; ok && member != nil {
			targetName = displayName(member, target)
		}
	}

	output, err := c.gameService.AdjustScore(ctx, &game.AdjustScoreInput{
		SessionID:    who.sessionID,
		UserID:       who.userID,
		TargetUserID: target.ID,
		TargetName:   targetName,
		Delta:        delta,
	})
	if err != nil {
		return c.respondError(ctx, s, i, who, err)
	}

	message := fmt.Sprintf("✏️ %s: %d → %d points.", targetName, output.Previous, output.Points)
	if output.Achievement != nil {
		message += fmt.Sprintf(" 🏆 %s", output.Achievement.Title)
	}

	return RespondWithMessage(s, i, message)
}
