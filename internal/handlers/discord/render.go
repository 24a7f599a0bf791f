package discord

import (
	"context"
	"unicode/utf8"

	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/services/game"
	"github.com/KirkDiggler/crocodile/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonShowWord    = "croc_show_word"
	ButtonReplaceWord = "croc_replace_word"
	ButtonStopRound   = "croc_stop_round"
)

func toneColor(tone messaging.MessageTone) int {
	switch tone {
	case messaging.ToneCelebration:
		return 0xffd700
	case messaging.ToneEncouraging:
		return 0x3498db
	case messaging.ToneStern:
		return 0xff0000
	case messaging.ToneFunny:
		return 0x00ff00
	default:
		return 0x95a5a6
	}
}

func newEmbed(title, description string, tone messaging.MessageTone) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       toneColor(tone),
	}
}

// leaderButtons are attached to every round announcement
func leaderButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "👀 Show word",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonShowWord,
		},
		discordgo.Button{
			Label:    "🔄 New word",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonReplaceWord,
		},
		discordgo.Button{
			Label:    "🛑 Stop",
			Style:    discordgo.DangerButton,
			CustomID: ButtonStopRound,
		},
	}
}

func wordLength(round *models.Round) int {
	if round == nil || round.Word == nil {
		return 0
	}
	return utf8.RuneCountInString(round.Word.Text)
}

// announceRound builds the channel announcement for a freshly dealt word
func announceRound(ctx context.Context, msgs messaging.Service, round *models.Round) (*discordgo.MessageEmbed, error) {
	output, err := msgs.GetRoundStartMessage(ctx, &messaging.GetRoundStartMessageInput{
		LeaderName: round.LeaderName,
		Length:     wordLength(round),
		Special:    round.SpecialMode,
		Reward:     round.SpecialReward,
	})
	if err != nil {
		return nil, err
	}

	return newEmbed("🐊 Crocodile", output.Message, output.Tone), nil
}

// guessReplies turns the effect of a chat message into the channel messages to send.
// Ignored messages produce nothing.
func guessReplies(ctx context.Context, msgs messaging.Service, input *game.SubmitGuessInput, output *game.SubmitGuessOutput) ([]*discordgo.MessageSend, error) {
	var replies []*discordgo.MessageSend

	switch output.Outcome {
	case game.GuessOutcomeLeak:
		leak, err := msgs.GetLeakMessage(ctx, &messaging.GetLeakMessageInput{
			LeaderName: input.DisplayName,
			Points:     output.Points,
		})
		if err != nil {
			return nil, err
		}
		replies = append(replies, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{newEmbed("", leak.Message, leak.Tone)},
		})

	case game.GuessOutcomeCorrect:
		word := ""
		if output.Word != nil {
			word = output.Word.Text
		}

		correct, err := msgs.GetCorrectGuessMessage(ctx, &messaging.GetCorrectGuessMessageInput{
			GuesserName:      input.DisplayName,
			Word:             word,
			Points:           output.Points,
			Awarded:          output.Awarded,
			Achievement:      output.Achievement,
			ScoreUnavailable: output.ScoreUnavailable,
			RoundEnded:       output.RoundEnded,
			PoolExhausted:    output.PoolExhausted,
		})
		if err != nil {
			return nil, err
		}
		replies = append(replies, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{newEmbed("🎉 Correct!", correct.Message, correct.Tone)},
		})

		if !output.RoundEnded && output.Round != nil && output.Round.Status.IsActive() {
			embed, err := announceRound(ctx, msgs, output.Round)
			if err != nil {
				return nil, err
			}
			replies = append(replies, &discordgo.MessageSend{
				Embeds: []*discordgo.MessageEmbed{embed},
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{Components: leaderButtons()},
				},
			})
		}

	case game.GuessOutcomeMiss:
		if output.AttemptsMilestone && output.Round != nil {
			attempts, err := msgs.GetAttemptsMessage(ctx, &messaging.GetAttemptsMessageInput{
				Attempts: output.Round.Attempts,
			})
			if err != nil {
				return nil, err
			}
			replies = append(replies, &discordgo.MessageSend{Content: attempts.Message})
		}

		if output.HintEscalated && output.HintMask != nil {
			hintMsg, err := msgs.GetHintMessage(ctx, &messaging.GetHintMessageInput{
				Mask:      *output.HintMask,
				Automatic: true,
			})
			if err != nil {
				return nil, err
			}
			replies = append(replies, &discordgo.MessageSend{Content: hintMsg.Message})
		}
	}

	return replies, nil
}
