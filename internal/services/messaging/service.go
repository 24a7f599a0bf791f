package messaging

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/crocodile/internal/common/random"
	"github.com/KirkDiggler/crocodile/internal/services/game"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	random random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var source random.Source
	if config != nil && config.Random != nil {
		source = config.Random
	} else {
		source = random.New(nil)
	}

	return &service{
		random: source,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.random.Intn(len(messages))]
}

// GetRoundStartMessage announces a new round in the channel
func (s *service) GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Special {
		return &GetRoundStartMessageOutput{
			Message: fmt.Sprintf("⭐ Special round by %s! The word has %d letters and is worth %d points. One correct guess ends the round.",
				input.LeaderName, input.Length, input.Reward),
			Tone: ToneCelebration,
		}, nil
	}

	messages := []string{
		"🐊 %s is the leader! The word has %d letters. Start guessing!",
		"🐊 New round! %s is holding a %d-letter word. Fire away!",
		"🐊 %s knows the secret. %d letters stand between you and glory.",
		"🐊 All eyes on %s! The word has %d letters.",
	}

	return &GetRoundStartMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.LeaderName, input.Length),
		Tone:    ToneFunny,
	}, nil
}

// GetLeaderWordMessage tells the leader their secret word
func (s *service) GetLeaderWordMessage(ctx context.Context, input *GetLeaderWordMessageInput) (*GetLeaderWordMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	intro := "🤫 You are the leader!"
	if input.Replaced {
		intro = "🔄 Here is your new word."
	}

	return &GetLeaderWordMessageOutput{
		Message: fmt.Sprintf("%s\nYour word: **%s**\nDescribe it without naming it. Use `/croc hint` to help the players.", intro, input.Word),
	}, nil
}

// GetCorrectGuessMessage celebrates a correct guess
func (s *service) GetCorrectGuessMessage(ctx context.Context, input *GetCorrectGuessMessageInput) (*GetCorrectGuessMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"🎉 %s guessed the word **%s**!",
		"🎉 Nailed it! %s found **%s**.",
		"🎉 %s cracked it, the word was **%s**!",
		"🎉 Sharp as a crocodile's tooth! %s guessed **%s**.",
	}

	var b strings.Builder
	fmt.Fprintf(&b, s.pick(messages), input.GuesserName, input.Word)

	if input.ScoreUnavailable {
		b.WriteString("\nThe scoreboard is taking a nap, points will be back soon.")
	} else {
		fmt.Fprintf(&b, "\n+%d, now at %d points.", input.Awarded, input.Points)
	}

	if input.Achievement != nil {
		fmt.Fprintf(&b, "\n🏆 Achievement unlocked: **%s** (%d points)", input.Achievement.Title, input.Achievement.Threshold)
	}

	switch {
	case input.PoolExhausted:
		b.WriteString("\nThat was the last unused word. Add more with `/croc addword`.")
	case input.RoundEnded:
		b.WriteString("\nThe round is over. Start a new one with `/croc start`.")
	default:
		fmt.Fprintf(&b, "\n👉 %s is the new leader!", input.GuesserName)
	}

	return &GetCorrectGuessMessageOutput{
		Message: b.String(),
		Tone:    ToneCelebration,
	}, nil
}

// GetHintMessage presents a hint mask
func (s *service) GetHintMessage(ctx context.Context, input *GetHintMessageInput) (*GetHintMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	prefix := fmt.Sprintf("💡 Hint #%d", input.Mask.Level)
	if input.Automatic {
		prefix = fmt.Sprintf("🤖 Auto hint #%d", input.Mask.Level)
	}

	return &GetHintMessageOutput{
		Message: fmt.Sprintf("%s\n%s\n`%s`", prefix, input.Mask.Description, input.Mask.String()),
	}, nil
}

// GetLeakMessage warns a leader who gave the word away
func (s *service) GetLeakMessage(ctx context.Context, input *GetLeakMessageInput) (*GetLeakMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"🚫 %s, no spoilers! That costs you a point (now %d).",
		"🚫 Careful %s, that was way too close. -1 point, you have %d.",
		"🚫 %s almost said it out loud! Penalty applied, %d points left.",
	}

	return &GetLeakMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.LeaderName, input.Points),
		Tone:    ToneStern,
	}, nil
}

// GetAttemptsMessage marks a run of wrong guesses
func (s *service) GetAttemptsMessage(ctx context.Context, input *GetAttemptsMessageInput) (*GetAttemptsMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"🙌 Already %d attempts! The leader can give a hint with `/croc hint`.",
		"🙌 %d guesses and counting. Leader, maybe a hint?",
		"🙌 %d tries so far. Keep going, you're getting warmer!",
	}

	return &GetAttemptsMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.Attempts),
		Tone:    ToneEncouraging,
	}, nil
}

// GetStatusMessage describes the current round
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil || input.Round == nil {
		return nil, errors.New("input and round cannot be nil")
	}

	round := input.Round
	if !round.Status.IsActive() {
		return &GetStatusMessageOutput{Message: "No round is running. Start one with `/croc start`."}, nil
	}

	lines := []string{"📢 **Round status**"}
	if round.LeaderName != "" {
		lines = append(lines, fmt.Sprintf("Leader: %s", round.LeaderName))
	}
	if round.SpecialMode {
		lines = append(lines, fmt.Sprintf("Special round worth %d points", round.SpecialReward))
	}
	lines = append(lines, fmt.Sprintf("Attempts: %d", round.Attempts))

	if input.Mask != nil {
		lines = append(lines, input.Mask.Description, fmt.Sprintf("`%s`", input.Mask.String()))
	}

	return &GetStatusMessageOutput{Message: strings.Join(lines, "\n")}, nil
}

// GetRankingMessage lists the standings
func (s *service) GetRankingMessage(ctx context.Context, input *GetRankingMessageInput) (*GetRankingMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Entries) == 0 {
		return &GetRankingMessageOutput{Message: "Nobody has scored yet."}, nil
	}

	title := input.Title
	if title == "" {
		title = "🏆 **Ranking**"
	}

	lines := []string{title}
	for i, entry := range input.Entries {
		name := entry.DisplayName
		if name == "" {
			name = fmt.Sprintf("<@%s>", entry.UserID)
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %d", i+1, name, entry.Points))
	}

	return &GetRankingMessageOutput{Message: strings.Join(lines, "\n")}, nil
}

// GetNudgeMessage invites an idle channel to play
func (s *service) GetNudgeMessage(ctx context.Context, input *GetNudgeMessageInput) (*GetNudgeMessageOutput, error) {
	messages := []string{
		"🐊 It's been quiet for a while. Who wants to lead a round? `/croc start`",
		"🐊 The crocodile is bored. Start a round with `/croc start`!",
		"🐊 Nobody has played in hours. Time for a quick round?",
	}

	return &GetNudgeMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneEncouraging,
	}, nil
}

// GetDailyReportMessage summarizes a day's guesses, busiest players first
func (s *service) GetDailyReportMessage(ctx context.Context, input *GetDailyReportMessageInput) (*GetDailyReportMessageOutput, error) {
	if input == nil || input.Stats == nil {
		return nil, errors.New("input and stats cannot be nil")
	}

	header := fmt.Sprintf("📊 Guesses on %s", input.Stats.Date)
	if len(input.Stats.Counts) == 0 {
		return &GetDailyReportMessageOutput{Message: header + "\nNo guesses today."}, nil
	}

	userIDs := make([]string, 0, len(input.Stats.Counts))
	for userID := range input.Stats.Counts {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool {
		ci, cj := input.Stats.Counts[userIDs[i]], input.Stats.Counts[userIDs[j]]
		if ci != cj {
			return ci > cj
		}
		return userIDs[i] < userIDs[j]
	})

	lines := []string{header}
	for _, userID := range userIDs {
		name := input.Names[userID]
		if name == "" {
			name = userID
		}
		lines = append(lines, fmt.Sprintf("%s: %d", name, input.Stats.Counts[userID]))
	}
	lines = append(lines, fmt.Sprintf("Total: %d", input.Stats.Total()))

	return &GetDailyReportMessageOutput{Message: strings.Join(lines, "\n")}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := ToneFunny

	switch {
	case errors.Is(input.Err, game.ErrWordsExhausted):
		messages = []string{
			"All the words have been used! Add new ones with `/croc addword`.",
			"The word bag is empty. Time to add some fresh words!",
		}
	case errors.Is(input.Err, game.ErrInvalidWord):
		messages = []string{
			"That word won't do. Use letters only, at least three of them, and no duplicates.",
		}
		tone = ToneNeutral
	case errors.Is(input.Err, game.ErrUnauthorized):
		messages = []string{
			"Nice try, but that's not yours to do.",
			"Only the leader (or a moderator) can do that.",
			"Access denied! The crocodile is watching you.",
		}
		tone = ToneStern
	case errors.Is(input.Err, game.ErrNoActiveRound):
		messages = []string{
			"No round is running. Start one with `/croc start`.",
			"There's nothing to do here yet. Try `/croc start`!",
		}
	case errors.Is(input.Err, game.ErrRoundAlreadyActive):
		messages = []string{
			"A round is already running. Guess the word first!",
			"Hold on, there's already a leader. Join the guessing!",
		}
	case errors.Is(input.Err, game.ErrNoMoreHints):
		messages = []string{
			"All hints are already revealed. Let them work it out!",
		}
		tone = ToneNeutral
	case errors.Is(input.Err, game.ErrStoreUnavailable):
		messages = []string{
			"The storage is having a moment. Please try again shortly.",
		}
		tone = ToneNeutral
	default:
		messages = []string{
			"Something went wrong. Please try again.",
			"Oops, the crocodile tripped. Try that again?",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
