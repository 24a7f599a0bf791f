package game

import (
	"time"

	"github.com/KirkDiggler/crocodile/internal/common/clock"
	"github.com/KirkDiggler/crocodile/internal/common/uuid"
	"github.com/KirkDiggler/crocodile/internal/hint"
	"github.com/KirkDiggler/crocodile/internal/models"
	statsRepo "github.com/KirkDiggler/crocodile/internal/repositories/stats"
	"github.com/KirkDiggler/crocodile/internal/services/scoreboard"
	"github.com/KirkDiggler/crocodile/internal/services/wordbank"
)

const (
	// DefaultAttemptsNotifyStep is how many wrong guesses pass between milestone notices
	DefaultAttemptsNotifyStep = 5

	// DefaultSpecialReward is awarded when a special round does not name one
	DefaultSpecialReward = 10
)

// GuessOutcome describes what a submitted message did to the round
type GuessOutcome string

const (
	// GuessOutcomeIgnored means the message changed nothing
	GuessOutcomeIgnored GuessOutcome = "ignored"

	// GuessOutcomeLeak means the leader gave the word away and was penalized
	GuessOutcomeLeak GuessOutcome = "leak"

	// GuessOutcomeMiss means a wrong guess was counted
	GuessOutcomeMiss GuessOutcome = "miss"

	// GuessOutcomeCorrect means the word was guessed
	GuessOutcomeCorrect GuessOutcome = "correct"
)

// Config holds configuration for the game service
type Config struct {
	// MaxHints caps the hint level, hint.DefaultMaxHints when zero
	MaxHints int

	// AutoHintStep is the number of wrong guesses per automatic hint level, hint.DefaultAutoHintStep when zero
	AutoHintStep int

	// AttemptsNotifyStep is DefaultAttemptsNotifyStep when zero
	AttemptsNotifyStep int

	// Location decides which calendar day a guess is counted on, UTC when nil
	Location *time.Location

	// Service dependencies
	WordBank   wordbank.Service
	ScoreBoard scoreboard.Service
	Evaluator  Evaluator
	Authorizer Authorizer

	// Repository dependencies
	StatsRepo statsRepo.Repository

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartRoundInput contains parameters for starting a round
type StartRoundInput struct {
	SessionID   string
	UserID      string
	DisplayName string
}

// StartRoundOutput contains the started round
type StartRoundOutput struct {
	Round *models.Round
}

// StartSpecialRoundInput contains parameters for starting a special round
type StartSpecialRoundInput struct {
	SessionID   string
	UserID      string
	DisplayName string

	// Word is chosen by the caller and bypasses the pool
	Word string

	// Reward is DefaultSpecialReward when zero
	Reward int
}

// StartSpecialRoundOutput contains the started round
type StartSpecialRoundOutput struct {
	Round *models.Round
}

// ReplaceWordInput contains parameters for replacing the word
type ReplaceWordInput struct {
	SessionID string
	UserID    string
}

// ReplaceWordOutput contains the round with its new word
type ReplaceWordOutput struct {
	Round *models.Round
}

// RequestHintInput contains parameters for requesting a hint
type RequestHintInput struct {
	SessionID string
	UserID    string
}

// RequestHintOutput contains the disclosed hint
type RequestHintOutput struct {
	Round *models.Round
	Mask  hint.Mask
}

// ShowWordInput contains parameters for revealing the word to the leader
type ShowWordInput struct {
	SessionID string
	UserID    string
}

// ShowWordOutput contains the secret word
type ShowWordOutput struct {
	Word *models.Word
}

// StopRoundInput contains parameters for stopping a round
type StopRoundInput struct {
	SessionID string
	UserID    string
}

// StopRoundOutput contains the round as it was before stopping
type StopRoundOutput struct {
	Round *models.Round
}

// ResetAllInput contains parameters for a full reset
type ResetAllInput struct {
	SessionID string
	UserID    string
}

// ResetAllOutput contains the result of a full reset
type ResetAllOutput struct {
	// RoundStopped is true when a round was running
	RoundStopped bool
}

// SubmitGuessInput is one inbound chat message
type SubmitGuessInput struct {
	SessionID   string
	UserID      string
	DisplayName string
	Text        string

	// SentAt is the message timestamp, the service clock when zero
	SentAt time.Time
}

// SubmitGuessOutput describes the effect of a message
type SubmitGuessOutput struct {
	Outcome GuessOutcome

	// Round is the state after the message
	Round *models.Round

	// Word is the guessed word for a correct guess
	Word *models.Word

	// LeakToken is the offending token of a leak
	LeakToken string

	// Points is the affected player's total after a correct guess or a leak
	Points int

	// Awarded is the number of points a correct guess earned
	Awarded int

	// Achievement is set when a correct guess reached a milestone
	Achievement *models.Achievement

	// ScoreUnavailable is true when the score store could not be updated
	ScoreUnavailable bool

	// AttemptsMilestone is true when a miss reached a multiple of the notify step
	AttemptsMilestone bool

	// HintEscalated is true when a miss raised the hint level
	HintEscalated bool
	HintMask      *hint.Mask

	// RoundEnded is true when a correct guess returned the session to idle
	RoundEnded bool

	// PoolExhausted is true when the round ended because no words were left
	PoolExhausted bool

	// PreviousLeaderID is the leader before a correct guess
	PreviousLeaderID string
}

// AddWordInput contains parameters for adding a word
type AddWordInput struct {
	SessionID string
	UserID    string
	Word      string
}

// AddWordOutput contains the stored word
type AddWordOutput struct {
	Word *models.Word
}

// AdjustScoreInput contains parameters for a manual score change
type AdjustScoreInput struct {
	SessionID string

	// UserID is the actor
	UserID string

	TargetUserID string
	TargetName   string
	Delta        int
}

// AdjustScoreOutput contains the target's totals around the change
type AdjustScoreOutput struct {
	Previous    int
	Points      int
	Achievement *models.Achievement
}

// ClearUsedWordsInput contains parameters for clearing the used set
type ClearUsedWordsInput struct {
	SessionID string
	UserID    string
}

// ClearUsedWordsOutput contains the result of clearing the used set
type ClearUsedWordsOutput struct{}

// CurrentStatusInput contains parameters for the status query
type CurrentStatusInput struct {
	SessionID string
}

// CurrentStatusOutput contains the round snapshot
type CurrentStatusOutput struct {
	Round *models.Round

	// Mask is nil while idle
	Mask *hint.Mask
}

// GetRankingInput contains parameters for the ranking query
type GetRankingInput struct {
	SessionID string

	// Limit of zero returns everyone
	Limit int
}

// GetRankingOutput contains the standings, best first
type GetRankingOutput struct {
	Entries []*models.ScoreRecord
}

// ActivityInput contains parameters for the activity query
type ActivityInput struct {
	SessionID string
}

// ActivityOutput contains the session's activity
type ActivityOutput struct {
	Activity *models.Activity
}
