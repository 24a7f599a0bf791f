package game

//go:generate mockgen -package=mocks -destination=mocks/mock_authorizer.go github.com/KirkDiggler/crocodile/internal/services/game Authorizer

import "context"

// Service defines the round operations exposed to chat adapters
type Service interface {
	// StartRound deals a word to the caller, who becomes the leader
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// StartSpecialRound starts a one-shot round with a word chosen by a privileged user
	StartSpecialRound(ctx context.Context, input *StartSpecialRoundInput) (*StartSpecialRoundOutput, error)

	// ReplaceWord deals a new word to the current leader
	ReplaceWord(ctx context.Context, input *ReplaceWordInput) (*ReplaceWordOutput, error)

	// RequestHint discloses one more hint level
	RequestHint(ctx context.Context, input *RequestHintInput) (*RequestHintOutput, error)

	// ShowWord reveals the secret word to the leader
	ShowWord(ctx context.Context, input *ShowWordInput) (*ShowWordOutput, error)

	// StopRound ends the current round
	StopRound(ctx context.Context, input *StopRoundInput) (*StopRoundOutput, error)

	// ResetAll ends the round and clears the scores
	ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error)

	// SubmitGuess processes one chat message
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// AddWord appends a word to the pool
	AddWord(ctx context.Context, input *AddWordInput) (*AddWordOutput, error)

	// AdjustScore changes a player's total by hand
	AdjustScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error)

	// ClearUsedWords makes every pool word drawable again
	ClearUsedWords(ctx context.Context, input *ClearUsedWordsInput) (*ClearUsedWordsOutput, error)

	// CurrentStatus returns a snapshot of the round
	CurrentStatus(ctx context.Context, input *CurrentStatusInput) (*CurrentStatusOutput, error)

	// GetRanking returns the standings
	GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error)

	// Activity reports when the session was last active
	Activity(ctx context.Context, input *ActivityInput) (*ActivityOutput, error)
}

// Authorizer answers permission questions about chat users
type Authorizer interface {
	// IsAdministrator reports whether the user moderates the session's channel
	IsAdministrator(ctx context.Context, sessionID, userID string) bool

	// IsPrivileged reports whether the user may run special rounds and adjust scores
	IsPrivileged(ctx context.Context, userID string) bool
}

// Evaluator compares chat text with the secret word
type Evaluator interface {
	// IsCorrect reports whether the guess names the answer
	IsCorrect(guess, answer string) bool

	// DetectLeak returns the token of a leader's message that gives the answer away
	DetectLeak(message, answer string) (string, bool)
}
