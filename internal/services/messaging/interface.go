package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRoundStartMessage announces a new round in the channel
	GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error)

	// GetLeaderWordMessage tells the leader their secret word
	GetLeaderWordMessage(ctx context.Context, input *GetLeaderWordMessageInput) (*GetLeaderWordMessageOutput, error)

	// GetCorrectGuessMessage celebrates a correct guess
	GetCorrectGuessMessage(ctx context.Context, input *GetCorrectGuessMessageInput) (*GetCorrectGuessMessageOutput, error)

	// GetHintMessage presents a hint mask
	GetHintMessage(ctx context.Context, input *GetHintMessageInput) (*GetHintMessageOutput, error)

	// GetLeakMessage warns a leader who gave the word away
	GetLeakMessage(ctx context.Context, input *GetLeakMessageInput) (*GetLeakMessageOutput, error)

	// GetAttemptsMessage marks a run of wrong guesses
	GetAttemptsMessage(ctx context.Context, input *GetAttemptsMessageInput) (*GetAttemptsMessageOutput, error)

	// GetStatusMessage describes the current round
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetRankingMessage lists the standings
	GetRankingMessage(ctx context.Context, input *GetRankingMessageInput) (*GetRankingMessageOutput, error)

	// GetNudgeMessage invites an idle channel to play
	GetNudgeMessage(ctx context.Context, input *GetNudgeMessageInput) (*GetNudgeMessageOutput, error)

	// GetDailyReportMessage summarizes a day's guesses
	GetDailyReportMessage(ctx context.Context, input *GetDailyReportMessageInput) (*GetDailyReportMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
