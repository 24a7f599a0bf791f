package messaging

import (
	"github.com/KirkDiggler/crocodile/internal/common/random"
	"github.com/KirkDiggler/crocodile/internal/hint"
	"github.com/KirkDiggler/crocodile/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneStern is used for warnings
	ToneStern MessageTone = "stern"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Random picks message variants, a time-seeded source when nil
	Random random.Source
}

// GetRoundStartMessageInput contains parameters for a round announcement
type GetRoundStartMessageInput struct {
	LeaderName string

	// Length is the number of letters of the word
	Length int

	Special bool
	Reward  int
}

// GetRoundStartMessageOutput contains the round announcement
type GetRoundStartMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetLeaderWordMessageInput contains parameters for the leader's private message
type GetLeaderWordMessageInput struct {
	Word     string
	Replaced bool
}

// GetLeaderWordMessageOutput contains the leader's private message
type GetLeaderWordMessageOutput struct {
	Message string
}

// GetCorrectGuessMessageInput contains parameters for a correct guess
type GetCorrectGuessMessageInput struct {
	GuesserName string
	Word        string
	Points      int
	Awarded     int
	Achievement *models.Achievement

	// ScoreUnavailable hides the point total when it could not be saved
	ScoreUnavailable bool

	RoundEnded    bool
	PoolExhausted bool
}

// GetCorrectGuessMessageOutput contains the celebration
type GetCorrectGuessMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetHintMessageInput contains parameters for a hint
type GetHintMessageInput struct {
	Mask hint.Mask

	// Automatic is true when the hint was unlocked by wrong guesses
	Automatic bool
}

// GetHintMessageOutput contains the hint text
type GetHintMessageOutput struct {
	Message string
}

// GetLeakMessageInput contains parameters for a leak warning
type GetLeakMessageInput struct {
	LeaderName string
	Points     int
}

// GetLeakMessageOutput contains the warning
type GetLeakMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetAttemptsMessageInput contains parameters for an attempts milestone
type GetAttemptsMessageInput struct {
	Attempts int
}

// GetAttemptsMessageOutput contains the milestone text
type GetAttemptsMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetStatusMessageInput contains parameters for a status report
type GetStatusMessageInput struct {
	Round *models.Round

	// Mask is nil while idle
	Mask *hint.Mask
}

// GetStatusMessageOutput contains the status text
type GetStatusMessageOutput struct {
	Message string
}

// GetRankingMessageInput contains parameters for the standings
type GetRankingMessageInput struct {
	Entries []*models.ScoreRecord
	Title   string
}

// GetRankingMessageOutput contains the standings text
type GetRankingMessageOutput struct {
	Message string
}

// GetNudgeMessageInput contains parameters for a nudge
type GetNudgeMessageInput struct{}

// GetNudgeMessageOutput contains the nudge text
type GetNudgeMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetDailyReportMessageInput contains parameters for the daily report
type GetDailyReportMessageInput struct {
	Stats *models.DailyStats

	// Names maps user IDs to display names; unknown IDs are shown as is
	Names map[string]string
}

// GetDailyReportMessageOutput contains the report text
type GetDailyReportMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the error text
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
