package stats

import "github.com/KirkDiggler/crocodile/internal/models"

// IncrementGuessesInput contains parameters for counting a guess
type IncrementGuessesInput struct {
	SessionID string

	// Date is a models.DateKey value
	Date   string
	UserID string
}

// GetDailyStatsInput contains parameters for reading a day's counters
type GetDailyStatsInput struct {
	SessionID string
	Date      string
}

// GetDailyStatsOutput contains a day's counters
type GetDailyStatsOutput struct {
	Stats *models.DailyStats
}

// ClearDailyStatsInput contains parameters for clearing a day's counters
type ClearDailyStatsInput struct {
	SessionID string
	Date      string
}
