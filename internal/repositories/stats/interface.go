package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/crocodile/internal/repositories/stats Repository

import (
	"context"
)

// Repository defines the interface for per-day guess counters
type Repository interface {
	// IncrementGuesses adds one guess to a user's counter for the given day
	IncrementGuesses(ctx context.Context, input *IncrementGuessesInput) error

	// GetDailyStats retrieves the counters of one day
	GetDailyStats(ctx context.Context, input *GetDailyStatsInput) (*GetDailyStatsOutput, error)

	// ClearDailyStats removes the counters of one day
	ClearDailyStats(ctx context.Context, input *ClearDailyStatsInput) error
}
