package scores

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/crocodile/internal/repositories/scores Repository

import (
	"context"
)

// Repository defines the interface for score persistence
type Repository interface {
	// AddPoints applies a delta to a player's total and records the display name
	AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error)

	// GetScores retrieves every score record of a session in no particular order
	GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error)

	// ClearScores removes every score record of a session
	ClearScores(ctx context.Context, input *ClearScoresInput) error
}
