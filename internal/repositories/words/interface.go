package words

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/crocodile/internal/repositories/words Repository

import (
	"context"
)

// Repository defines the interface for word pool and used word persistence
type Repository interface {
	// GetPool retrieves the ordered word pool for a session
	GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error)

	// AppendWord appends a word to the end of a session's pool
	AppendWord(ctx context.Context, input *AppendWordInput) error

	// SeedPool merges seed words into the pool once per session, keeping words added earlier
	SeedPool(ctx context.Context, input *SeedPoolInput) (*SeedPoolOutput, error)

	// GetUsedWords retrieves the normalized words already dealt in a session
	GetUsedWords(ctx context.Context, input *GetUsedWordsInput) (*GetUsedWordsOutput, error)

	// MarkUsed adds a normalized word to the used set and reports whether it was new
	MarkUsed(ctx context.Context, input *MarkUsedInput) (*MarkUsedOutput, error)

	// ClearUsedWords empties the used set of a session
	ClearUsedWords(ctx context.Context, input *ClearUsedWordsInput) error
}
