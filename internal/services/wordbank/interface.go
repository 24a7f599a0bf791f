package wordbank

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/crocodile/internal/services/wordbank Service

import "context"

// Service owns a session's word pool and the set of words already dealt
type Service interface {
	// LoadPool returns the candidate words, degrading to built-in words when the store fails
	LoadPool(ctx context.Context, input *LoadPoolInput) (*LoadPoolOutput, error)

	// DrawUnused picks a random unused word and marks it used in the same step
	DrawUnused(ctx context.Context, input *DrawUnusedInput) (*DrawUnusedOutput, error)

	// AddWord validates a word and appends it to the pool
	AddWord(ctx context.Context, input *AddWordInput) (*AddWordOutput, error)

	// ClearUsed forgets every word dealt so far
	ClearUsed(ctx context.Context, input *ClearUsedInput) error
}
