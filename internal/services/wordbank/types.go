package wordbank

import (
	"github.com/KirkDiggler/crocodile/internal/common/random"
	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/repositories/words"
)

const (
	// DefaultMinWordLength is the shortest word AddWord accepts
	DefaultMinWordLength = 3
)

// DefaultFallbackWords are dealt when the pool cannot be read
var DefaultFallbackWords = []string{"крокодил", "машина", "лампа", "река"}

// Config holds configuration for the word bank
type Config struct {
	// Repository dependencies
	Repo words.Repository

	// Service dependencies
	Random random.Source

	// SeedWords are merged into the stored pool once per session, before the first load or addition
	SeedWords []string

	// FallbackWords replace the pool when it cannot be read, DefaultFallbackWords when empty
	FallbackWords []string

	// MinWordLength in letters, DefaultMinWordLength when zero
	MinWordLength int
}

// LoadPoolInput contains parameters for loading a pool
type LoadPoolInput struct {
	SessionID string
}

// LoadPoolOutput contains the candidate words
type LoadPoolOutput struct {
	Words []string

	// Fallback is true when the built-in words were returned instead of the stored pool
	Fallback bool
}

// DrawUnusedInput contains parameters for drawing a word
type DrawUnusedInput struct {
	SessionID string

	// Pool is the output of LoadPool
	Pool []string
}

// DrawUnusedOutput contains the drawn word
type DrawUnusedOutput struct {
	Word *models.Word

	// Remaining is the number of unused candidates left after this draw
	Remaining int
}

// AddWordInput contains parameters for adding a word
type AddWordInput struct {
	SessionID string
	Word      string
}

// AddWordOutput contains the stored word
type AddWordOutput struct {
	Word *models.Word
}

// ClearUsedInput contains parameters for clearing the used set
type ClearUsedInput struct {
	SessionID string
}
