package words

// GetPoolInput contains parameters for retrieving a word pool
type GetPoolInput struct {
	SessionID string
}

// GetPoolOutput contains the words of a pool in insertion order
type GetPoolOutput struct {
	Words []string
}

// AppendWordInput contains parameters for appending a word to a pool
type AppendWordInput struct {
	SessionID string
	Word      string
}

// SeedPoolInput contains the words merged into a pool on first use
type SeedPoolInput struct {
	SessionID string
	Words     []string
}

// SeedPoolOutput contains the result of seeding a pool
type SeedPoolOutput struct {
	// Seeded is the number of words written; zero when the session was already seeded
	Seeded int
}

// GetUsedWordsInput contains parameters for retrieving used words
type GetUsedWordsInput struct {
	SessionID string
}

// GetUsedWordsOutput contains the normalized used words
type GetUsedWordsOutput struct {
	Words []string
}

// MarkUsedInput contains parameters for marking a word as used
type MarkUsedInput struct {
	SessionID string

	// Word must already be normalized
	Word string
}

// MarkUsedOutput contains the result of marking a word as used
type MarkUsedOutput struct {
	// Added is false when another draw claimed the word first
	Added bool
}

// ClearUsedWordsInput contains parameters for clearing the used set
type ClearUsedWordsInput struct {
	SessionID string
}
