package words

import (
	"context"
	"errors"
	"sync"
)

// memoryRepository is an in-process Repository used by tests and local runs
type memoryRepository struct {
	mu     sync.RWMutex
	pools  map[string][]string
	used   map[string]map[string]struct{}
	seeded map[string]bool
}

// NewMemory creates an empty in-memory word repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		pools:  make(map[string][]string),
		used:   make(map[string]map[string]struct{}),
		seeded: make(map[string]bool),
	}
}

// GetPool retrieves a copy of the session's pool
func (m *memoryRepository) GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	pool := m.pools[input.SessionID]
	words := make([]string, len(pool))
	copy(words, pool)

	return &GetPoolOutput{Words: words}, nil
}

// AppendWord appends a word to the session's pool
func (m *memoryRepository) AppendWord(ctx context.Context, input *AppendWordInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if input.Word == "" {
		return errors.New("word cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pools[input.SessionID] = append(m.pools[input.SessionID], input.Word)
	return nil
}

// SeedPool merges the seed words into the session's pool the first time it is called
func (m *memoryRepository) SeedPool(ctx context.Context, input *SeedPoolInput) (*SeedPoolOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if len(input.Words) == 0 {
		return &SeedPoolOutput{}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seeded[input.SessionID] {
		return &SeedPoolOutput{}, nil
	}
	m.seeded[input.SessionID] = true

	values := missingWords(m.pools[input.SessionID], input.Words)
	for _, v := range values {
		m.pools[input.SessionID] = append(m.pools[input.SessionID], v.(string))
	}

	return &SeedPoolOutput{Seeded: len(values)}, nil
}

// GetUsedWords retrieves the session's used set
func (m *memoryRepository) GetUsedWords(ctx context.Context, input *GetUsedWordsInput) (*GetUsedWordsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	words := make([]string, 0, len(m.used[input.SessionID]))
	for w := range m.used[input.SessionID] {
		words = append(words, w)
	}

	return &GetUsedWordsOutput{Words: words}, nil
}

// MarkUsed inserts the word unless it is already present
func (m *memoryRepository) MarkUsed(ctx context.Context, input *MarkUsedInput) (*MarkUsedOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if input.Word == "" {
		return nil, errors.New("word cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.used[input.SessionID]
	if !ok {
		set = make(map[string]struct{})
		m.used[input.SessionID] = set
	}

	if _, exists := set[input.Word]; exists {
		return &MarkUsedOutput{Added: false}, nil
	}
	set[input.Word] = struct{}{}

	return &MarkUsedOutput{Added: true}, nil
}

// ClearUsedWords drops the session's used set
func (m *memoryRepository) ClearUsedWords(ctx context.Context, input *ClearUsedWordsInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.used, input.SessionID)
	return nil
}
