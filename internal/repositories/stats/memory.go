package stats

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/crocodile/internal/models"
)

type memoryRepository struct {
	mu     sync.Mutex
	counts map[string]map[string]int
}

// NewMemory creates an empty in-memory stats repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		counts: make(map[string]map[string]int),
	}
}

func memoryKey(sessionID, date string) string {
	return sessionID + "|" + date
}

func (m *memoryRepository) IncrementGuesses(ctx context.Context, input *IncrementGuessesInput) error {
	if input == nil || input.SessionID == "" || input.Date == "" || input.UserID == "" {
		return errors.New("input, session ID, date and user ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoryKey(input.SessionID, input.Date)
	if m.counts[key] == nil {
		m.counts[key] = make(map[string]int)
	}
	m.counts[key][input.UserID]++

	return nil
}

func (m *memoryRepository) GetDailyStats(ctx context.Context, input *GetDailyStatsInput) (*GetDailyStatsOutput, error) {
	if input == nil || input.SessionID == "" || input.Date == "" {
		return nil, errors.New("input, session ID and date cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[string]int)
	for userID, n := range m.counts[memoryKey(input.SessionID, input.Date)] {
		counts[userID] = n
	}

	return &GetDailyStatsOutput{
		Stats: &models.DailyStats{
			SessionID: input.SessionID,
			Date:      input.Date,
			Counts:    counts,
		},
	}, nil
}

func (m *memoryRepository) ClearDailyStats(ctx context.Context, input *ClearDailyStatsInput) error {
	if input == nil || input.SessionID == "" || input.Date == "" {
		return errors.New("input, session ID and date cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.counts, memoryKey(input.SessionID, input.Date))
	return nil
}
