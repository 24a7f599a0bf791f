package scores

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/crocodile/internal/models"
)

// memoryRepository is an in-process Repository used by tests and local runs
type memoryRepository struct {
	mu       sync.Mutex
	sessions map[string]map[string]*models.ScoreRecord
}

// NewMemory creates an empty in-memory score repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]map[string]*models.ScoreRecord),
	}
}

// AddPoints applies a delta with the same floor rules as the Redis script
func (m *memoryRepository) AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records, ok := m.sessions[input.SessionID]
	if !ok {
		records = make(map[string]*models.ScoreRecord)
		m.sessions[input.SessionID] = records
	}

	record, exists := records[input.UserID]
	if !exists {
		if input.Delta < 0 {
			return &AddPointsOutput{}, nil
		}
		record = &models.ScoreRecord{UserID: input.UserID}
		records[input.UserID] = record
	}

	previous := record.Points
	record.Points += input.Delta
	if input.Delta < 0 && record.Points < 0 {
		record.Points = 0
	}
	if input.DisplayName != "" {
		record.DisplayName = input.DisplayName
	}

	return &AddPointsOutput{
		Previous: previous,
		Points:   record.Points,
		Created:  !exists,
	}, nil
}

// GetScores returns copies of the session's records
func (m *memoryRepository) GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]*models.ScoreRecord, 0, len(m.sessions[input.SessionID]))
	for _, r := range m.sessions[input.SessionID] {
		copied := *r
		records = append(records, &copied)
	}

	return &GetScoresOutput{Records: records}, nil
}

// ClearScores drops the session's records
func (m *memoryRepository) ClearScores(ctx context.Context, input *ClearScoresInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, input.SessionID)
	return nil
}
