package scoreboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/repositories/scores"
)

type service struct {
	repo         scores.Repository
	achievements []models.Achievement
}

// New creates a new score board
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}

	table := cfg.Achievements
	if len(table) == 0 {
		table = DefaultAchievements
	}

	achievements := make([]models.Achievement, len(table))
	copy(achievements, table)
	sort.Slice(achievements, func(i, j int) bool {
		return achievements[i].Threshold < achievements[j].Threshold
	})

	return &service{
		repo:         cfg.Repo,
		achievements: achievements,
	}, nil
}

// Award applies the delta; penalties are floored at zero by the repository
func (s *service) Award(ctx context.Context, input *AwardInput) (*AwardOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	result, err := s.repo.AddPoints(ctx, &scores.AddPointsInput{
		SessionID:   input.SessionID,
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
		Delta:       input.Delta,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return &AwardOutput{
		Previous:    result.Previous,
		Points:      result.Points,
		Achievement: s.crossed(result.Previous, result.Points),
	}, nil
}

// crossed returns the highest milestone t with previous < t <= points. For a
// single point award this is the same as AchievementFor(points).
func (s *service) crossed(previous, points int) *models.Achievement {
	var found *models.Achievement
	for i := range s.achievements {
		a := s.achievements[i]
		if a.Threshold > previous && a.Threshold <= points {
			found = &a
		}
	}
	return found
}

// AchievementFor returns the milestone at exactly this score
func (s *service) AchievementFor(score int) *models.Achievement {
	for i := range s.achievements {
		if s.achievements[i].Threshold == score {
			a := s.achievements[i]
			return &a
		}
	}
	return nil
}

// Ranking orders by points descending, then by user ID ascending
func (s *service) Ranking(ctx context.Context, input *RankingInput) (*RankingOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	result, err := s.repo.GetScores(ctx, &scores.GetScoresInput{SessionID: input.SessionID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	entries := result.Records
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &RankingOutput{Entries: entries}, nil
}

// Reset clears the session's totals
func (s *service) Reset(ctx context.Context, input *ResetInput) error {
	if input == nil || input.SessionID == "" {
		return ErrInvalidInput
	}

	if err := s.repo.ClearScores(ctx, &scores.ClearScoresInput{SessionID: input.SessionID}); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}
