package scoreboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/crocodile/internal/services/scoreboard Service

import (
	"context"

	"github.com/KirkDiggler/crocodile/internal/models"
)

// Service tracks per-player point totals and milestone titles
type Service interface {
	// Award adds a delta to a player's total and reports a newly reached milestone
	Award(ctx context.Context, input *AwardInput) (*AwardOutput, error)

	// Ranking returns the session's players ordered by points
	Ranking(ctx context.Context, input *RankingInput) (*RankingOutput, error)

	// Reset clears every total of a session
	Reset(ctx context.Context, input *ResetInput) error

	// AchievementFor returns the milestone at exactly this score, or nil
	AchievementFor(score int) *models.Achievement
}
