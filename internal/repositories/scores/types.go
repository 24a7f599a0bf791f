package scores

import "github.com/KirkDiggler/crocodile/internal/models"

// AddPointsInput contains parameters for changing a player's total
type AddPointsInput struct {
	SessionID string
	UserID    string

	// DisplayName replaces the stored name unless empty
	DisplayName string

	// Delta is added to the total; negative results are floored at zero
	// only when Delta itself is negative
	Delta int
}

// AddPointsOutput contains the totals before and after the change
type AddPointsOutput struct {
	Previous int
	Points   int

	// Created is true when the record did not exist before
	Created bool
}

// GetScoresInput contains parameters for listing a session's scores
type GetScoresInput struct {
	SessionID string
}

// GetScoresOutput contains the session's score records
type GetScoresOutput struct {
	Records []*models.ScoreRecord
}

// ClearScoresInput contains parameters for clearing a session's scores
type ClearScoresInput struct {
	SessionID string
}
