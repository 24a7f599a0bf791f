package scoreboard

import (
	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/repositories/scores"
)

// DefaultAchievements is the milestone table used when none is configured
var DefaultAchievements = []models.Achievement{
	{Threshold: 5, Title: "Sharp Eye"},
	{Threshold: 10, Title: "Word Hunter"},
	{Threshold: 25, Title: "Mind Reader"},
	{Threshold: 50, Title: "Crocodile Whisperer"},
	{Threshold: 100, Title: "Living Legend"},
}

// Config holds configuration for the score board
type Config struct {
	// Repository dependencies
	Repo scores.Repository

	// Achievements overrides DefaultAchievements when not empty
	Achievements []models.Achievement
}

// AwardInput contains parameters for changing a player's total
type AwardInput struct {
	SessionID   string
	UserID      string
	DisplayName string
	Delta       int
}

// AwardOutput contains the totals around the change
type AwardOutput struct {
	Previous int
	Points   int

	// Achievement is the highest milestone crossed by this change, nil when none
	Achievement *models.Achievement
}

// RankingInput contains parameters for listing the standings
type RankingInput struct {
	SessionID string

	// Limit caps the number of entries; zero or less returns all
	Limit int
}

// RankingOutput contains the standings, best first
type RankingOutput struct {
	Entries []*models.ScoreRecord
}

// ResetInput contains parameters for clearing the standings
type ResetInput struct {
	SessionID string
}
