package models

// ScoreRecord is a player's point total within a session
type ScoreRecord struct {
	// UserID is the chat user identifier
	UserID string

	// Points is the current total, never below zero once stored
	Points int

	// DisplayName is the last seen name of the player, cosmetic only
	DisplayName string
}

// Achievement is a milestone title reached at an exact point total
type Achievement struct {
	Threshold int    `yaml:"threshold"`
	Title     string `yaml:"title"`
}
