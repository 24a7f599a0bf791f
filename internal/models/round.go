package models

import (
	"time"
)

// RoundStatus represents the current state of a session's round
type RoundStatus string

const (
	// RoundStatusIdle indicates no round is running
	RoundStatusIdle RoundStatus = "idle"

	// RoundStatusActive indicates a regular round is in progress
	RoundStatusActive RoundStatus = "active"

	// RoundStatusSpecial indicates a special round started by a privileged user
	RoundStatusSpecial RoundStatus = "special"
)

// IsIdle returns true if no round is running
func (s RoundStatus) IsIdle() bool {
	return s == RoundStatusIdle || s == ""
}

// IsActive returns true for both regular and special rounds
func (s RoundStatus) IsActive() bool {
	return s == RoundStatusActive || s == RoundStatusSpecial
}

// Round is a point-in-time snapshot of a session's round
type Round struct {
	// ID identifies the round; it changes whenever a new leader takes over
	ID string

	// SessionID is the chat channel the round belongs to
	SessionID string

	// Status is the current state of the round
	Status RoundStatus

	// Word is the secret word, nil while idle
	Word *Word

	// LeaderID is the user currently holding the word
	LeaderID string

	// LeaderName is the resolved display name of the leader
	LeaderName string

	// Attempts counts wrong guesses since the word was dealt
	Attempts int

	// HintLevel is the number of hint steps disclosed so far
	HintLevel int

	// MaxHints caps HintLevel
	MaxHints int

	// AutoHintStep is the number of wrong guesses per automatic hint level
	AutoHintStep int

	// RevealedPositions are the letter indexes disclosed by the current hint level
	RevealedPositions []int

	// SpecialMode marks a special round
	SpecialMode bool

	// SpecialReward is the number of points a correct guess earns in a special round
	SpecialReward int

	// StartedAt is when the current word was dealt
	StartedAt time.Time
}
