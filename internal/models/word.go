package models

// Word is a secret word as dealt to a leader
type Word struct {
	// Text is the word as stored in the pool
	Text string

	// Normalized is the folded form used for matching and de-duplication
	Normalized string
}
