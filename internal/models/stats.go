package models

import "time"

// DailyStats holds the per-user guess counts for one calendar date
type DailyStats struct {
	// SessionID is the chat channel the counts belong to
	SessionID string

	// Date is the calendar date in YYYY-MM-DD form
	Date string

	// Counts maps user IDs to the number of guesses sent that day
	Counts map[string]int
}

// Total returns the sum of all guess counts
func (d *DailyStats) Total() int {
	total := 0
	for _, c := range d.Counts {
		total += c
	}
	return total
}

// Activity is what the inactivity monitor needs to know about a session
type Activity struct {
	SessionID    string
	Active       bool
	LastActivity time.Time
}

// DateKey returns the YYYY-MM-DD bucket for t in its own location
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
