// Package clock lets services read the time through an injectable source.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/crocodile/internal/common/clock Clock

// Clock returns the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock and reports it in a fixed location
type SystemClock struct {
	location *time.Location
}

// New creates a system clock. A nil location keeps the local zone.
func New(location *time.Location) *SystemClock {
	return &SystemClock{location: location}
}

// Now returns the current time in the clock's location
func (c *SystemClock) Now() time.Time {
	now := time.Now()
	if c.location != nil {
		return now.In(c.location)
	}
	return now
}
