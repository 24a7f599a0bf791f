// Package timers runs the long-lived background tasks: the inactivity
// nudge and the daily guess report.
package timers

//go:generate mockgen -package=mocks -destination=mocks/mock_activity_source.go github.com/KirkDiggler/crocodile/internal/services/timers ActivitySource
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/crocodile/internal/services/timers Notifier

import (
	"context"

	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/services/game"
)

// ActivitySource reports whether a session is playing and when it last was
type ActivitySource interface {
	Activity(ctx context.Context, input *game.ActivityInput) (*game.ActivityOutput, error)
}

// Notifier delivers timer messages to the chat platform
type Notifier interface {
	// SendNudge invites an idle session to start a round
	SendNudge(ctx context.Context, sessionID string) error

	// SendDailyReport delivers a day's guess counts to the report recipient
	SendDailyReport(ctx context.Context, stats *models.DailyStats) error
}

// TimerError is a custom error type for timer errors
type TimerError string

// Error implements the error interface
func (e TimerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         TimerError = "config cannot be nil"
	ErrMissingSession    TimerError = "session ID cannot be empty"
	ErrNilActivitySource TimerError = "activity source cannot be nil"
	ErrNilNotifier       TimerError = "notifier cannot be nil"
	ErrNilStatsRepo      TimerError = "stats repository cannot be nil"
	ErrNilClock          TimerError = "clock cannot be nil"
	ErrInvalidReportTime TimerError = "report time must be HH:MM"
)
