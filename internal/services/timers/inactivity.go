package timers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/crocodile/internal/common/clock"
	"github.com/KirkDiggler/crocodile/internal/services/game"
	"github.com/rs/zerolog/log"
)

const (
	DefaultInactivityTimeout = 3 * time.Hour
	DefaultPollInterval      = time.Minute
)

// InactivityConfig holds configuration for the inactivity monitor
type InactivityConfig struct {
	SessionID string

	// Timeout is the idle time before a nudge, DefaultInactivityTimeout when zero
	Timeout time.Duration

	// PollInterval is DefaultPollInterval when zero
	PollInterval time.Duration

	Activity ActivitySource
	Notifier Notifier
	Clock    clock.Clock
}

// InactivityMonitor nudges an idle session once per quiet period
type InactivityMonitor struct {
	sessionID    string
	timeout      time.Duration
	pollInterval time.Duration
	activity     ActivitySource
	notifier     Notifier
	clock        clock.Clock

	mu        sync.Mutex
	lastNudge time.Time
}

// NewInactivityMonitor creates a monitor for one session
func NewInactivityMonitor(cfg *InactivityConfig) (*InactivityMonitor, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionID == "" {
		return nil, ErrMissingSession
	}

	if cfg.Activity == nil {
		return nil, ErrNilActivitySource
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultInactivityTimeout
	}

	poll := cfg.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}

	return &InactivityMonitor{
		sessionID:    cfg.SessionID,
		timeout:      timeout,
		pollInterval: poll,
		activity:     cfg.Activity,
		notifier:     cfg.Notifier,
		clock:        cfg.Clock,
	}, nil
}

// Run polls until ctx is cancelled
func (m *InactivityMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	log.Info().
		Str("session", m.sessionID).
		Dur("timeout", m.timeout).
		Dur("poll", m.pollInterval).
		Msg("inactivity monitor started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := m.Check(ctx, m.clock.Now()); err != nil {
				log.Error().Err(err).Str("session", m.sessionID).Msg("inactivity check failed")
			}
		}
	}
}

// Check sends a nudge when the session is idle and nothing happened since
// the later of its last activity and the last nudge. It reports whether a
// nudge was sent.
func (m *InactivityMonitor) Check(ctx context.Context, now time.Time) (bool, error) {
	output, err := m.activity.Activity(ctx, &game.ActivityInput{SessionID: m.sessionID})
	if err != nil {
		return false, fmt.Errorf("failed to read activity: %w", err)
	}

	if output.Activity.Active {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	since := output.Activity.LastActivity
	if m.lastNudge.After(since) {
		since = m.lastNudge
	}

	if now.Sub(since) < m.timeout {
		return false, nil
	}

	if err := m.notifier.SendNudge(ctx, m.sessionID); err != nil {
		return false, fmt.Errorf("failed to send nudge: %w", err)
	}
	m.lastNudge = now

	log.Info().Str("session", m.sessionID).Time("last_activity", output.Activity.LastActivity).Msg("nudge sent")

	return true, nil
}
