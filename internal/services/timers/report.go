package timers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/crocodile/internal/common/clock"
	"github.com/KirkDiggler/crocodile/internal/models"
	statsRepo "github.com/KirkDiggler/crocodile/internal/repositories/stats"
	"github.com/rs/zerolog/log"
)

// DefaultReportTime is the wall-clock time of the daily report
const DefaultReportTime = "23:55"

// maxPendingReports bounds how many undelivered days are retried; older
// buckets have expired from the stats store by then.
const maxPendingReports = int(statsRepo.DefaultRetention / (24 * time.Hour))

// DailyReportConfig holds configuration for the daily reporter
type DailyReportConfig struct {
	SessionID string

	// At is the HH:MM report time, DefaultReportTime when empty
	At string

	// Location is the report's time zone, UTC when nil
	Location *time.Location

	StatsRepo statsRepo.Repository
	Notifier  Notifier
	Clock     clock.Clock
}

// DailyReporter sends a session's guess counts once a day and clears them.
// The countdown starts at boot and is not persisted.
type DailyReporter struct {
	sessionID string
	hour      int
	minute    int
	location  *time.Location
	statsRepo statsRepo.Repository
	notifier  Notifier
	clock     clock.Clock

	mu      sync.Mutex
	pending []string
}

// NewDailyReporter creates a reporter for one session
func NewDailyReporter(cfg *DailyReportConfig) (*DailyReporter, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionID == "" {
		return nil, ErrMissingSession
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	at := cfg.At
	if at == "" {
		at = DefaultReportTime
	}

	hour, minute, err := ParseReportTime(at)
	if err != nil {
		return nil, err
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &DailyReporter{
		sessionID: cfg.SessionID,
		hour:      hour,
		minute:    minute,
		location:  location,
		statsRepo: cfg.StatsRepo,
		notifier:  cfg.Notifier,
		clock:     cfg.Clock,
	}, nil
}

// ParseReportTime parses an HH:MM wall-clock time
func ParseReportTime(at string) (int, int, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidReportTime, at)
	}
	return t.Hour(), t.Minute(), nil
}

// NextRun returns the first report time strictly after now
func (r *DailyReporter) NextRun(now time.Time) time.Time {
	local := now.In(r.location)
	next := time.Date(local.Year(), local.Month(), local.Day(), r.hour, r.minute, 0, 0, r.location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run sleeps until each report time and sends the report, until ctx is cancelled.
// A failed report is logged and its day is resent on the next tick.
func (r *DailyReporter) Run(ctx context.Context) error {
	for {
		now := r.clock.Now()
		next := r.NextRun(now)

		log.Info().Str("session", r.sessionID).Time("next", next).Msg("daily report scheduled")

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if err := r.Report(ctx, next); err != nil {
			log.Error().Err(err).Str("session", r.sessionID).Msg("daily report failed")
		}
	}
}

// Report sends the counts of the day containing at and clears them once delivered.
// Earlier days whose delivery failed are sent first, oldest to newest.
func (r *DailyReporter) Report(ctx context.Context, at time.Time) error {
	date := models.DateKey(at.In(r.location))

	r.mu.Lock()
	defer r.mu.Unlock()

	dates := r.pending
	if !slices.Contains(dates, date) {
		dates = append(slices.Clone(dates), date)
	}

	var errs []error
	var failed []string
	for _, d := range dates {
		if err := r.deliver(ctx, d); err != nil {
			errs = append(errs, err)
			failed = append(failed, d)
		}
	}

	if len(failed) > maxPendingReports {
		dropped := failed[:len(failed)-maxPendingReports]
		log.Warn().Str("session", r.sessionID).Strs("dates", dropped).Msg("giving up on undelivered reports")
		failed = slices.Clone(failed[len(failed)-maxPendingReports:])
	}
	r.pending = failed

	return errors.Join(errs...)
}

// deliver reports a single day and clears its bucket
func (r *DailyReporter) deliver(ctx context.Context, date string) error {
	output, err := r.statsRepo.GetDailyStats(ctx, &statsRepo.GetDailyStatsInput{
		SessionID: r.sessionID,
		Date:      date,
	})
	if err != nil {
		return fmt.Errorf("failed to read stats for %s: %w", date, err)
	}

	if err := r.notifier.SendDailyReport(ctx, output.Stats); err != nil {
		return fmt.Errorf("failed to deliver report for %s: %w", date, err)
	}

	err = r.statsRepo.ClearDailyStats(ctx, &statsRepo.ClearDailyStatsInput{
		SessionID: r.sessionID,
		Date:      date,
	})
	if err != nil {
		log.Warn().Err(err).Str("session", r.sessionID).Str("date", date).Msg("failed to clear reported stats")
	}

	log.Info().
		Str("session", r.sessionID).
		Str("date", date).
		Int("guesses", output.Stats.Total()).
		Msg("daily report sent")

	return nil
}
