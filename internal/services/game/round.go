package game

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/crocodile/internal/hint"
	"github.com/KirkDiggler/crocodile/internal/models"
)

// drawFunc deals the next unused word or fails without side effects on the round
type drawFunc func(ctx context.Context) (*models.Word, error)

// round is the state machine of one session. Every transition either
// completes or leaves the fields untouched.
type round struct {
	id            string
	status        models.RoundStatus
	word          *models.Word
	leaderID      string
	leaderName    string
	attempts      int
	hintLevel     int
	specialReward int
	startedAt     time.Time
}

func (r *round) active() bool {
	return r.status.IsActive()
}

func (r *round) special() bool {
	return r.status == models.RoundStatusSpecial
}

// consistent reports whether the round satisfies active == (word != nil && leader != "")
func (r *round) consistent() bool {
	return r.active() == (r.word != nil && r.leaderID != "")
}

func (r *round) start(ctx context.Context, draw drawFunc, id, leaderID, leaderName string, now time.Time) error {
	if r.active() {
		return ErrRoundAlreadyActive
	}

	word, err := draw(ctx)
	if err != nil {
		return err
	}

	*r = round{
		id:         id,
		status:     models.RoundStatusActive,
		word:       word,
		leaderID:   leaderID,
		leaderName: leaderName,
		startedAt:  now,
	}
	return nil
}

func (r *round) startSpecial(word *models.Word, reward int, id, leaderID, leaderName string, now time.Time) error {
	if r.active() {
		return ErrRoundAlreadyActive
	}

	*r = round{
		id:            id,
		status:        models.RoundStatusSpecial,
		word:          word,
		leaderID:      leaderID,
		leaderName:    leaderName,
		specialReward: reward,
		startedAt:     now,
	}
	return nil
}

// replace deals a new word to the same leader
func (r *round) replace(ctx context.Context, draw drawFunc, now time.Time) error {
	if !r.active() {
		return ErrNoActiveRound
	}

	word, err := draw(ctx)
	if err != nil {
		return err
	}

	r.word = word
	r.attempts = 0
	r.hintLevel = 0
	r.startedAt = now
	return nil
}

// advance hands the round to the guesser. It reports whether the round ended
// and whether that was because the pool ran out.
func (r *round) advance(ctx context.Context, draw drawFunc, id, leaderID, leaderName string, now time.Time) (ended, exhausted bool, err error) {
	if !r.active() {
		return false, false, ErrNoActiveRound
	}

	if r.special() {
		r.stop()
		return true, false, nil
	}

	word, err := draw(ctx)
	if err != nil {
		r.stop()
		if errors.Is(err, ErrWordsExhausted) {
			return true, true, nil
		}
		return true, false, err
	}

	*r = round{
		id:         id,
		status:     models.RoundStatusActive,
		word:       word,
		leaderID:   leaderID,
		leaderName: leaderName,
		startedAt:  now,
	}
	return false, false, nil
}

func (r *round) stop() {
	*r = round{status: models.RoundStatusIdle}
}

// raiseHint moves the hint level up; lower or equal levels are ignored
func (r *round) raiseHint(level int) bool {
	if level <= r.hintLevel {
		return false
	}
	r.hintLevel = level
	return true
}

func (r *round) snapshot(sessionID string, maxHints, autoHintStep int) *models.Round {
	status := r.status
	if status == "" {
		status = models.RoundStatusIdle
	}

	snap := &models.Round{
		ID:            r.id,
		SessionID:     sessionID,
		Status:        status,
		LeaderID:      r.leaderID,
		LeaderName:    r.leaderName,
		Attempts:      r.attempts,
		HintLevel:     r.hintLevel,
		MaxHints:      maxHints,
		AutoHintStep:  autoHintStep,
		SpecialMode:   r.special(),
		SpecialReward: r.specialReward,
		StartedAt:     r.startedAt,
	}

	if r.word != nil {
		word := *r.word
		snap.Word = &word
		snap.RevealedPositions = hint.RevealedPositions(word.Text, r.hintLevel, maxHints)
	} else {
		snap.RevealedPositions = []int{}
	}

	return snap
}
