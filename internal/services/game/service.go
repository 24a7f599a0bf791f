package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/crocodile/internal/common/clock"
	"github.com/KirkDiggler/crocodile/internal/common/uuid"
	"github.com/KirkDiggler/crocodile/internal/hint"
	"github.com/KirkDiggler/crocodile/internal/models"
	statsRepo "github.com/KirkDiggler/crocodile/internal/repositories/stats"
	"github.com/KirkDiggler/crocodile/internal/services/scoreboard"
	"github.com/KirkDiggler/crocodile/internal/services/wordbank"
	"github.com/KirkDiggler/crocodile/internal/textnorm"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	maxHints           int
	autoHintStep       int
	attemptsNotifyStep int
	location           *time.Location

	wordBank   wordbank.Service
	scoreBoard scoreboard.Service
	evaluator  Evaluator
	authorizer Authorizer
	statsRepo  statsRepo.Repository

	clock         clock.Clock
	uuidGenerator uuid.UUID

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.WordBank == nil {
		return nil, ErrNilWordBank
	}

	if cfg.ScoreBoard == nil {
		return nil, ErrNilScoreBoard
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Evaluator == nil {
		return nil, ErrNilEvaluator
	}

	if cfg.Authorizer == nil {
		return nil, ErrNilAuthorizer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxHints := cfg.MaxHints
	if maxHints <= 0 {
		maxHints = hint.DefaultMaxHints
	}

	autoHintStep := cfg.AutoHintStep
	if autoHintStep <= 0 {
		autoHintStep = hint.DefaultAutoHintStep
	}

	notifyStep := cfg.AttemptsNotifyStep
	if notifyStep <= 0 {
		notifyStep = DefaultAttemptsNotifyStep
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &service{
		maxHints:           maxHints,
		autoHintStep:       autoHintStep,
		attemptsNotifyStep: notifyStep,
		location:           location,
		wordBank:           cfg.WordBank,
		scoreBoard:         cfg.ScoreBoard,
		evaluator:          cfg.Evaluator,
		authorizer:         cfg.Authorizer,
		statsRepo:          cfg.StatsRepo,
		clock:              cfg.Clock,
		uuidGenerator:      cfg.UUIDGenerator,
		sessions:           make(map[string]*session),
	}, nil
}

// drawer returns the draw step used by the round for this session
func (s *service) drawer(sessionID string) drawFunc {
	return func(ctx context.Context) (*models.Word, error) {
		pool, err := s.wordBank.LoadPool(ctx, &wordbank.LoadPoolInput{SessionID: sessionID})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}

		if pool.Fallback {
			log.Warn().Str("session", sessionID).Msg("drawing from fallback words")
		}

		drawn, err := s.wordBank.DrawUnused(ctx, &wordbank.DrawUnusedInput{
			SessionID: sessionID,
			Pool:      pool.Words,
		})
		if err != nil {
			return nil, translateWordBankError(err)
		}

		return drawn.Word, nil
	}
}

func translateWordBankError(err error) error {
	switch {
	case errors.Is(err, wordbank.ErrWordsExhausted):
		return ErrWordsExhausted
	case errors.Is(err, wordbank.ErrInvalidWord):
		return fmt.Errorf("%w: %w", ErrInvalidWord, err)
	case errors.Is(err, wordbank.ErrStoreUnavailable):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return err
	}
}

func (s *service) snapshot(sess *session) *models.Round {
	return sess.round.snapshot(sess.id, s.maxHints, s.autoHintStep)
}

func (s *service) mask(sess *session) hint.Mask {
	return hint.Format(sess.round.word.Text, sess.round.hintLevel, s.maxHints)
}

// StartRound deals a word to the caller
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.clock.Now()
	err := sess.round.start(ctx, s.drawer(sess.id), s.uuidGenerator.NewUUID(), input.UserID, input.DisplayName, now)
	if err != nil {
		return nil, err
	}
	sess.touch(now)

	log.Info().
		Str("session", sess.id).
		Str("round", sess.round.id).
		Str("user", input.UserID).
		Msg("round started")

	return &StartRoundOutput{
		Round: s.snapshot(sess),
	}, nil
}

// StartSpecialRound starts a round with a caller-chosen word and reward
func (s *service) StartSpecialRound(ctx context.Context, input *StartSpecialRoundInput) (*StartSpecialRoundOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" || input.Reward < 0 {
		return nil, ErrInvalidInput
	}

	if !s.authorizer.IsPrivileged(ctx, input.UserID) {
		return nil, ErrUnauthorized
	}

	text := strings.ToLower(strings.TrimSpace(input.Word))
	if !textnorm.IsAlphabetic(text) {
		return nil, ErrInvalidWord
	}

	reward := input.Reward
	if reward == 0 {
		reward = DefaultSpecialReward
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.clock.Now()
	word := &models.Word{
		Text:       text,
		Normalized: textnorm.Normalize(text),
	}

	if err := sess.round.startSpecial(word, reward, s.uuidGenerator.NewUUID(), input.UserID, input.DisplayName, now); err != nil {
		return nil, err
	}
	sess.touch(now)

	log.Info().
		Str("session", sess.id).
		Str("round", sess.round.id).
		Str("user", input.UserID).
		Int("reward", reward).
		Msg("special round started")

	return &StartSpecialRoundOutput{
		Round: s.snapshot(sess),
	}, nil
}

// ReplaceWord deals a new word; the leader and round ID are kept
func (s *service) ReplaceWord(ctx context.Context, input *ReplaceWordInput) (*ReplaceWordOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.round.active() {
		return nil, ErrNoActiveRound
	}

	if !s.canReplace(ctx, sess, input.UserID) {
		return nil, ErrUnauthorized
	}

	now := s.clock.Now()
	if err := sess.round.replace(ctx, s.drawer(sess.id), now); err != nil {
		return nil, err
	}
	sess.touch(now)

	log.Info().Str("session", sess.id).Str("round", sess.round.id).Msg("word replaced")

	return &ReplaceWordOutput{
		Round: s.snapshot(sess),
	}, nil
}

// canReplace allows the leader or an administrator; special rounds only
// accept a privileged user
func (s *service) canReplace(ctx context.Context, sess *session, userID string) bool {
	if sess.round.special() {
		return s.authorizer.IsPrivileged(ctx, userID)
	}

	if userID == sess.round.leaderID {
		return true
	}

	return s.authorizer.IsAdministrator(ctx, sess.id, userID)
}

// RequestHint discloses the next hint level
func (s *service) RequestHint(ctx context.Context, input *RequestHintInput) (*RequestHintOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.round.active() {
		return nil, ErrNoActiveRound
	}

	if input.UserID != sess.round.leaderID {
		return nil, ErrUnauthorized
	}

	if sess.round.hintLevel >= s.maxHints {
		return nil, ErrNoMoreHints
	}

	sess.round.raiseHint(sess.round.hintLevel + 1)
	sess.touch(s.clock.Now())

	log.Debug().Str("session", sess.id).Int("level", sess.round.hintLevel).Msg("hint requested")

	return &RequestHintOutput{
		Round: s.snapshot(sess),
		Mask:  s.mask(sess),
	}, nil
}

// ShowWord returns the secret word to the leader
func (s *service) ShowWord(ctx context.Context, input *ShowWordInput) (*ShowWordOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.round.active() {
		return nil, ErrNoActiveRound
	}

	if input.UserID != sess.round.leaderID {
		return nil, ErrUnauthorized
	}

	word := *sess.round.word
	return &ShowWordOutput{Word: &word}, nil
}

// StopRound ends the round; allowed for the leader and administrators
func (s *service) StopRound(ctx context.Context, input *StopRoundInput) (*StopRoundOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.round.active() {
		return nil, ErrNoActiveRound
	}

	if input.UserID != sess.round.leaderID && !s.authorizer.IsAdministrator(ctx, sess.id, input.UserID) {
		return nil, ErrUnauthorized
	}

	previous := s.snapshot(sess)
	sess.round.stop()

	log.Info().Str("session", sess.id).Str("round", previous.ID).Str("user", input.UserID).Msg("round stopped")

	return &StopRoundOutput{Round: previous}, nil
}

// ResetAll stops the round and clears the scores. Used words are kept.
func (s *service) ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	if !s.authorizer.IsAdministrator(ctx, input.SessionID, input.UserID) {
		return nil, ErrUnauthorized
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// scores first so a store failure leaves the round untouched
	if err := s.scoreBoard.Reset(ctx, &scoreboard.ResetInput{SessionID: sess.id}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	stopped := sess.round.active()
	sess.round.stop()

	log.Info().Str("session", sess.id).Str("user", input.UserID).Msg("game reset")

	return &ResetAllOutput{RoundStopped: stopped}, nil
}

// SubmitGuess processes one chat message as a single step of the session
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	output := &SubmitGuessOutput{Outcome: GuessOutcomeIgnored}

	if !sess.round.active() || strings.TrimSpace(input.Text) == "" {
		output.Round = s.snapshot(sess)
		return output, nil
	}

	now := input.SentAt
	if now.IsZero() {
		now = s.clock.Now()
	}
	sess.touch(now)

	if input.UserID == sess.round.leaderID {
		s.checkLeak(ctx, sess, input, output)
		output.Round = s.snapshot(sess)
		return output, nil
	}

	s.countGuess(ctx, sess.id, input.UserID, now)

	if textnorm.Normalize(input.Text) == "" {
		output.Round = s.snapshot(sess)
		return output, nil
	}

	if s.evaluator.IsCorrect(input.Text, sess.round.word.Text) {
		s.handleCorrect(ctx, sess, input, now, output)
	} else {
		s.handleMiss(sess, output)
	}

	output.Round = s.snapshot(sess)
	return output, nil
}

// checkLeak penalizes the leader for naming the word
func (s *service) checkLeak(ctx context.Context, sess *session, input *SubmitGuessInput, output *SubmitGuessOutput) {
	token, leaked := s.evaluator.DetectLeak(input.Text, sess.round.word.Text)
	if !leaked {
		return
	}

	output.Outcome = GuessOutcomeLeak
	output.LeakToken = token

	penalty, err := s.scoreBoard.Award(ctx, &scoreboard.AwardInput{
		SessionID:   sess.id,
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
		Delta:       -1,
	})
	if err != nil {
		log.Warn().Err(err).Str("session", sess.id).Str("user", input.UserID).Msg("failed to apply leak penalty")
		output.ScoreUnavailable = true
		return
	}
	output.Points = penalty.Points

	log.Info().
		Str("session", sess.id).
		Str("round", sess.round.id).
		Str("user", input.UserID).
		Str("token", token).
		Msg("leader leaked the word")
}

// countGuess adds the guess to the daily stats; failures only lose a counter
func (s *service) countGuess(ctx context.Context, sessionID, userID string, at time.Time) {
	err := s.statsRepo.IncrementGuesses(ctx, &statsRepo.IncrementGuessesInput{
		SessionID: sessionID,
		Date:      models.DateKey(at.In(s.location)),
		UserID:    userID,
	})
	if err != nil {
		log.Warn().Err(err).Str("session", sessionID).Str("user", userID).Msg("failed to count guess")
	}
}

func (s *service) handleCorrect(ctx context.Context, sess *session, input *SubmitGuessInput, now time.Time, output *SubmitGuessOutput) {
	word := *sess.round.word
	output.Outcome = GuessOutcomeCorrect
	output.Word = &word
	output.PreviousLeaderID = sess.round.leaderID

	reward := 1
	if sess.round.special() {
		reward = sess.round.specialReward
	}
	output.Awarded = reward

	award, err := s.scoreBoard.Award(ctx, &scoreboard.AwardInput{
		SessionID:   sess.id,
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
		Delta:       reward,
	})
	if err != nil {
		log.Warn().Err(err).Str("session", sess.id).Str("user", input.UserID).Msg("failed to award points")
		output.ScoreUnavailable = true
	} else {
		output.Points = award.Points
		output.Achievement = award.Achievement
	}

	log.Info().
		Str("session", sess.id).
		Str("round", sess.round.id).
		Str("user", input.UserID).
		Int("attempts", sess.round.attempts).
		Msg("word guessed")

	ended, exhausted, err := sess.round.advance(ctx, s.drawer(sess.id), s.uuidGenerator.NewUUID(), input.UserID, input.DisplayName, now)
	output.RoundEnded = ended
	output.PoolExhausted = exhausted
	if err != nil {
		log.Warn().Err(err).Str("session", sess.id).Msg("failed to draw next word, round ended")
	}
}

func (s *service) handleMiss(sess *session, output *SubmitGuessOutput) {
	output.Outcome = GuessOutcomeMiss
	sess.round.attempts++

	if sess.round.attempts%s.attemptsNotifyStep == 0 {
		output.AttemptsMilestone = true
	}

	level, escalated := hint.AutoEscalate(sess.round.attempts, sess.round.hintLevel, s.autoHintStep, s.maxHints)
	if escalated && sess.round.raiseHint(level) {
		mask := s.mask(sess)
		output.HintEscalated = true
		output.HintMask = &mask

		log.Debug().Str("session", sess.id).Int("level", level).Msg("hint escalated")
	}
}

// AddWord appends a word to the pool; administrators and privileged users only
func (s *service) AddWord(ctx context.Context, input *AddWordInput) (*AddWordOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	if !s.authorizer.IsAdministrator(ctx, input.SessionID, input.UserID) && !s.authorizer.IsPrivileged(ctx, input.UserID) {
		return nil, ErrUnauthorized
	}

	added, err := s.wordBank.AddWord(ctx, &wordbank.AddWordInput{
		SessionID: input.SessionID,
		Word:      input.Word,
	})
	if err != nil {
		return nil, translateWordBankError(err)
	}

	log.Info().Str("session", input.SessionID).Str("user", input.UserID).Msg("word added")

	return &AddWordOutput{Word: added.Word}, nil
}

// AdjustScore changes a player's total; privileged users only
func (s *service) AdjustScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" || input.TargetUserID == "" || input.Delta == 0 {
		return nil, ErrInvalidInput
	}

	if !s.authorizer.IsPrivileged(ctx, input.UserID) {
		return nil, ErrUnauthorized
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	award, err := s.scoreBoard.Award(ctx, &scoreboard.AwardInput{
		SessionID:   sess.id,
		UserID:      input.TargetUserID,
		DisplayName: input.TargetName,
		Delta:       input.Delta,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Info().
		Str("session", sess.id).
		Str("user", input.UserID).
		Str("target", input.TargetUserID).
		Int("delta", input.Delta).
		Msg("score adjusted")

	return &AdjustScoreOutput{
		Previous:    award.Previous,
		Points:      award.Points,
		Achievement: award.Achievement,
	}, nil
}

// ClearUsedWords makes every pool word drawable again; administrators only
func (s *service) ClearUsedWords(ctx context.Context, input *ClearUsedWordsInput) (*ClearUsedWordsOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	if !s.authorizer.IsAdministrator(ctx, input.SessionID, input.UserID) {
		return nil, ErrUnauthorized
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.wordBank.ClearUsed(ctx, &wordbank.ClearUsedInput{SessionID: sess.id}); err != nil {
		return nil, translateWordBankError(err)
	}

	log.Info().Str("session", sess.id).Str("user", input.UserID).Msg("used words cleared")

	return &ClearUsedWordsOutput{}, nil
}

// CurrentStatus returns a snapshot of the round
func (s *service) CurrentStatus(ctx context.Context, input *CurrentStatusInput) (*CurrentStatusOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	output := &CurrentStatusOutput{Round: s.snapshot(sess)}
	if sess.round.active() {
		mask := s.mask(sess)
		output.Mask = &mask
	}

	return output, nil
}

// GetRanking returns the standings
func (s *service) GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	ranking, err := s.scoreBoard.Ranking(ctx, &scoreboard.RankingInput{
		SessionID: input.SessionID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return &GetRankingOutput{Entries: ranking.Entries}, nil
}

// Activity reports whether a round runs and when the session was last active
func (s *service) Activity(ctx context.Context, input *ActivityInput) (*ActivityOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	sess := s.getSession(input.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &ActivityOutput{
		Activity: &models.Activity{
			SessionID:    sess.id,
			Active:       sess.round.active(),
			LastActivity: sess.lastActivity,
		},
	}, nil
}
