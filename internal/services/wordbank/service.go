package wordbank

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/crocodile/internal/common/random"
	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/repositories/words"
	"github.com/KirkDiggler/crocodile/internal/textnorm"
	"github.com/rs/zerolog/log"
)

type service struct {
	repo          words.Repository
	random        random.Source
	seedWords     []string
	fallbackWords []string
	minWordLength int

	// seeded remembers sessions whose pool already received the seed words
	seeded sync.Map
}

// New creates a new word bank
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	fallback := cfg.FallbackWords
	if len(fallback) == 0 {
		fallback = DefaultFallbackWords
	}

	minLength := cfg.MinWordLength
	if minLength <= 0 {
		minLength = DefaultMinWordLength
	}

	return &service{
		repo:          cfg.Repo,
		random:        cfg.Random,
		seedWords:     cfg.SeedWords,
		fallbackWords: fallback,
		minWordLength: minLength,
	}, nil
}

// LoadPool returns the session's pool, seeding it on first use
func (s *service) LoadPool(ctx context.Context, input *LoadPoolInput) (*LoadPoolOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	seedErr := s.ensureSeeded(ctx, input.SessionID)
	if seedErr != nil {
		log.Warn().Err(seedErr).Str("session", input.SessionID).Msg("failed to seed word pool")
	}

	pool, err := s.repo.GetPool(ctx, &words.GetPoolInput{SessionID: input.SessionID})
	if err != nil {
		log.Warn().Err(err).Str("session", input.SessionID).Msg("word pool unavailable, using fallback words")
		return s.fallback(), nil
	}

	if len(pool.Words) > 0 {
		return &LoadPoolOutput{Words: pool.Words}, nil
	}

	if len(s.seedWords) == 0 {
		log.Warn().Str("session", input.SessionID).Msg("word pool is empty, using fallback words")
		return s.fallback(), nil
	}

	// Seeding failed, deal from the seed words without storing them
	seed := make([]string, len(s.seedWords))
	copy(seed, s.seedWords)
	return &LoadPoolOutput{Words: seed, Fallback: true}, nil
}

// ensureSeeded merges the seed words into the stored pool once per session
func (s *service) ensureSeeded(ctx context.Context, sessionID string) error {
	if len(s.seedWords) == 0 {
		return nil
	}

	if _, ok := s.seeded.Load(sessionID); ok {
		return nil
	}

	output, err := s.repo.SeedPool(ctx, &words.SeedPoolInput{
		SessionID: sessionID,
		Words:     s.seedWords,
	})
	if err != nil {
		return err
	}

	if output.Seeded > 0 {
		log.Info().Str("session", sessionID).Int("words", output.Seeded).Msg("seeded word pool")
	}
	s.seeded.Store(sessionID, true)

	return nil
}

func (s *service) fallback() *LoadPoolOutput {
	fallback := make([]string, len(s.fallbackWords))
	copy(fallback, s.fallbackWords)

	return &LoadPoolOutput{
		Words:    fallback,
		Fallback: true,
	}
}

// DrawUnused picks uniformly among pool words not yet dealt
func (s *service) DrawUnused(ctx context.Context, input *DrawUnusedInput) (*DrawUnusedOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	used, err := s.repo.GetUsedWords(ctx, &words.GetUsedWordsInput{SessionID: input.SessionID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	candidates := unusedCandidates(input.Pool, used.Words)

	for len(candidates) > 0 {
		i := s.random.Intn(len(candidates))
		picked := candidates[i]

		marked, err := s.repo.MarkUsed(ctx, &words.MarkUsedInput{
			SessionID: input.SessionID,
			Word:      picked.Normalized,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}

		candidates = append(candidates[:i], candidates[i+1:]...)

		if marked.Added {
			return &DrawUnusedOutput{
				Word:      picked,
				Remaining: len(candidates),
			}, nil
		}

		log.Debug().Str("session", input.SessionID).Str("word", picked.Normalized).Msg("word claimed by a concurrent draw")
	}

	return nil, ErrWordsExhausted
}

// unusedCandidates returns pool words whose normalized form is not used,
// keeping the first spelling of duplicates
func unusedCandidates(pool, used []string) []*models.Word {
	seen := make(map[string]bool, len(used)+len(pool))
	for _, u := range used {
		seen[u] = true
	}

	candidates := make([]*models.Word, 0, len(pool))
	for _, raw := range pool {
		text := strings.TrimSpace(raw)
		normalized := textnorm.Normalize(text)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		candidates = append(candidates, &models.Word{
			Text:       text,
			Normalized: normalized,
		})
	}

	return candidates
}

// AddWord validates and appends a word to the session's pool
func (s *service) AddWord(ctx context.Context, input *AddWordInput) (*AddWordOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	text := strings.ToLower(strings.TrimSpace(input.Word))
	if !textnorm.IsAlphabetic(text) {
		return nil, fmt.Errorf("%w: only letters are allowed", ErrInvalidWord)
	}

	normalized := textnorm.Normalize(text)
	if textnorm.Length(normalized) < s.minWordLength {
		return nil, fmt.Errorf("%w: at least %d letters required", ErrInvalidWord, s.minWordLength)
	}

	// Seed first so an early addition does not stand in for the whole pool
	if err := s.ensureSeeded(ctx, input.SessionID); err != nil {
		log.Warn().Err(err).Str("session", input.SessionID).Msg("failed to seed word pool before adding a word")
	}

	pool, err := s.repo.GetPool(ctx, &words.GetPoolInput{SessionID: input.SessionID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	for _, existing := range pool.Words {
		if textnorm.Normalize(existing) == normalized {
			return nil, fmt.Errorf("%w: already in the pool", ErrInvalidWord)
		}
	}

	err = s.repo.AppendWord(ctx, &words.AppendWordInput{
		SessionID: input.SessionID,
		Word:      text,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return &AddWordOutput{
		Word: &models.Word{
			Text:       text,
			Normalized: normalized,
		},
	}, nil
}

// ClearUsed empties the used set
func (s *service) ClearUsed(ctx context.Context, input *ClearUsedInput) error {
	if input == nil || input.SessionID == "" {
		return ErrInvalidInput
	}

	if err := s.repo.ClearUsedWords(ctx, &words.ClearUsedWordsInput{SessionID: input.SessionID}); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}
