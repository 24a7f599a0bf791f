package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix namespaces every key written by the repository
	DefaultKeyPrefix = "croc"

	// DefaultRetention keeps a day's counters around in case a report is missed
	DefaultRetention = 72 * time.Hour
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces the keys, DefaultKeyPrefix when empty
	KeyPrefix string

	// Retention is the TTL of a day's hash, DefaultRetention when zero
	Retention time.Duration
}

type redisRepository struct {
	client    *redis.Client
	keyPrefix string
	retention time.Duration
}

// NewRedis creates a new Redis-backed stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	retention := cfg.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		keyPrefix: prefix,
		retention: retention,
	}, nil
}

func (r *redisRepository) key(sessionID, date string) string {
	return fmt.Sprintf("%s:%s:stats:%s", r.keyPrefix, sessionID, date)
}

// IncrementGuesses adds one guess to a user's counter
func (r *redisRepository) IncrementGuesses(ctx context.Context, input *IncrementGuessesInput) error {
	if input == nil || input.SessionID == "" || input.Date == "" || input.UserID == "" {
		return errors.New("input, session ID, date and user ID cannot be empty")
	}

	key := r.key(input.SessionID, input.Date)

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, input.UserID, 1)
	pipe.Expire(ctx, key, r.retention)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment guesses: %w", err)
	}

	return nil
}

// GetDailyStats retrieves the counters of one day
func (r *redisRepository) GetDailyStats(ctx context.Context, input *GetDailyStatsInput) (*GetDailyStatsOutput, error) {
	if input == nil || input.SessionID == "" || input.Date == "" {
		return nil, errors.New("input, session ID and date cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, r.key(input.SessionID, input.Date)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	counts := make(map[string]int, len(raw))
	for userID, value := range raw {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse counter for %s: %w", userID, err)
		}
		counts[userID] = n
	}

	return &GetDailyStatsOutput{
		Stats: &models.DailyStats{
			SessionID: input.SessionID,
			Date:      input.Date,
			Counts:    counts,
		},
	}, nil
}

// ClearDailyStats removes the counters of one day
func (r *redisRepository) ClearDailyStats(ctx context.Context, input *ClearDailyStatsInput) error {
	if input == nil || input.SessionID == "" || input.Date == "" {
		return errors.New("input, session ID and date cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(input.SessionID, input.Date)).Err(); err != nil {
		return fmt.Errorf("failed to clear daily stats: %w", err)
	}

	return nil
}
