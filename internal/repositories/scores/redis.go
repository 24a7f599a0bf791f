package scores

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix namespaces every key written by the repository
	DefaultKeyPrefix = "croc"

	scoresKeySuffix = "scores"
	namesKeySuffix  = "names"
)

// addPointsScript applies the delta, floors penalties at zero and records the
// name in one atomic step. Penalties never create a record.
//
// KEYS[1] scores hash, KEYS[2] names hash
// ARGV[1] user id, ARGV[2] delta, ARGV[3] display name
// returns {previous, points, created}
var addPointsScript = redis.NewScript(`
local delta = tonumber(ARGV[2])
local exists = redis.call('HEXISTS', KEYS[1], ARGV[1])
if delta < 0 and exists == 0 then
  return {0, 0, 0}
end
local points = redis.call('HINCRBY', KEYS[1], ARGV[1], delta)
local previous = points - delta
if delta < 0 and points < 0 then
  redis.call('HSET', KEYS[1], ARGV[1], 0)
  points = 0
end
if ARGV[3] ~= '' then
  redis.call('HSET', KEYS[2], ARGV[1], ARGV[3])
end
local created = 0
if exists == 0 then
  created = 1
end
return {previous, points, created}
`)

// Config holds configuration for the Redis score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces the keys, DefaultKeyPrefix when empty
	KeyPrefix string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedis creates a new Redis-backed score repository
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

	return &redisRepository{
		client:    cfg.RedisClient,
		keyPrefix: prefix,
	}, nil
}

func (r *redisRepository) key(sessionID, suffix string) string {
	return fmt.Sprintf("%s:%s:%s", r.keyPrefix, sessionID, suffix)
}

// AddPoints applies a delta to a player's total
func (r *redisRepository) AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	result, err := addPointsScript.Run(ctx, r.client,
		[]string{r.key(input.SessionID, scoresKeySuffix), r.key(input.SessionID, namesKeySuffix)},
		input.UserID, input.Delta, input.DisplayName,
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to add points: %w", err)
	}

	if len(result) != 3 {
		return nil, fmt.Errorf("unexpected add points result: %v", result)
	}

	return &AddPointsOutput{
		Previous: int(result[0]),
		Points:   int(result[1]),
		Created:  result[2] == 1,
	}, nil
}

// GetScores retrieves every score record of a session
func (r *redisRepository) GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pointsCmd := pipe.HGetAll(ctx, r.key(input.SessionID, scoresKeySuffix))
	namesCmd := pipe.HGetAll(ctx, r.key(input.SessionID, namesKeySuffix))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	points := pointsCmd.Val()
	names := namesCmd.Val()

	records := make([]*models.ScoreRecord, 0, len(points))
	for userID, raw := range points {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse score for %s: %w", userID, err)
		}

		records = append(records, &models.ScoreRecord{
			UserID:      userID,
			Points:      value,
			DisplayName: names[userID],
		})
	}

	return &GetScoresOutput{
		Records: records,
	}, nil
}

// ClearScores removes every score record of a session
func (r *redisRepository) ClearScores(ctx context.Context, input *ClearScoresInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	err := r.client.Del(ctx,
		r.key(input.SessionID, scoresKeySuffix),
		r.key(input.SessionID, namesKeySuffix),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to clear scores: %w", err)
	}

	return nil
}
