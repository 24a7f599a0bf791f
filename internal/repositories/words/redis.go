package words

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix namespaces every key written by the repository
	DefaultKeyPrefix = "croc"

	poolKeySuffix   = "pool"
	usedKeySuffix   = "used"
	seededKeySuffix = "seeded"
)

// Config holds configuration for the Redis word repository
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

// NewRedis creates a new Redis-backed word repository
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

// GetPool retrieves the ordered word pool for a session
func (r *redisRepository) GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	words, err := r.client.LRange(ctx, r.key(input.SessionID, poolKeySuffix), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get word pool: %w", err)
	}

	return &GetPoolOutput{
		Words: words,
	}, nil
}

// AppendWord appends a word to the end of a session's pool
func (r *redisRepository) AppendWord(ctx context.Context, input *AppendWordInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if input.Word == "" {
		return errors.New("word cannot be empty")
	}

	if err := r.client.RPush(ctx, r.key(input.SessionID, poolKeySuffix), input.Word).Err(); err != nil {
		return fmt.Errorf("failed to append word: %w", err)
	}

	return nil
}

// SeedPool merges the seed words into the pool once per session. The
// seeded flag is watched so concurrent seeders cannot both write, and words
// appended before the first seed are kept.
func (r *redisRepository) SeedPool(ctx context.Context, input *SeedPoolInput) (*SeedPoolOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if len(input.Words) == 0 {
		return &SeedPoolOutput{}, nil
	}

	poolKey := r.key(input.SessionID, poolKeySuffix)
	seededKey := r.key(input.SessionID, seededKeySuffix)
	seeded := 0

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		done, err := tx.Exists(ctx, seededKey).Result()
		if err != nil {
			return err
		}
		if done > 0 {
			return nil
		}

		existing, err := tx.LRange(ctx, poolKey, 0, -1).Result()
		if err != nil {
			return err
		}

		values := missingWords(existing, input.Words)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(values) > 0 {
				pipe.RPush(ctx, poolKey, values...)
			}
			pipe.Set(ctx, seededKey, "1", 0)
			return nil
		})
		if err != nil {
			return err
		}
		seeded = len(values)
		return nil
	}, seededKey)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			// someone else seeded first
			return &SeedPoolOutput{}, nil
		}
		return nil, fmt.Errorf("failed to seed word pool: %w", err)
	}

	return &SeedPoolOutput{
		Seeded: seeded,
	}, nil
}

// missingWords returns the seed words not already in the pool, in order
func missingWords(pool, seed []string) []interface{} {
	present := make(map[string]bool, len(pool)+len(seed))
	for _, w := range pool {
		present[w] = true
	}

	values := make([]interface{}, 0, len(seed))
	for _, w := range seed {
		if w == "" || present[w] {
			continue
		}
		present[w] = true
		values = append(values, w)
	}
	return values
}

// GetUsedWords retrieves the normalized words already dealt in a session
func (r *redisRepository) GetUsedWords(ctx context.Context, input *GetUsedWordsInput) (*GetUsedWordsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	words, err := r.client.SMembers(ctx, r.key(input.SessionID, usedKeySuffix)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get used words: %w", err)
	}

	return &GetUsedWordsOutput{
		Words: words,
	}, nil
}

// MarkUsed adds a normalized word to the used set. SADD is the atomic
// check-and-insert: only one caller ever sees Added for a given word.
func (r *redisRepository) MarkUsed(ctx context.Context, input *MarkUsedInput) (*MarkUsedOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if input.Word == "" {
		return nil, errors.New("word cannot be empty")
	}

	added, err := r.client.SAdd(ctx, r.key(input.SessionID, usedKeySuffix), input.Word).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mark word used: %w", err)
	}

	return &MarkUsedOutput{
		Added: added == 1,
	}, nil
}

// ClearUsedWords empties the used set of a session
func (r *redisRepository) ClearUsedWords(ctx context.Context, input *ClearUsedWordsInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(input.SessionID, usedKeySuffix)).Err(); err != nil {
		return fmt.Errorf("failed to clear used words: %w", err)
	}

	return nil
}
