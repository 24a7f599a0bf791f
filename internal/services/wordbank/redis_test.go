package wordbank

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/crocodile/internal/common/random"
	"github.com/KirkDiggler/crocodile/internal/repositories/words"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RedisWordBankTestSuite runs the word bank against a real words repository
type RedisWordBankTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	bank   Service
	ctx    context.Context
}

func (s *RedisWordBankTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	repo, err := words.NewRedis(&words.Config{RedisClient: s.client, KeyPrefix: "test"})
	s.Require().NoError(err)

	bank, err := New(&Config{
		Repo:      repo,
		Random:    random.New(&random.Config{Seed: 42}),
		SeedWords: []string{"apple", "pear"},
	})
	s.Require().NoError(err)
	s.bank = bank
	s.ctx = context.Background()
}

func (s *RedisWordBankTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisWordBankTestSuite(t *testing.T) {
	suite.Run(t, new(RedisWordBankTestSuite))
}

func (s *RedisWordBankTestSuite) draw() (string, error) {
	pool, err := s.bank.LoadPool(s.ctx, &LoadPoolInput{SessionID: "chan-1"})
	s.Require().NoError(err)

	output, err := s.bank.DrawUnused(s.ctx, &DrawUnusedInput{SessionID: "chan-1", Pool: pool.Words})
	if err != nil {
		return "", err
	}
	return output.Word.Normalized, nil
}

func (s *RedisWordBankTestSuite) TestNoRepeatUntilCleared() {
	first, err := s.draw()
	s.Require().NoError(err)
	s.Contains([]string{"apple", "pear"}, first)

	members, err := s.mr.Members("test:chan-1:used")
	s.Require().NoError(err)
	s.Equal([]string{first}, members)

	second, err := s.draw()
	s.Require().NoError(err)
	s.NotEqual(first, second)

	_, err = s.draw()
	s.ErrorIs(err, ErrWordsExhausted)

	s.Require().NoError(s.bank.ClearUsed(s.ctx, &ClearUsedInput{SessionID: "chan-1"}))

	_, err = s.draw()
	s.NoError(err)
}

func (s *RedisWordBankTestSuite) TestAddedWordBecomesDrawable() {
	// Seed the pool
	_, err := s.draw()
	s.Require().NoError(err)
	_, err = s.draw()
	s.Require().NoError(err)

	_, err = s.bank.AddWord(s.ctx, &AddWordInput{SessionID: "chan-1", Word: "Plum"})
	s.Require().NoError(err)

	word, err := s.draw()
	s.Require().NoError(err)
	s.Equal("plum", word)
}

func (s *RedisWordBankTestSuite) TestAddWordBeforeFirstLoadKeepsSeedWords() {
	_, err := s.bank.AddWord(s.ctx, &AddWordInput{SessionID: "chan-1", Word: "жираф"})
	s.Require().NoError(err)

	pool, err := s.bank.LoadPool(s.ctx, &LoadPoolInput{SessionID: "chan-1"})
	s.Require().NoError(err)
	s.False(pool.Fallback)
	s.ElementsMatch([]string{"apple", "pear", "жираф"}, pool.Words)

	drawn := make(map[string]bool)
	for range 3 {
		word, err := s.draw()
		s.Require().NoError(err)
		drawn[word] = true
	}
	s.Len(drawn, 3)

	_, err = s.draw()
	s.ErrorIs(err, ErrWordsExhausted)
}

func (s *RedisWordBankTestSuite) TestConcurrentDrawsNeverRepeat() {
	const n = 20

	pool := make([]string, n)
	for i := range pool {
		pool[i] = fmt.Sprintf("word%c", 'a'+i)
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		drawn = make(map[string]int)
		errs  []error
	)

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output, err := s.bank.DrawUnused(s.ctx, &DrawUnusedInput{SessionID: "chan-race", Pool: pool})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			drawn[output.Word.Normalized]++
		}()
	}
	wg.Wait()

	s.Empty(errs)
	s.Len(drawn, n)
	for word, count := range drawn {
		s.Equal(1, count, word)
	}

	members, err := s.mr.Members("test:chan-race:used")
	s.Require().NoError(err)
	s.Len(members, n)

	_, err = s.bank.DrawUnused(s.ctx, &DrawUnusedInput{SessionID: "chan-race", Pool: pool})
	s.ErrorIs(err, ErrWordsExhausted)
}
