package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/crocodile/internal/common/random Source

// Source picks uniformly distributed indexes
type Source interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Rand is a goroutine-safe Source backed by math/rand
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Rand{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random index in [0, n). Non-positive n yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}
