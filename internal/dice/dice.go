package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/ludo/internal/dice Roller

// Sides is the number of faces on a Ludo die
const Sides = 6

// Roller rolls a die
type Roller interface {
	// Roll returns a uniform value in [1, Sides]
	Roll() int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// random is safe for concurrent use; rooms roll from many goroutines
type random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &random{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random roll of a six sided die
func (r *random) Roll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(Sides) + 1
}
