package adapter

import (
	"math/rand"
	"sync"
	"time"
)

// Rand defines an interface for random sampling to enable deterministic
// seeding in tests
//
//go:generate mockgen -source=random.go -destination=../mocks/random.go -package=mocks -mock_names=Rand=MockRand
type Rand interface {
	// Perm returns a uniform random permutation of [0, n)
	Perm(n int) []int
}

// RealRand implements Rand using math/rand with its own source.
// math/rand sources are not safe for concurrent use, so calls are
// serialized.
type RealRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand creates a random source seeded from the current time
func NewRand() Rand {
	return &RealRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRand creates a random source with a fixed seed
func NewSeededRand(seed int64) Rand {
	return &RealRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *RealRand) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Perm(n)
}
