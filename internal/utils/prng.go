// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so runs with the same seed
// produce the same receiver walk.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator. A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Nudge picks one movement command: a single axis step of the given size
// or no move at all.
func (s *PRNGService) Nudge(step float64) (dx, dy float64) {
	switch s.Intn(5) {
	case 0:
		return -step, 0
	case 1:
		return step, 0
	case 2:
		return 0, -step
	case 3:
		return 0, step
	}
	return 0, 0
}
