// Package dice provides the uniform random source for die rolls.
package dice

import (
	"math/rand"
	"time"
)

// Roller draws uniform die faces from its own random source, so game
// sessions never share process-wide RNG state.
type Roller struct {
	random *rand.Rand
}

// Config for a roller.
type Config struct {
	// Seed fixes the random sequence. Zero means seed from the clock.
	Seed int64
}

// New creates a roller. A nil config seeds from the current time.
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	return &Roller{random: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform value in [1, sides].
func (r *Roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6
	}
	return r.random.Intn(sides) + 1
}
