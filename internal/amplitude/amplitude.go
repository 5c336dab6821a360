// Package amplitude produces synthetic target heights for visualizer bars.
package amplitude

import (
	"math/rand"
	"time"

	"github.com/san-kum/barviz/internal/bars"
)

// Generator returns the next target height for bar s out of count bars.
// Results are always within the generator's [Min, Max] range.
type Generator interface {
	Generate(s bars.State, count int, elapsed time.Duration, rng *rand.Rand) float64
}

// Initializer is implemented by generators that want to seed targets at setup.
type Initializer interface {
	Init(s *bars.State, count int, rng *rand.Rand)
}

// Range is the inclusive output range shared by the generators.
type Range struct {
	Min float64
	Max float64
}

func (r Range) clamp(v float64) float64 {
	return bars.Clamp(v, r.Min, r.Max)
}
