package amplitude

import (
	"math/rand"
	"time"

	"github.com/san-kum/barviz/internal/bars"
)

// RandomWalk moves each target by a uniform step in [-Jitter, +Jitter].
type RandomWalk struct {
	Range
	Jitter float64
}

func NewRandomWalk(min, max, jitter float64) *RandomWalk {
	return &RandomWalk{Range: Range{Min: min, Max: max}, Jitter: jitter}
}

func (w *RandomWalk) Generate(s bars.State, count int, elapsed time.Duration, rng *rand.Rand) float64 {
	step := (rng.Float64()*2 - 1) * w.Jitter
	return w.clamp(s.Target + step)
}

// Init starts every bar somewhere in the upper half of the range.
func (w *RandomWalk) Init(s *bars.State, count int, rng *rand.Rand) {
	mid := w.Min + (w.Max-w.Min)/2
	s.Target = w.clamp(mid + rng.Float64()*(w.Max-mid))
}
