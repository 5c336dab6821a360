package amplitude

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/barviz/internal/bars"
)

const (
	waveWeight   = 0.7
	jitterWeight = 0.3
)

// Wave produces a sine wave that travels across the bars, roughened by jitter.
type Wave struct {
	Range
}

func NewWave(min, max float64) *Wave {
	return &Wave{Range: Range{Min: min, Max: max}}
}

func (w *Wave) Generate(s bars.State, count int, elapsed time.Duration, rng *rand.Rand) float64 {
	if count <= 0 {
		count = 1
	}
	phase := float64(s.Index)/float64(count)*2*math.Pi + elapsed.Seconds()
	base := math.Sin(phase)*0.5 + 0.5
	jitter := rng.Float64()
	return w.clamp(w.Min + (base*waveWeight+jitter*jitterWeight)*(w.Max-w.Min))
}
