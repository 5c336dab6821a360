package amplitude

import (
	"math/rand"
	"time"

	"github.com/san-kum/barviz/internal/bars"
)

// Constant pins every target to one value.
type Constant struct {
	Range
	Value float64
}

func NewConstant(min, max, value float64) *Constant {
	return &Constant{Range: Range{Min: min, Max: max}, Value: value}
}

func (c *Constant) Generate(bars.State, int, time.Duration, *rand.Rand) float64 {
	return c.clamp(c.Value)
}
