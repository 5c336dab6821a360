package bars

import (
	"math"
	"time"
)

const DefaultTickInterval = 20 * time.Millisecond

// Validate reports the first violated invariant as a *ConfigError.
func (c Config) Validate() error {
	switch {
	case c.BarCount <= 0:
		return invalid("bar_count", "must be positive, got %d", c.BarCount)
	case c.Width <= 0:
		return invalid("width", "must be positive, got %d", c.Width)
	case c.Height <= 0:
		return invalid("height", "must be positive, got %d", c.Height)
	case c.BarWidth < 0:
		return invalid("bar_width", "must not be negative, got %d", c.BarWidth)
	case c.Spacing < 0:
		return invalid("spacing", "must not be negative, got %d", c.Spacing)
	case isBad(c.MinHeight) || c.MinHeight < 0:
		return invalid("min_height", "must be a non-negative number, got %v", c.MinHeight)
	case isBad(c.MaxHeight) || c.MaxHeight < c.MinHeight:
		return invalid("max_height", "must be >= min_height (%v), got %v", c.MinHeight, c.MaxHeight)
	case c.MaxHeight > float64(c.Height):
		return invalid("max_height", "must be <= height (%d), got %v", c.Height, c.MaxHeight)
	case isBad(c.Smoothing) || c.Smoothing <= 0 || c.Smoothing > 1:
		return invalid("smoothing_factor", "must be in (0, 1], got %v", c.Smoothing)
	case c.TickInterval <= 0:
		return invalid("tick_interval", "must be positive, got %v", c.TickInterval)
	}
	return nil
}

// EffectiveBarWidth returns BarWidth, or the width that fits BarCount bars and
// their spacing into Width. Never less than one pixel.
func (c Config) EffectiveBarWidth() int {
	w := c.BarWidth
	if w <= 0 && c.BarCount > 0 {
		w = (c.Width - (c.BarCount-1)*c.Spacing) / c.BarCount
	}
	if w < 1 {
		w = 1
	}
	return w
}

// BarX returns the left edge of bar i.
func (c Config) BarX(i int) int {
	return i * (c.EffectiveBarWidth() + c.Spacing)
}

// Clamp bounds v to [MinHeight, MaxHeight].
func (c Config) Clamp(v float64) float64 {
	return Clamp(v, c.MinHeight, c.MaxHeight)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
