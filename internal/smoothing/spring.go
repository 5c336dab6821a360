package smoothing

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/barviz/internal/bars"
)

// Spring drives each bar with a damped harmonic spring. Under-damped springs
// overshoot, so the output is clamped to [Min, Max].
type Spring struct {
	Min, Max float64

	spring harmonica.Spring
	vel    []float64
}

func NewSpring(tick time.Duration, frequency, damping, min, max float64) *Spring {
	return &Spring{
		Min:    min,
		Max:    max,
		spring: harmonica.NewSpring(tick.Seconds(), frequency, damping),
	}
}

func (s *Spring) Reset(n int) {
	if cap(s.vel) >= n {
		s.vel = s.vel[:n]
		clear(s.vel)
		return
	}
	s.vel = make([]float64, n)
}

func (s *Spring) Step(i int, current, target float64) float64 {
	if i >= len(s.vel) {
		return bars.Clamp(target, s.Min, s.Max)
	}
	pos, vel := s.spring.Update(current, s.vel[i], target)
	if pos < s.Min || pos > s.Max {
		vel = 0
	}
	s.vel[i] = vel
	return bars.Clamp(pos, s.Min, s.Max)
}
