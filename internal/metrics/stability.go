package metrics

import (
	"time"

	"github.com/san-kum/barviz/internal/bars"
)

// Stability is the fraction of ticks that finished within the tick budget.
type Stability struct {
	name       string
	budget     time.Duration
	violations int
	samples    int
	worst      time.Duration
}

func NewStability(budget time.Duration) *Stability {
	return &Stability{
		name:   "stability",
		budget: budget,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(states []bars.State, took time.Duration) {
	s.samples++
	if took > s.worst {
		s.worst = took
	}
	if s.budget > 0 && took > s.budget {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

// Worst is the slowest tick observed.
func (s *Stability) Worst() time.Duration { return s.worst }

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
	s.worst = 0
}
