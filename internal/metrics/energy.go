package metrics

import (
	"time"

	"github.com/san-kum/barviz/internal/bars"
)

// Energy is the mean displayed bar height averaged over all ticks.
type Energy struct {
	name    string
	total   float64
	last    float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(states []bars.State, took time.Duration) {
	if len(states) == 0 {
		return
	}
	sum := 0.0
	for _, s := range states {
		sum += s.Current
	}
	e.last = sum / float64(len(states))
	e.total += e.last
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// Last is the mean height of the most recent tick.
func (e *Energy) Last() float64 { return e.last }

func (e *Energy) Reset() {
	e.total = 0
	e.last = 0
	e.samples = 0
}

// Peak is the tallest displayed height seen.
type Peak struct {
	name string
	max  float64
	seen bool
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(states []bars.State, took time.Duration) {
	for _, s := range states {
		if !p.seen || s.Current > p.max {
			p.max = s.Current
			p.seen = true
		}
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() {
	p.max = 0
	p.seen = false
}
