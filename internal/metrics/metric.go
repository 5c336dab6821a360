// Package metrics observes the bar state after every engine tick.
package metrics

import (
	"time"

	"github.com/san-kum/barviz/internal/bars"
)

// Metric accumulates one scalar over a run. Observe must not retain states.
type Metric interface {
	Name() string
	Observe(states []bars.State, took time.Duration)
	Value() float64
	Reset()
}

// Defaults returns the metrics every engine run reports.
func Defaults(budget time.Duration) []Metric {
	return []Metric{
		NewEnergy(),
		NewPeak(),
		NewActivity(),
		NewStability(budget),
	}
}
