package metrics

import (
	"math"
	"time"

	"github.com/san-kum/barviz/internal/bars"
)

// Activity is the mean distance between displayed and target heights, a
// measure of how much the smoother still has to do.
type Activity struct {
	name    string
	sum     float64
	samples int
}

func NewActivity() *Activity {
	return &Activity{
		name: "activity",
	}
}

func (a *Activity) Name() string {
	return a.name
}

func (a *Activity) Observe(states []bars.State, took time.Duration) {
	for _, s := range states {
		a.sum += math.Abs(s.Target - s.Current)
		a.samples++
	}
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *Activity) Reset() {
	a.sum = 0
	a.samples = 0
}
