// Package smoothing eases displayed bar heights toward their targets.
package smoothing

import "math"

// Smoother advances bar i's displayed height one tick toward target.
type Smoother interface {
	// Reset prepares per-bar state for n bars.
	Reset(n int)
	Step(i int, current, target float64) float64
}

// Advance moves current a fraction of the way toward target. With factor in
// (0, 1] it never overshoots, and factor 1 snaps straight to target.
func Advance(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// StepsToConverge returns how many Advance calls bring h0 within eps of
// target. It returns 0 when h0 is already close enough and -1 when factor
// cannot converge.
func StepsToConverge(h0, target, factor, eps float64) int {
	dist := math.Abs(target - h0)
	if dist <= eps {
		return 0
	}
	if factor >= 1 {
		return 1
	}
	if factor <= 0 || eps <= 0 {
		return -1
	}
	// dist * (1-factor)^n <= eps
	return int(math.Ceil(math.Log(eps/dist) / math.Log(1-factor)))
}

// Exponential is the stateless smoother built on Advance.
type Exponential struct {
	Factor float64
}

func NewExponential(factor float64) *Exponential {
	return &Exponential{Factor: factor}
}

func (e *Exponential) Reset(int) {}

func (e *Exponential) Step(_ int, current, target float64) float64 {
	return Advance(current, target, e.Factor)
}
