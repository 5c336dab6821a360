// Package render turns bar state into rectangles on a bars.Surface.
package render

import (
	"image"
	"math"
	"math/rand"

	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/palette"
)

const (
	DefaultSparkleChance = 15
	DefaultSparkleSize   = 2
	sparkleLift          = 3
)

// Sparkle is the decorative point occasionally drawn above a bar.
type Sparkle struct {
	// Chance is N in "one in N bars per frame"; 0 disables sparkles.
	Chance int
	Size   int
	Color  bars.RGB
}

type Renderer struct {
	mapper     palette.Mapper
	background bars.RGB
	sparkle    Sparkle
	rng        *rand.Rand
	degenerate int
}

type Option func(*Renderer)

func WithBackground(c bars.RGB) Option {
	return func(r *Renderer) { r.background = c }
}

func WithSparkle(s Sparkle) Option {
	return func(r *Renderer) {
		if s.Size <= 0 {
			s.Size = DefaultSparkleSize
		}
		r.sparkle = s
	}
}

// WithSeed seeds the sparkle RNG. It is separate from the amplitude RNG so
// decoration never changes the bar animation.
func WithSeed(seed int64) Option {
	return func(r *Renderer) { r.rng = rand.New(rand.NewSource(seed)) }
}

func New(mapper palette.Mapper, opts ...Option) *Renderer {
	r := &Renderer{
		mapper:     mapper,
		background: bars.Black,
		rng:        rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws one full frame and invalidates the surface once.
func (r *Renderer) Render(states []bars.State, cfg bars.Config, s bars.Surface) {
	s.Fill(s.Bounds(), r.background)

	bw := cfg.EffectiveBarWidth()
	if degenerateWidth(cfg) {
		r.degenerate++
	}
	for _, st := range states {
		rect, clamped := BarRect(st.Index, st.Current, cfg)
		if clamped {
			r.degenerate++
		}
		s.Fill(rect, r.mapper.ColorFor(st.Index, cfg.BarCount, st.Current))

		if r.sparkle.Chance > 0 && r.rng.Intn(r.sparkle.Chance) == 0 {
			x := rect.Min.X + r.rng.Intn(bw)
			y := rect.Min.Y - (r.rng.Intn(max(1, cfg.Height/10)) + sparkleLift)
			s.Fill(image.Rect(x, y, x+r.sparkle.Size, y+r.sparkle.Size), r.sparkle.Color)
		}
	}

	s.Invalidate()
}

// Degenerate counts the geometry collapses that were clamped to one pixel.
func (r *Renderer) Degenerate() int { return r.degenerate }

// BarRect returns the rectangle of bar i at the given height. The bar is at
// least one pixel tall; clamped reports whether that floor was applied.
func BarRect(i int, height float64, cfg bars.Config) (rect image.Rectangle, clamped bool) {
	bw := cfg.EffectiveBarWidth()
	h := int(math.Round(height))
	if h < 1 {
		h = 1
		clamped = true
	}
	x1 := i * (bw + cfg.Spacing)
	return image.Rect(x1, cfg.Height-h, x1+bw, cfg.Height), clamped
}

func degenerateWidth(cfg bars.Config) bool {
	return cfg.BarWidth == 0 && cfg.Width-(cfg.BarCount-1)*cfg.Spacing < cfg.BarCount
}
