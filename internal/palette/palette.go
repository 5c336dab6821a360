// Package palette maps bar position and height to draw colors.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/barviz/internal/bars"
)

// Mapper picks the fill color for a bar.
type Mapper interface {
	ColorFor(index, count int, height float64) bars.RGB
}

// Gradient splits the bars into contiguous segments, one per pair of
// adjacent stops. The first bar of a segment gets exactly the segment's start
// color and the last bar exactly its end color.
type Gradient struct {
	Stops []bars.ColorStop
	// Stepped paints each segment a solid band of its start color.
	Stepped bool
	// Highlight, when set, overrides the positional color of tall bars.
	Highlight *Highlight
}

// Highlight brightens bars taller than Threshold from Base toward white.
type Highlight struct {
	Threshold float64
	Base      bars.RGB
	Gain      float64
}

func NewGradient(stops ...bars.ColorStop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, &bars.ConfigError{Field: "palette.stops", Reason: fmt.Sprintf("need at least 2 stops, got %d", len(stops))}
	}
	if stops[0].At != 0 || stops[len(stops)-1].At != 1 {
		return nil, &bars.ConfigError{Field: "palette.stops", Reason: "must start at 0 and end at 1"}
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].At < stops[i-1].At {
			return nil, &bars.ConfigError{Field: "palette.stops", Reason: fmt.Sprintf("stop %d at %.3f is before stop %d", i, stops[i].At, i-1)}
		}
	}
	return &Gradient{Stops: stops}, nil
}

func (g *Gradient) ColorFor(index, count int, height float64) bars.RGB {
	if g.Highlight != nil && height > g.Highlight.Threshold {
		return g.Highlight.colorFor(height)
	}
	return g.positional(index, count)
}

func (g *Gradient) positional(index, count int) bars.RGB {
	if count <= 0 {
		return g.Stops[0].Color
	}
	last := len(g.Stops) - 2
	for k := 0; k <= last; k++ {
		start := segmentEdge(g.Stops[k].At, count)
		end := segmentEdge(g.Stops[k+1].At, count)
		if k == last {
			end = count
		}
		if index < start || index >= end {
			continue
		}
		if g.Stepped {
			return g.Stops[k].Color
		}
		t := 0.0
		if n := end - start; n > 1 {
			t = float64(index-start) / float64(n-1)
		}
		return Mix(g.Stops[k].Color, g.Stops[k+1].Color, t)
	}
	if index < 0 {
		return g.Stops[0].Color
	}
	return g.Stops[len(g.Stops)-1].Color
}

// segmentEdge is the first index i with i >= at*count.
func segmentEdge(at float64, count int) int {
	return int(math.Ceil(at * float64(count)))
}

func (h *Highlight) colorFor(height float64) bars.RGB {
	gain := h.Gain
	if gain <= 0 {
		gain = 1
	}
	return Mix(h.Base, bars.White, clamp01((height-h.Threshold)*gain/255))
}

// Mix blends a toward b linearly per channel; t is clamped to [0, 1].
func Mix(a, b bars.RGB, t float64) bars.RGB {
	r, g, bl := toColorful(a).BlendRgb(toColorful(b), clamp01(t)).RGB255()
	return bars.RGB{R: r, G: g, B: bl}
}

// ParseHex accepts "#rrggbb" and "#rgb".
func ParseHex(s string) (bars.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return bars.RGB{}, fmt.Errorf("palette: bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return bars.RGB{R: r, G: g, B: b}, nil
}

func toColorful(c bars.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
