package export

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/san-kum/barviz/internal/bars"
)

type rect struct {
	r image.Rectangle
	c bars.RGB
}

// SVG is a surface that keeps the last completed frame as vector rects.
type SVG struct {
	w, h    int
	scale   float64
	pending []rect
	frame   []rect
}

func NewSVG(w, h int, scale float64) *SVG {
	if scale <= 0 {
		scale = 1
	}
	return &SVG{w: w, h: h, scale: scale}
}

func (s *SVG) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

func (s *SVG) Fill(r image.Rectangle, c bars.RGB) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	s.pending = append(s.pending, rect{r, c})
}

func (s *SVG) Invalidate() {
	s.frame, s.pending = s.pending, s.frame[:0]
}

// Rects is the number of shapes in the last frame.
func (s *SVG) Rects() int { return len(s.frame) }

// String renders the last completed frame.
func (s *SVG) String() string {
	width := float64(s.w) * s.scale
	height := float64(s.h) * s.scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" shape-rendering="crispEdges">
`, width, height, width, height))

	for _, f := range s.frame {
		sb.WriteString(fmt.Sprintf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>
`, float64(f.r.Min.X)*s.scale, float64(f.r.Min.Y)*s.scale,
			float64(f.r.Dx())*s.scale, float64(f.r.Dy())*s.scale, f.c))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// SVGHost creates SVG surfaces and remembers the last one.
type SVGHost struct {
	Scale float64
	Last  *SVG
}

func (h *SVGHost) CreateSurface(w, ht int) (bars.Surface, error) {
	h.Last = NewSVG(w, ht, h.Scale)
	return h.Last, nil
}
