package bars

import (
	"fmt"
	"image"
	"time"
)

// State is one bar slot. Index drives both x position and gradient position.
type State struct {
	Index   int
	Target  float64
	Current float64
}

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color so RGB can be handed to image and GUI libraries.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Blue   = RGB{0, 0, 255}
	Purple = RGB{128, 0, 128}
	Red    = RGB{255, 0, 0}
)

// ColorStop marks a gradient color at a fractional position along the bars.
type ColorStop struct {
	At    float64
	Color RGB
}

// Surface is the drawing capability the renderer needs. Rectangles are
// half-open and may extend outside Bounds; implementations clip.
type Surface interface {
	Bounds() image.Rectangle
	Fill(r image.Rectangle, c RGB)
	// Invalidate requests a redraw of the whole surface.
	Invalidate()
}

// Host hands out the surface the engine draws into.
type Host interface {
	CreateSurface(width, height int) (Surface, error)
}

// HostFunc adapts a function to Host.
type HostFunc func(width, height int) (Surface, error)

func (f HostFunc) CreateSurface(width, height int) (Surface, error) {
	return f(width, height)
}

type Config struct {
	BarCount     int
	Width        int
	Height       int
	BarWidth     int // 0 derives the width from Width and BarCount
	Spacing      int
	MinHeight    float64
	MaxHeight    float64
	Smoothing    float64
	TickInterval time.Duration
}
