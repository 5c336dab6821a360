// Package term is a full-screen terminal host built directly on tcell.
//
// It draws the same half-block pixel grid as the Bubble Tea host, but writes
// cells straight to the screen buffer instead of rendering a string per frame.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/surface"
)

// Screen is a surface that copies every completed frame to a tcell screen.
type Screen struct {
	*surface.Cells
	screen tcell.Screen
	styles map[[2]bars.RGB]tcell.Style
}

func newScreen(screen tcell.Screen, w, h int) *Screen {
	return &Screen{
		Cells:  surface.NewCells(w, h),
		screen: screen,
		styles: make(map[[2]bars.RGB]tcell.Style),
	}
}

func (s *Screen) Invalidate() {
	s.Cells.Invalidate()
	b := s.Bounds()
	for row := 0; row < s.Rows(); row++ {
		y := row * 2
		for x := 0; x < b.Dx(); x++ {
			top := s.At(x, y)
			bottom := top
			if y+1 < b.Dy() {
				bottom = s.At(x, y+1)
			}
			s.screen.SetContent(x, row, '▀', nil, s.style(top, bottom))
		}
	}
	s.screen.Show()
}

func (s *Screen) style(top, bottom bars.RGB) tcell.Style {
	k := [2]bars.RGB{top, bottom}
	if st, ok := s.styles[k]; ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(color(top)).Background(color(bottom))
	s.styles[k] = st
	return st
}

// Close restores the terminal.
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

func color(c bars.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Host initializes screen on the first CreateSurface call.
type Host struct {
	screen tcell.Screen
	init   bool
	Last   *Screen
}

func NewHost(screen tcell.Screen) *Host {
	return &Host{screen: screen}
}

func (h *Host) CreateSurface(w, ht int) (bars.Surface, error) {
	if !h.init {
		if err := h.screen.Init(); err != nil {
			return nil, err
		}
		h.screen.HideCursor()
		h.screen.Clear()
		h.init = true
	}
	h.Last = newScreen(h.screen, w, ht)
	return h.Last, nil
}
