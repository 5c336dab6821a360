package surface

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/barviz/internal/bars"
)

const halfBlock = "▀"

type cellKey struct{ top, bottom bars.RGB }

// Cells is a pixel grid shown in a terminal. Every text cell prints two
// vertically stacked pixels: the top one as the foreground of "▀" and the
// bottom one as its background.
type Cells struct {
	w, h   int
	pix    []bars.RGB
	styles map[cellKey]lipgloss.Style
	frames int
}

func NewCells(w, h int) *Cells {
	return &Cells{
		w:      w,
		h:      h,
		pix:    make([]bars.RGB, w*h),
		styles: make(map[cellKey]lipgloss.Style),
	}
}

func (c *Cells) Bounds() image.Rectangle { return image.Rect(0, 0, c.w, c.h) }

func (c *Cells) Fill(r image.Rectangle, col bars.RGB) {
	r = r.Intersect(c.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.pix[y*c.w : (y+1)*c.w]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = col
		}
	}
}

func (c *Cells) Invalidate() { c.frames++ }

func (c *Cells) Frames() int { return c.frames }

func (c *Cells) At(x, y int) bars.RGB { return c.pix[y*c.w+x] }

// Rows is the number of text lines String produces.
func (c *Cells) Rows() int { return (c.h + 1) / 2 }

func (c *Cells) String() string {
	var b strings.Builder
	for row := 0; row < c.Rows(); row++ {
		y := row * 2
		for x := 0; x < c.w; x++ {
			top := c.pix[y*c.w+x]
			bottom := top
			if y+1 < c.h {
				bottom = c.pix[(y+1)*c.w+x]
			}
			b.WriteString(c.style(top, bottom).Render(halfBlock))
		}
		if row < c.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Cells) style(top, bottom bars.RGB) lipgloss.Style {
	k := cellKey{top, bottom}
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(top.String())).
		Background(lipgloss.Color(bottom.String()))
	c.styles[k] = s
	return s
}

// CellsHost creates terminal surfaces and remembers the last one.
type CellsHost struct {
	Last *Cells
}

func (h *CellsHost) CreateSurface(w, ht int) (bars.Surface, error) {
	h.Last = NewCells(w, ht)
	return h.Last, nil
}
