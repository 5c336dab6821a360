package surface

import (
	"image"
	"image/draw"

	"github.com/san-kum/barviz/internal/bars"
)

// Image is an RGBA canvas. Fills outside the bounds are clipped.
type Image struct {
	img    *image.RGBA
	frames int

	// OnInvalidate, when set, runs after every completed frame.
	OnInvalidate func(*image.RGBA)
}

func NewImage(w, h int) *Image {
	return &Image{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *Image) Bounds() image.Rectangle { return s.img.Bounds() }

func (s *Image) Fill(r image.Rectangle, c bars.RGB) {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Image) Invalidate() {
	s.frames++
	if s.OnInvalidate != nil {
		s.OnInvalidate(s.img)
	}
}

// Frames is the number of completed frames.
func (s *Image) Frames() int { return s.frames }

// RGBA exposes the backing image. It is overwritten by the next frame.
func (s *Image) RGBA() *image.RGBA { return s.img }

// At returns the pixel color at (x, y).
func (s *Image) At(x, y int) bars.RGB {
	c := s.img.RGBAAt(x, y)
	return bars.RGB{R: c.R, G: c.G, B: c.B}
}

// ImageHost creates image surfaces and remembers the last one.
type ImageHost struct {
	Last *Image
}

func (h *ImageHost) CreateSurface(w, ht int) (bars.Surface, error) {
	h.Last = NewImage(w, ht)
	return h.Last, nil
}
