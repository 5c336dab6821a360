package surface

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Recorder collects paletted frames for an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	delay  int
}

// NewRecorder records frames shown for the given interval each.
func NewRecorder(interval time.Duration) *Recorder {
	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}
	return &Recorder{delay: delay}
}

// Capture appends a copy of img. It fits OnInvalidate directly.
func (r *Recorder) Capture(img *image.RGBA) {
	p := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.Draw(p, p.Bounds(), img, img.Bounds().Min, draw.Src)
	r.frames = append(r.frames, p)
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) EncodeGIF(w io.Writer) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Save writes img as PNG, or rec as GIF, depending on the extension of path.
func Save(path string, img image.Image, rec *Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		if rec == nil {
			return fmt.Errorf("gif output needs recorded frames")
		}
		err = rec.EncodeGIF(f)
	case ".png":
		err = EncodePNG(f, img)
	default:
		err = fmt.Errorf("unsupported output format: %s", path)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
