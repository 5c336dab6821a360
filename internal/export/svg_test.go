package export

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/san-kum/barviz/internal/bars"
)

func TestSVG(t *testing.T) {
	s := NewSVG(10, 5, 2)
	s.Fill(s.Bounds(), bars.Black)
	s.Fill(image.Rect(1, 2, 3, 5), bars.Red)
	s.Fill(image.Rect(20, 20, 30, 30), bars.White)

	if s.Rects() != 0 {
		t.Errorf("expected nothing before invalidate, got %d", s.Rects())
	}
	s.Invalidate()
	if s.Rects() != 2 {
		t.Fatalf("expected 2 rects, got %d", s.Rects())
	}

	out := s.String()
	if !strings.Contains(out, `width="20" height="10"`) {
		t.Error("expected scaled canvas size")
	}
	if !strings.Contains(out, `<rect x="2" y="4" width="4" height="6" fill="#ff0000"/>`) {
		t.Errorf("expected scaled red bar, got:\n%s", out)
	}
	if strings.Contains(out, "#ffffff") {
		t.Error("expected off-canvas fill to be dropped")
	}
}

func TestSVG_KeepsLastFrame(t *testing.T) {
	s := NewSVG(4, 4, 0)
	s.Fill(s.Bounds(), bars.Blue)
	s.Invalidate()
	s.Fill(s.Bounds(), bars.Red)

	if strings.Contains(s.String(), "#ff0000") {
		t.Error("expected the unfinished frame to stay hidden")
	}

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if int(n) != buf.Len() || !strings.Contains(buf.String(), "#0000ff") {
		t.Error("expected the completed blue frame")
	}
}

func TestSVGHost(t *testing.T) {
	h := &SVGHost{Scale: 3}
	surf, err := h.CreateSurface(7, 2)
	if err != nil {
		t.Fatal(err)
	}
	if surf.Bounds() != image.Rect(0, 0, 7, 2) || h.Last.scale != 3 {
		t.Errorf("unexpected surface %v scale %v", surf.Bounds(), h.Last.scale)
	}
}
