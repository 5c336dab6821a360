package gui

import (
	"fmt"
	"image"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/engine"
)

var colBg = rl.NewColor(10, 10, 10, 255)

// Options shared by both backends.
type Options struct {
	Title string
	Scale int
	// ShowFPS overlays the frame rate.
	ShowFPS bool
}

func (o Options) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

// raylibSurface draws into the current raylib frame. It must only be used
// between BeginDrawing and EndDrawing.
type raylibSurface struct {
	w, h   int
	scale  int32
	frames int
}

func (s *raylibSurface) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

func (s *raylibSurface) Fill(r image.Rectangle, c bars.RGB) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	rl.DrawRectangle(int32(r.Min.X)*s.scale, int32(r.Min.Y)*s.scale,
		int32(r.Dx())*s.scale, int32(r.Dy())*s.scale, rl.NewColor(c.R, c.G, c.B, 255))
}

func (s *raylibSurface) Invalidate() { s.frames++ }

// Close shuts the window down.
func (s *raylibSurface) Close() error {
	if rl.IsWindowReady() {
		rl.CloseWindow()
	}
	return nil
}

type raylibHost struct {
	opts Options
}

func (h *raylibHost) CreateSurface(w, ht int) (bars.Surface, error) {
	scale := h.opts.scale()
	rl.InitWindow(int32(w*scale), int32(ht*scale), h.opts.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("raylib: window did not open")
	}
	return &raylibSurface{w: w, h: ht, scale: int32(scale)}, nil
}

// RunRaylib opens a window and ticks eng once per frame until it is closed.
func RunRaylib(eng *engine.Engine, cfg bars.Config, opts Options) error {
	if err := eng.Setup(&raylibHost{opts: opts}, cfg); err != nil {
		return err
	}
	defer eng.Close()

	fps := framesPerSecond(cfg.TickInterval)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(rl.KeyEscape)
	log.Printf("raylib: %dx%d at %d fps", cfg.Width*opts.scale(), cfg.Height*opts.scale(), fps)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		rl.BeginDrawing()
		rl.ClearBackground(colBg)
		eng.Tick()
		if opts.ShowFPS {
			rl.DrawFPS(10, 10)
		}
		rl.EndDrawing()
	}
	return nil
}

func framesPerSecond(tick time.Duration) int {
	fps := int(time.Second / tick)
	if fps < 1 {
		return 1
	}
	return fps
}
