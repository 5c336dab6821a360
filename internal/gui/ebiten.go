package gui

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/engine"
)

type fill struct {
	r image.Rectangle
	c bars.RGB
}

// displayList records fills for one frame. Invalidate publishes the frame
// being built so Draw always sees a complete one.
type displayList struct {
	w, h    int
	pending []fill
	shown   []fill
	frames  int
}

func (d *displayList) Bounds() image.Rectangle { return image.Rect(0, 0, d.w, d.h) }

func (d *displayList) Fill(r image.Rectangle, c bars.RGB) {
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return
	}
	d.pending = append(d.pending, fill{r, c})
}

func (d *displayList) Invalidate() {
	d.shown, d.pending = d.pending, d.shown[:0]
	d.frames++
}

type ebitenGame struct {
	eng   *engine.Engine
	list  *displayList
	scale int
	fps   bool
}

func (g *ebitenGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.eng.Tick()
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	s := float32(g.scale)
	for _, f := range g.list.shown {
		vector.DrawFilledRect(screen, float32(f.r.Min.X)*s, float32(f.r.Min.Y)*s,
			float32(f.r.Dx())*s, float32(f.r.Dy())*s, f.c, false)
	}
	if g.fps {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("fps %.0f", ebiten.ActualFPS()))
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.list.w * g.scale, g.list.h * g.scale
}

// RunEbiten opens a window and ticks eng once per ebiten update.
func RunEbiten(eng *engine.Engine, cfg bars.Config, opts Options) error {
	list := &displayList{}
	host := bars.HostFunc(func(w, h int) (bars.Surface, error) {
		list.w, list.h = w, h
		return list, nil
	})
	if err := eng.Setup(host, cfg); err != nil {
		return err
	}
	defer eng.Close()

	scale := opts.scale()
	fps := framesPerSecond(cfg.TickInterval)
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(fps)
	log.Printf("ebiten: %dx%d at %d tps", cfg.Width*scale, cfg.Height*scale, fps)

	err := ebiten.RunGame(&ebitenGame{eng: eng, list: list, scale: scale, fps: opts.ShowFPS})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
