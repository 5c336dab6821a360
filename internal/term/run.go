package term

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/engine"
)

// Run ticks eng on a tcell screen until Esc, Q, Ctrl+C or a termination
// signal.
func Run(eng *engine.Engine, cfg bars.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	return run(screen, eng, cfg, 0)
}

// run stops on its own after limit ticks when limit is positive.
func run(screen tcell.Screen, eng *engine.Engine, cfg bars.Config, limit int) error {
	if err := eng.Setup(NewHost(screen), cfg); err != nil {
		return err
	}
	defer eng.Close()

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	eventCh := make(chan tcell.Event, 32)
	quitEventLoop := make(chan struct{})
	defer close(quitEventLoop)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-quitEventLoop:
				return
			}
		}
	}()

	for {
		select {
		case <-sigCh:
			return nil
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			eng.Tick()
			if limit > 0 && eng.Ticks() >= limit {
				return nil
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
