package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/san-kum/barviz/internal/amplitude"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/metrics"
	"github.com/san-kum/barviz/internal/render"
	"github.com/san-kum/barviz/internal/smoothing"
)

type Engine struct {
	gen      amplitude.Generator
	smoother smoothing.Smoother
	renderer *render.Renderer
	metrics  []metrics.Metric

	seed    int64
	clock   func() time.Time
	rng     *rand.Rand
	started time.Time

	cfg     bars.Config
	states  []bars.State
	surface bars.Surface
	running bool
	ticks   int
}

type Option func(*Engine)

// WithSeed makes the amplitude sequence reproducible. Every Setup reseeds.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithClock replaces time.Now as the source of elapsed animation time.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

func WithMetric(m ...metrics.Metric) Option {
	return func(e *Engine) { e.metrics = append(e.metrics, m...) }
}

func New(gen amplitude.Generator, smoother smoothing.Smoother, renderer *render.Renderer, opts ...Option) *Engine {
	e := &Engine{
		gen:      gen,
		smoother: smoother,
		renderer: renderer,
		seed:     time.Now().UnixNano(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Setup validates cfg, requests a surface from host and starts the engine.
// On error the engine keeps whatever state it had before the call, except
// that a failure to close a replaced surface is reported after the engine
// has already switched to the new one.
func (e *Engine) Setup(host bars.Host, cfg bars.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if host == nil {
		return fmt.Errorf("%w: no host", bars.ErrSurfaceUnavailable)
	}
	surface, err := host.CreateSurface(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("%w: %v", bars.ErrSurfaceUnavailable, err)
	}
	if surface == nil {
		return fmt.Errorf("%w: host returned no surface", bars.ErrSurfaceUnavailable)
	}
	old := e.surface

	n := cfg.BarCount
	if cap(e.states) >= n {
		e.states = e.states[:n]
	} else {
		e.states = make([]bars.State, n)
	}

	e.rng = rand.New(rand.NewSource(e.seed))
	seeder, seeds := e.gen.(amplitude.Initializer)
	for i := range e.states {
		e.states[i] = bars.State{Index: i, Target: cfg.MinHeight, Current: cfg.MinHeight}
		if seeds {
			seeder.Init(&e.states[i], n, e.rng)
			e.states[i].Target = cfg.Clamp(e.states[i].Target)
		}
	}

	e.smoother.Reset(n)
	for _, m := range e.metrics {
		m.Reset()
	}

	e.cfg = cfg
	e.surface = surface
	e.started = e.clock()
	e.ticks = 0
	e.running = true

	if c, ok := old.(io.Closer); ok && old != surface {
		if err := c.Close(); err != nil {
			return fmt.Errorf("release surface: %w", err)
		}
	}
	return nil
}

// Tick advances every bar one step and redraws. It is a no-op until Setup
// succeeds.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	start := time.Now()
	elapsed := e.clock().Sub(e.started)

	n := len(e.states)
	for i := range e.states {
		s := &e.states[i]
		s.Target = e.cfg.Clamp(e.gen.Generate(*s, n, elapsed, e.rng))
		s.Current = e.smoother.Step(i, s.Current, s.Target)
	}

	e.renderer.Render(e.states, e.cfg, e.surface)
	e.ticks++

	took := time.Since(start)
	for _, m := range e.metrics {
		m.Observe(e.states, took)
	}
}

// Close releases the surface and returns the engine to Uninitialized.
func (e *Engine) Close() error {
	e.running = false
	e.states = nil
	return e.releaseSurface()
}

func (e *Engine) releaseSurface() error {
	s := e.surface
	e.surface = nil
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (e *Engine) Running() bool { return e.running }

// Bars exposes the live bar array. Callers must not modify it.
func (e *Engine) Bars() []bars.State { return e.states }

func (e *Engine) Config() bars.Config { return e.cfg }

func (e *Engine) Surface() bars.Surface { return e.surface }

func (e *Engine) Ticks() int { return e.ticks }

func (e *Engine) Renderer() *render.Renderer { return e.renderer }

func (e *Engine) Metrics() []metrics.Metric { return e.metrics }

// Metric looks up a metric by name.
func (e *Engine) Metric(name string) (metrics.Metric, bool) {
	for _, m := range e.metrics {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}
