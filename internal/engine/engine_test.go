package engine_test

import (
	"errors"
	"image"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/barviz/internal/amplitude"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/engine"
	"github.com/san-kum/barviz/internal/metrics"
	"github.com/san-kum/barviz/internal/palette"
	"github.com/san-kum/barviz/internal/render"
	"github.com/san-kum/barviz/internal/smoothing"
)

type fakeSurface struct {
	bounds      image.Rectangle
	fills       int
	invalidated int
	closed      int
	closeErr    error
}

func (s *fakeSurface) Bounds() image.Rectangle        { return s.bounds }
func (s *fakeSurface) Fill(image.Rectangle, bars.RGB) { s.fills++ }
func (s *fakeSurface) Invalidate()                    { s.invalidated++ }
func (s *fakeSurface) Close() error                   { s.closed++; return s.closeErr }

type fakeHost struct {
	created   []*fakeSurface
	err       error
	nilSurf   bool
	failClose error
}

func (h *fakeHost) CreateSurface(w, ht int) (bars.Surface, error) {
	if h.err != nil {
		return nil, h.err
	}
	if h.nilSurf {
		return nil, nil
	}
	s := &fakeSurface{bounds: image.Rect(0, 0, w, ht), closeErr: h.failClose}
	h.created = append(h.created, s)
	return s, nil
}

func scenarioConfig() bars.Config {
	return bars.Config{
		BarCount:     4,
		Width:        40,
		Height:       100,
		Spacing:      1,
		MinHeight:    0,
		MaxHeight:    100,
		Smoothing:    0.3,
		TickInterval: 20 * time.Millisecond,
	}
}

func classicRenderer() *render.Renderer {
	return render.New(palette.ThemeClassic.Gradient(), render.WithSeed(2),
		render.WithSparkle(render.Sparkle{Chance: render.DefaultSparkleChance, Color: bars.White}))
}

func heights(e *engine.Engine) []float64 {
	out := make([]float64, 0, len(e.Bars()))
	for _, b := range e.Bars() {
		out = append(out, b.Current)
	}
	return out
}

var _ = Describe("Engine", func() {
	var (
		host *fakeHost
		cfg  bars.Config
	)

	BeforeEach(func() {
		host = &fakeHost{}
		cfg = scenarioConfig()
	})

	Context("before setup", func() {
		It("ignores ticks", func() {
			eng := engine.New(amplitude.NewConstant(0, 100, 100), smoothing.NewExponential(0.3), classicRenderer())
			Expect(eng.Running()).To(BeFalse())

			eng.Tick()

			Expect(eng.Ticks()).To(Equal(0))
			Expect(eng.Bars()).To(BeEmpty())
			Expect(host.created).To(BeEmpty())
		})
	})

	Context("setup", func() {
		var eng *engine.Engine

		BeforeEach(func() {
			eng = engine.New(amplitude.NewRandomWalk(cfg.MinHeight, cfg.MaxHeight, 5),
				smoothing.NewExponential(cfg.Smoothing), classicRenderer(), engine.WithSeed(7))
		})

		It("allocates one bar per slot at the minimum height", func() {
			cfg.MinHeight = 20
			Expect(eng.Setup(host, cfg)).To(Succeed())

			Expect(eng.Running()).To(BeTrue())
			Expect(eng.Bars()).To(HaveLen(4))
			for i, b := range eng.Bars() {
				Expect(b.Index).To(Equal(i))
				Expect(b.Current).To(Equal(20.0))
				Expect(b.Target).To(BeNumerically(">=", 20))
				Expect(b.Target).To(BeNumerically("<=", 100))
			}
			Expect(host.created).To(HaveLen(1))
			Expect(eng.Surface().Bounds()).To(Equal(image.Rect(0, 0, 40, 100)))
		})

		It("rejects invalid configuration and stays uninitialized", func() {
			cfg.BarCount = 0
			err := eng.Setup(host, cfg)

			Expect(err).To(MatchError(bars.ErrConfiguration))
			Expect(eng.Running()).To(BeFalse())
			Expect(host.created).To(BeEmpty())
		})

		It("rejects min above max", func() {
			cfg.MinHeight, cfg.MaxHeight = 80, 60
			Expect(eng.Setup(host, cfg)).To(MatchError(bars.ErrConfiguration))
		})

		It("fails when the host has no surface", func() {
			host.err = errors.New("display offline")
			err := eng.Setup(host, cfg)

			Expect(err).To(MatchError(bars.ErrSurfaceUnavailable))
			Expect(err.Error()).To(ContainSubstring("display offline"))
			Expect(eng.Running()).To(BeFalse())
		})

		It("fails when the host returns a nil surface", func() {
			host.nilSurf = true
			Expect(eng.Setup(host, cfg)).To(MatchError(bars.ErrSurfaceUnavailable))
			Expect(eng.Setup(nil, cfg)).To(MatchError(bars.ErrSurfaceUnavailable))
		})

		It("is idempotent for the same configuration", func() {
			Expect(eng.Setup(host, cfg)).To(Succeed())
			first := append([]bars.State(nil), eng.Bars()...)
			backing := &eng.Bars()[0]

			for i := 0; i < 5; i++ {
				eng.Tick()
			}
			Expect(eng.Setup(host, cfg)).To(Succeed())

			Expect(eng.Running()).To(BeTrue())
			Expect(eng.Bars()).To(Equal(first))
			Expect(&eng.Bars()[0]).To(BeIdenticalTo(backing))
			Expect(eng.Ticks()).To(Equal(0))
			Expect(host.created).To(HaveLen(2))
			Expect(host.created[0].closed).To(Equal(1))
			Expect(host.created[1].closed).To(Equal(0))
		})

		It("keeps running on a failed re-setup", func() {
			Expect(eng.Setup(host, cfg)).To(Succeed())
			bad := cfg
			bad.Smoothing = 0
			Expect(eng.Setup(host, bad)).To(MatchError(bars.ErrConfiguration))
			Expect(eng.Running()).To(BeTrue())
			Expect(eng.Config()).To(Equal(cfg))
		})

		It("reports a failed release of the replaced surface", func() {
			errBusy := errors.New("surface busy")
			host.failClose = errBusy
			Expect(eng.Setup(host, cfg)).To(Succeed())
			host.failClose = nil

			Expect(eng.Setup(host, cfg)).To(MatchError(errBusy))
			Expect(host.created).To(HaveLen(2))
			Expect(host.created[0].closed).To(Equal(1))
			Expect(eng.Running()).To(BeTrue())

			eng.Tick()
			Expect(host.created[1].invalidated).To(Equal(1))
			Expect(host.created[0].invalidated).To(Equal(0))
		})

		It("releases the surface on close", func() {
			Expect(eng.Setup(host, cfg)).To(Succeed())
			Expect(eng.Close()).To(Succeed())

			Expect(eng.Running()).To(BeFalse())
			Expect(host.created[0].closed).To(Equal(1))

			eng.Tick()
			Expect(host.created[0].invalidated).To(Equal(0))
		})
	})

	Context("ticking", func() {
		It("converges geometrically toward a forced target", func() {
			eng := engine.New(amplitude.NewConstant(0, 100, 100), smoothing.NewExponential(0.3), classicRenderer())
			Expect(eng.Setup(host, cfg)).To(Succeed())

			expected := []float64{30, 51, 65.7}
			for n, want := range expected {
				eng.Tick()
				formula := 100 * (1 - math.Pow(0.7, float64(n+1)))
				for _, h := range heights(eng) {
					Expect(h).To(BeNumerically("~", want, 1e-9))
					Expect(h).To(BeNumerically("~", formula, 1e-9))
				}
			}
		})

		It("redraws once per tick", func() {
			eng := engine.New(amplitude.NewConstant(0, 100, 100), smoothing.NewExponential(0.3), classicRenderer())
			Expect(eng.Setup(host, cfg)).To(Succeed())

			for i := 0; i < 10; i++ {
				eng.Tick()
			}
			Expect(host.created[0].invalidated).To(Equal(10))
		})

		DescribeTable("keeps every bar within [min, max]",
			func(gen func(bars.Config) amplitude.Generator, smoother func(bars.Config) smoothing.Smoother) {
				cfg.BarCount = 64
				cfg.Width = 200
				cfg.MinHeight = 10
				cfg.MaxHeight = 90
				eng := engine.New(gen(cfg), smoother(cfg), classicRenderer(), engine.WithSeed(11))
				Expect(eng.Setup(host, cfg)).To(Succeed())

				for tick := 0; tick < 1000; tick++ {
					eng.Tick()
					for _, b := range eng.Bars() {
						Expect(b.Current).To(BeNumerically(">=", cfg.MinHeight))
						Expect(b.Current).To(BeNumerically("<=", cfg.MaxHeight))
						Expect(b.Target).To(BeNumerically(">=", cfg.MinHeight))
						Expect(b.Target).To(BeNumerically("<=", cfg.MaxHeight))
					}
				}
			},
			Entry("random walk, exponential",
				func(c bars.Config) amplitude.Generator { return amplitude.NewRandomWalk(c.MinHeight, c.MaxHeight, 10) },
				func(c bars.Config) smoothing.Smoother { return smoothing.NewExponential(0.3) }),
			Entry("wave, exponential",
				func(c bars.Config) amplitude.Generator { return amplitude.NewWave(c.MinHeight, c.MaxHeight) },
				func(c bars.Config) smoothing.Smoother { return smoothing.NewExponential(0.3) }),
			Entry("wave, spring",
				func(c bars.Config) amplitude.Generator { return amplitude.NewWave(c.MinHeight, c.MaxHeight) },
				func(c bars.Config) smoothing.Smoother {
					return smoothing.NewSpring(c.TickInterval, 14, 0.3, c.MinHeight, c.MaxHeight)
				}),
			Entry("generator wider than the config",
				func(c bars.Config) amplitude.Generator { return amplitude.NewRandomWalk(0, 100, 25) },
				func(c bars.Config) smoothing.Smoother { return smoothing.NewExponential(1) }),
		)

		It("is reproducible for a fixed seed and clock", func() {
			base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			run := func() []float64 {
				now := base
				clock := func() time.Time { return now }
				eng := engine.New(amplitude.NewWave(0, 100), smoothing.NewExponential(0.5), classicRenderer(),
					engine.WithSeed(99), engine.WithClock(clock))
				Expect(eng.Setup(&fakeHost{}, cfg)).To(Succeed())
				for i := 0; i < 25; i++ {
					now = now.Add(cfg.TickInterval)
					eng.Tick()
				}
				return heights(eng)
			}
			Expect(run()).To(Equal(run()))
		})

		It("reports metrics after each tick", func() {
			energy := metrics.NewEnergy()
			eng := engine.New(amplitude.NewConstant(0, 100, 100), smoothing.NewExponential(1), classicRenderer(),
				engine.WithMetric(energy, metrics.NewStability(time.Second)))
			Expect(eng.Setup(host, cfg)).To(Succeed())

			eng.Tick()
			Expect(energy.Last()).To(Equal(100.0))

			m, ok := eng.Metric("stability")
			Expect(ok).To(BeTrue())
			Expect(m.Value()).To(Equal(1.0))

			_, ok = eng.Metric("missing")
			Expect(ok).To(BeFalse())
		})
	})
})
