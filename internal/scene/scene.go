// Package scene assembles a ready-to-run engine from a config file.
package scene

import (
	"fmt"

	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/config"
	"github.com/san-kum/barviz/internal/engine"
	"github.com/san-kum/barviz/internal/metrics"
	"github.com/san-kum/barviz/internal/palette"
	"github.com/san-kum/barviz/internal/render"
)

// Build resolves every named strategy in cfg and returns an engine that is
// ready for Setup together with the core configuration to set it up with.
// Extra options are applied after the ones derived from cfg.
func Build(cfg *config.Config, opts ...engine.Option) (*engine.Engine, bars.Config, error) {
	core := cfg.Bars()
	if err := core.Validate(); err != nil {
		return nil, core, err
	}

	reg := NewRegistry()
	gen, err := reg.GetGenerator(cfg)
	if err != nil {
		return nil, core, err
	}
	smoother, err := reg.GetSmoother(cfg)
	if err != nil {
		return nil, core, err
	}
	renderer, err := Renderer(cfg)
	if err != nil {
		return nil, core, err
	}

	all := []engine.Option{engine.WithMetric(metrics.Defaults(core.TickInterval)...)}
	if cfg.Seed != 0 {
		all = append(all, engine.WithSeed(cfg.Seed))
	}
	all = append(all, opts...)

	return engine.New(gen, smoother, renderer, all...), core, nil
}

// Renderer builds the color mapper, background and sparkle settings.
func Renderer(cfg *config.Config) (*render.Renderer, error) {
	theme, ok := palette.GetTheme(cfg.Theme)
	if !ok {
		return nil, &bars.ConfigError{Field: "theme", Reason: fmt.Sprintf("unknown theme: %s", cfg.Theme)}
	}

	mapper, err := Mapper(cfg, theme)
	if err != nil {
		return nil, err
	}

	background := theme.Background
	if cfg.Background != "" {
		if background, err = parseColor("background", cfg.Background); err != nil {
			return nil, err
		}
	}

	opts := []render.Option{render.WithBackground(background)}
	if cfg.Seed != 0 {
		opts = append(opts, render.WithSeed(cfg.Seed))
	}
	if cfg.Sparkle.Enabled {
		color := theme.Sparkle
		if cfg.Sparkle.Color != "" {
			if color, err = parseColor("sparkle.color", cfg.Sparkle.Color); err != nil {
				return nil, err
			}
		}
		opts = append(opts, render.WithSparkle(render.Sparkle{
			Chance: cfg.Sparkle.Chance,
			Size:   render.DefaultSparkleSize,
			Color:  color,
		}))
	}
	return render.New(mapper, opts...), nil
}

// Mapper returns the theme gradient, or the explicit palette when cfg has one.
func Mapper(cfg *config.Config, theme palette.Theme) (*palette.Gradient, error) {
	if cfg.Palette == nil {
		return theme.Gradient(), nil
	}

	stops := make([]bars.ColorStop, len(cfg.Palette.Stops))
	for i, s := range cfg.Palette.Stops {
		c, err := parseColor(fmt.Sprintf("palette.stops[%d]", i), s.Color)
		if err != nil {
			return nil, err
		}
		stops[i] = bars.ColorStop{At: s.At, Color: c}
	}
	g, err := palette.NewGradient(stops...)
	if err != nil {
		return nil, err
	}
	g.Stepped = cfg.Palette.Stepped

	if h := cfg.Palette.Highlight; h != nil {
		base, err := parseColor("palette.highlight.color", h.Color)
		if err != nil {
			return nil, err
		}
		g.Highlight = &palette.Highlight{Threshold: h.Threshold, Base: base, Gain: h.Gain}
	}
	return g, nil
}

func parseColor(field, s string) (bars.RGB, error) {
	c, err := palette.ParseHex(s)
	if err != nil {
		return bars.RGB{}, &bars.ConfigError{Field: field, Reason: err.Error()}
	}
	return c, nil
}
