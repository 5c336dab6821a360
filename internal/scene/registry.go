package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/barviz/internal/amplitude"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/config"
	"github.com/san-kum/barviz/internal/smoothing"
)

// Registry maps configuration names to strategy constructors.
type Registry struct {
	generators map[string]func(*config.Config) amplitude.Generator
	smoothers  map[string]func(*config.Config) smoothing.Smoother
}

func NewRegistry() *Registry {
	r := &Registry{
		generators: make(map[string]func(*config.Config) amplitude.Generator),
		smoothers:  make(map[string]func(*config.Config) smoothing.Smoother),
	}

	r.generators["random-walk"] = func(c *config.Config) amplitude.Generator {
		return amplitude.NewRandomWalk(c.MinHeight, c.MaxHeight, c.Jitter)
	}
	r.generators["wave"] = func(c *config.Config) amplitude.Generator {
		return amplitude.NewWave(c.MinHeight, c.MaxHeight)
	}
	r.generators["constant"] = func(c *config.Config) amplitude.Generator {
		return amplitude.NewConstant(c.MinHeight, c.MaxHeight, c.Value)
	}

	r.smoothers["exponential"] = func(c *config.Config) smoothing.Smoother {
		return smoothing.NewExponential(c.Smoothing)
	}
	r.smoothers["spring"] = func(c *config.Config) smoothing.Smoother {
		return smoothing.NewSpring(c.TickInterval, c.Spring.Frequency, c.Spring.Damping, c.MinHeight, c.MaxHeight)
	}

	return r
}

func (r *Registry) GetGenerator(cfg *config.Config) (amplitude.Generator, error) {
	fn, ok := r.generators[cfg.Generator]
	if !ok {
		return nil, &bars.ConfigError{Field: "generator", Reason: fmt.Sprintf("unknown generator: %s", cfg.Generator)}
	}
	return fn(cfg), nil
}

func (r *Registry) GetSmoother(cfg *config.Config) (smoothing.Smoother, error) {
	fn, ok := r.smoothers[cfg.Smoother]
	if !ok {
		return nil, &bars.ConfigError{Field: "smoother", Reason: fmt.Sprintf("unknown smoother: %s", cfg.Smoother)}
	}
	return fn(cfg), nil
}

func (r *Registry) ListGenerators() []string {
	return sortedKeys(r.generators)
}

func (r *Registry) ListSmoothers() []string {
	return sortedKeys(r.smoothers)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
