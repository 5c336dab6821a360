package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/barviz/internal/bars"
)

const (
	DefaultBars      = 64
	DefaultWidth     = 200
	DefaultHeight    = 100
	DefaultSpacing   = 1
	DefaultSmoothing = 0.3
	DefaultJitter    = 5.0
	DefaultFrequency = 12.0
	DefaultDamping   = 0.4
	DefaultChance    = 15
)

type Config struct {
	BarCount     int           `yaml:"bars"`
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	BarWidth     int           `yaml:"bar_width"`
	Spacing      int           `yaml:"spacing"`
	MinHeight    float64       `yaml:"min_height"`
	MaxHeight    float64       `yaml:"max_height"`
	Smoothing    float64       `yaml:"smoothing"`
	TickInterval time.Duration `yaml:"tick_interval"`

	Generator string       `yaml:"generator"`
	Jitter    float64      `yaml:"jitter"`
	Value     float64      `yaml:"value,omitempty"`
	Smoother  string       `yaml:"smoother"`
	Spring    SpringConfig `yaml:"spring"`
	Seed      int64        `yaml:"seed"`

	Theme      string         `yaml:"theme"`
	Palette    *PaletteConfig `yaml:"palette,omitempty"`
	Background string         `yaml:"background,omitempty"`
	Sparkle    SparkleConfig  `yaml:"sparkle"`
}

type SpringConfig struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// PaletteConfig replaces the theme's stops when present.
type PaletteConfig struct {
	Stops     []StopConfig     `yaml:"stops"`
	Stepped   bool             `yaml:"stepped"`
	Highlight *HighlightConfig `yaml:"highlight,omitempty"`
}

type StopConfig struct {
	At    float64 `yaml:"at"`
	Color string  `yaml:"color"`
}

type HighlightConfig struct {
	Threshold float64 `yaml:"threshold"`
	Color     string  `yaml:"color"`
	Gain      float64 `yaml:"gain"`
}

type SparkleConfig struct {
	Enabled bool   `yaml:"enabled"`
	Chance  int    `yaml:"chance"`
	Color   string `yaml:"color,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		BarCount:     DefaultBars,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Spacing:      DefaultSpacing,
		MinHeight:    DefaultHeight / 2,
		MaxHeight:    DefaultHeight,
		Smoothing:    DefaultSmoothing,
		TickInterval: bars.DefaultTickInterval,
		Generator:    "random-walk",
		Jitter:       DefaultJitter,
		Smoother:     "exponential",
		Spring: SpringConfig{
			Frequency: DefaultFrequency,
			Damping:   DefaultDamping,
		},
		Theme: "classic",
		Sparkle: SparkleConfig{
			Enabled: true,
			Chance:  DefaultChance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bars converts the file layout into the engine's configuration.
func (c *Config) Bars() bars.Config {
	return bars.Config{
		BarCount:     c.BarCount,
		Width:        c.Width,
		Height:       c.Height,
		BarWidth:     c.BarWidth,
		Spacing:      c.Spacing,
		MinHeight:    c.MinHeight,
		MaxHeight:    c.MaxHeight,
		Smoothing:    c.Smoothing,
		TickInterval: c.TickInterval,
	}
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	if c.Palette != nil {
		p := *c.Palette
		p.Stops = append([]StopConfig(nil), c.Palette.Stops...)
		if c.Palette.Highlight != nil {
			h := *c.Palette.Highlight
			p.Highlight = &h
		}
		out.Palette = &p
	}
	return &out
}
