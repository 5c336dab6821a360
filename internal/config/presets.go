package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic64": {
		BarCount: 64, Width: 200, Height: 100, Spacing: 1,
		MinHeight: 50, MaxHeight: 100, Smoothing: 1, TickInterval: 20 * time.Millisecond,
		Generator: "random-walk", Jitter: 5, Smoother: "exponential",
		Spring:  SpringConfig{Frequency: DefaultFrequency, Damping: DefaultDamping},
		Theme:   "classic",
		Sparkle: SparkleConfig{Enabled: true, Chance: 15},
	},
	"wave32": {
		BarCount: 32, Width: 200, Height: 150, Spacing: 2,
		MinHeight: 10, MaxHeight: 150, Smoothing: 0.3, TickInterval: 30 * time.Millisecond,
		Generator: "wave", Smoother: "exponential",
		Spring: SpringConfig{Frequency: DefaultFrequency, Damping: DefaultDamping},
		Theme:  "aurora",
		Palette: &PaletteConfig{
			Stops: []StopConfig{
				{At: 0, Color: "#0088ff"},
				{At: 0.7, Color: "#8844ff"},
				{At: 0.9, Color: "#ff4488"},
				{At: 1, Color: "#ff4488"},
			},
			Stepped:   true,
			Highlight: &HighlightConfig{Threshold: 100, Color: "#0000ff", Gain: 2},
		},
	},
	"springy": {
		BarCount: 48, Width: 240, Height: 120, Spacing: 1,
		MinHeight: 5, MaxHeight: 120, Smoothing: 0.5, TickInterval: 16 * time.Millisecond,
		Generator: "random-walk", Jitter: 10, Smoother: "spring",
		Spring:  SpringConfig{Frequency: 8, Damping: 0.25},
		Theme:   "ocean",
		Sparkle: SparkleConfig{Enabled: true, Chance: 30},
	},
	"flat": {
		BarCount: 16, Width: 160, Height: 80, Spacing: 2,
		MinHeight: 0, MaxHeight: 80, Smoothing: 0.3, TickInterval: 20 * time.Millisecond,
		Generator: "constant", Value: 60, Smoother: "exponential",
		Spring: SpringConfig{Frequency: DefaultFrequency, Damping: DefaultDamping},
		Theme:  "retro",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
