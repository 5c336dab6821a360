package palette

import "github.com/san-kum/barviz/internal/bars"

// Theme is a named gradient plus the canvas background it was designed for.
type Theme struct {
	Name       string
	Stops      []bars.ColorStop
	Stepped    bool
	Background bars.RGB
	Sparkle    bars.RGB
}

// Available themes
var (
	// ThemeClassic is the 64-bar panel look: blue to purple to red to white.
	ThemeClassic = Theme{
		Name: "classic",
		Stops: []bars.ColorStop{
			{At: 0, Color: bars.Blue},
			{At: 1.0 / 3, Color: bars.Purple},
			{At: 2.0 / 3, Color: bars.Red},
			{At: 1, Color: bars.White},
		},
		Background: bars.Black,
		Sparkle:    bars.White,
	}

	// ThemeAurora is the 32-bar look: flat blue, violet and pink bands.
	ThemeAurora = Theme{
		Name: "aurora",
		Stops: []bars.ColorStop{
			{At: 0, Color: bars.RGB{0x00, 0x88, 0xff}},
			{At: 0.7, Color: bars.RGB{0x88, 0x44, 0xff}},
			{At: 0.9, Color: bars.RGB{0xff, 0x44, 0x88}},
			{At: 1, Color: bars.RGB{0xff, 0x44, 0x88}},
		},
		Stepped:    true,
		Background: bars.Black,
		Sparkle:    bars.White,
	}

	ThemeCyberpunk = Theme{
		Name: "cyberpunk",
		Stops: []bars.ColorStop{
			{At: 0, Color: bars.RGB{0xff, 0x00, 0xff}},
			{At: 0.5, Color: bars.RGB{0x00, 0xff, 0xff}},
			{At: 1, Color: bars.RGB{0xff, 0xff, 0x00}},
		},
		Background: bars.RGB{0x0a, 0x0a, 0x0a},
		Sparkle:    bars.White,
	}

	ThemeRetroGreen = Theme{
		Name: "retro",
		Stops: []bars.ColorStop{
			{At: 0, Color: bars.RGB{0x00, 0x55, 0x00}},
			{At: 0.5, Color: bars.RGB{0x00, 0xff, 0x00}},
			{At: 1, Color: bars.RGB{0x88, 0xff, 0x88}},
		},
		Background: bars.RGB{0x00, 0x11, 0x00},
		Sparkle:    bars.RGB{0x88, 0xff, 0x88},
	}

	ThemeOcean = Theme{
		Name: "ocean",
		Stops: []bars.ColorStop{
			{At: 0, Color: bars.RGB{0x00, 0x77, 0xbe}},
			{At: 0.5, Color: bars.RGB{0x00, 0xa8, 0xcc}},
			{At: 1, Color: bars.RGB{0xff, 0xd7, 0x00}},
		},
		Background: bars.RGB{0x00, 0x1a, 0x33},
		Sparkle:    bars.RGB{0xe0, 0xf0, 0xff},
	}

	ThemeSunset = Theme{
		Name: "sunset",
		Stops: []bars.ColorStop{
			{At: 0, Color: bars.RGB{0xff, 0x6b, 0x6b}},
			{At: 0.5, Color: bars.RGB{0xfe, 0xca, 0x57}},
			{At: 1, Color: bars.RGB{0xff, 0x9f, 0xf3}},
		},
		Background: bars.RGB{0x2d, 0x1b, 0x2e},
		Sparkle:    bars.RGB{0xff, 0xf5, 0xf5},
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeAurora,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Gradient builds the theme's positional gradient.
func (t Theme) Gradient() *Gradient {
	stops := make([]bars.ColorStop, len(t.Stops))
	copy(stops, t.Stops)
	return &Gradient{Stops: stops, Stepped: t.Stepped}
}
