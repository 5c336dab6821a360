package palette

import (
	"errors"
	"testing"

	"github.com/san-kum/barviz/internal/bars"
)

func twoSegment(t *testing.T) *Gradient {
	t.Helper()
	g, err := NewGradient(
		bars.ColorStop{At: 0, Color: bars.Blue},
		bars.ColorStop{At: 0.5, Color: bars.Purple},
		bars.ColorStop{At: 1, Color: bars.Red},
	)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}
	return g
}

func TestGradientBoundaries(t *testing.T) {
	g := twoSegment(t)

	tests := []struct {
		index    int
		expected bars.RGB
	}{
		{0, bars.Blue},
		{31, bars.Purple},
		{32, bars.Purple},
		{63, bars.Red},
	}
	for _, tt := range tests {
		if got := g.ColorFor(tt.index, 64, 0); got != tt.expected {
			t.Errorf("bar %d: expected %s, got %s", tt.index, tt.expected, got)
		}
	}
}

func TestGradientMidpoint(t *testing.T) {
	g, err := NewGradient(
		bars.ColorStop{At: 0, Color: bars.Black},
		bars.ColorStop{At: 1, Color: bars.RGB{200, 100, 50}},
	)
	if err != nil {
		t.Fatal(err)
	}
	// 5 bars: t = 0, .25, .5, .75, 1
	if got := g.ColorFor(2, 5, 0); got != (bars.RGB{100, 50, 25}) {
		t.Errorf("expected midpoint #643219, got %s", got)
	}
}

func TestGradientTilesWithoutGaps(t *testing.T) {
	g := ThemeClassic.Gradient()
	for _, count := range []int{1, 2, 3, 7, 32, 64, 100} {
		seen := 0
		for i := 0; i < count; i++ {
			matched := 0
			last := len(g.Stops) - 2
			for k := 0; k <= last; k++ {
				start := segmentEdge(g.Stops[k].At, count)
				end := segmentEdge(g.Stops[k+1].At, count)
				if k == last {
					end = count
				}
				if i >= start && i < end {
					matched++
				}
			}
			if matched != 1 {
				t.Fatalf("count %d bar %d: in %d segments", count, i, matched)
			}
			seen++
		}
		if seen != count {
			t.Fatalf("count %d: covered %d bars", count, seen)
		}
	}
}

func TestGradientStepped(t *testing.T) {
	g := ThemeAurora.Gradient()
	blue := bars.RGB{0x00, 0x88, 0xff}
	violet := bars.RGB{0x88, 0x44, 0xff}
	pink := bars.RGB{0xff, 0x44, 0x88}

	for i := 0; i < 32; i++ {
		got := g.ColorFor(i, 32, 0)
		var want bars.RGB
		switch {
		case i < 23:
			want = blue
		case i < 29:
			want = violet
		default:
			want = pink
		}
		if got != want {
			t.Errorf("bar %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestHighlightOverride(t *testing.T) {
	g := twoSegment(t)
	g.Highlight = &Highlight{Threshold: 100, Base: bars.Blue, Gain: 2}

	if got := g.ColorFor(63, 64, 100); got != bars.Red {
		t.Errorf("at threshold expected positional red, got %s", got)
	}
	if got := g.ColorFor(63, 64, 150); got != (bars.RGB{100, 100, 255}) {
		t.Errorf("expected brightened #6464ff, got %s", got)
	}
	if got := g.ColorFor(0, 64, 150); got != (bars.RGB{100, 100, 255}) {
		t.Errorf("highlight should not depend on position, got %s", got)
	}
	if got := g.ColorFor(10, 64, 400); got != bars.White {
		t.Errorf("expected saturation at white, got %s", got)
	}
	if got := g.ColorFor(63, 64, 80); got != bars.Red {
		t.Errorf("expected positional color once below threshold, got %s", got)
	}
}

func TestNewGradientErrors(t *testing.T) {
	tests := []struct {
		name  string
		stops []bars.ColorStop
	}{
		{"single stop", []bars.ColorStop{{At: 0}}},
		{"not starting at zero", []bars.ColorStop{{At: 0.1}, {At: 1}}},
		{"not ending at one", []bars.ColorStop{{At: 0}, {At: 0.9}}},
		{"descending", []bars.ColorStop{{At: 0}, {At: 0.6}, {At: 0.4}, {At: 1}}},
	}
	for _, tt := range tests {
		if _, err := NewGradient(tt.stops...); !errors.Is(err, bars.ErrConfiguration) {
			t.Errorf("%s: expected configuration error, got %v", tt.name, err)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#8844ff")
	if err != nil {
		t.Fatal(err)
	}
	if c != (bars.RGB{0x88, 0x44, 0xff}) {
		t.Errorf("expected #8844ff, got %s", c)
	}
	if c, _ := ParseHex("#fff"); c != bars.White {
		t.Errorf("expected short form white, got %s", c)
	}
	if _, err := ParseHex("blue"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestThemes(t *testing.T) {
	for _, th := range Themes {
		if _, err := NewGradient(th.Stops...); err != nil {
			t.Errorf("theme %s: %v", th.Name, err)
		}
	}
	if _, ok := GetTheme("nonexistent"); ok {
		t.Error("expected unknown theme lookup to fail")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}
