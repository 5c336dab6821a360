package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/barviz/internal/palette"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)

	meterHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	meterMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	meterLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// accent tints the header and graph with the last color of the theme.
func accent(theme palette.Theme) {
	if len(theme.Stops) == 0 {
		return
	}
	c := lipgloss.Color(theme.Stops[len(theme.Stops)-1].Color.String())
	headerStyle = headerStyle.Foreground(c)
	graphStyle = graphStyle.Foreground(c)
}

// meter renders a fill bar for a value in [0, 1].
func meter(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent > 0.8 {
		return meterHigh.Render(bar)
	} else if percent > 0.4 {
		return meterMid.Render(bar)
	}
	return meterLow.Render(bar)
}
