package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/engine"
	"github.com/san-kum/barviz/internal/metrics"
	"github.com/san-kum/barviz/internal/palette"
	"github.com/san-kum/barviz/internal/surface"
)

const historyCapacity = 120

type TickMsg time.Time

// Model hosts a running engine and the cell surface it draws on.
type Model struct {
	eng      *engine.Engine
	cells    *surface.Cells
	name     string
	interval time.Duration
	history  []float64
	quitting bool
}

// NewModel wraps an engine that has already been set up on cells.
func NewModel(eng *engine.Engine, cells *surface.Cells, name string) Model {
	return Model{
		eng:      eng,
		cells:    cells,
		name:     name,
		interval: eng.Config().TickInterval,
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case TickMsg:
		m.eng.Tick()
		m.record()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) record() {
	met, ok := m.eng.Metric("energy")
	if !ok {
		return
	}
	e, ok := met.(*metrics.Energy)
	if !ok {
		return
	}
	if len(m.history) == historyCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyCapacity-1]
	}
	m.history = append(m.history, e.Last())
}

// History returns the recent mean bar levels, oldest first.
func (m Model) History() []float64 { return m.history }

func (m Model) Quitting() bool { return m.quitting }

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	canvasView := canvasStyle.Render(m.cells.String())

	cfg := m.eng.Config()
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30),
			asciigraph.LowerBound(cfg.MinHeight), asciigraph.UpperBound(cfg.MaxHeight), asciigraph.Caption("Level"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	s.WriteString(labelStyle.Render("Ticks") + valueStyle.Render(fmt.Sprintf("%d", m.eng.Ticks())) + "\n")
	s.WriteString(labelStyle.Render("Bars") + valueStyle.Render(fmt.Sprintf("%d × %dpx", cfg.BarCount, cfg.EffectiveBarWidth())) + "\n")
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(cfg.TickInterval.String()) + "\n")
	for _, met := range m.eng.Metrics() {
		s.WriteString(labelStyle.Render(met.Name()) + valueStyle.Render(fmt.Sprintf("%.2f", met.Value())) + "\n")
	}
	if met, ok := m.eng.Metric("stability"); ok {
		s.WriteString(labelStyle.Render("Budget") + meter(met.Value(), 20) + "\n")
	}
	if n := m.eng.Renderer().Degenerate(); n > 0 {
		s.WriteString(labelStyle.Render("Clamped") + valueStyle.Render(fmt.Sprintf("%d", n)) + "\n")
	}
	s.WriteString(helpStyle.Render("─────────────────────\nQ:Quit"))
	statsView := statsStyle.Render(s.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run sets eng up on a terminal surface and blocks until the user quits.
func Run(eng *engine.Engine, cfg bars.Config, name string, theme palette.Theme) error {
	host := &surface.CellsHost{}
	if err := eng.Setup(host, cfg); err != nil {
		return err
	}
	defer eng.Close()

	accent(theme)
	p := tea.NewProgram(NewModel(eng, host.Last, name), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
