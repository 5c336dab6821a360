package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/barviz/internal/bars"
	"github.com/san-kum/barviz/internal/config"
	"github.com/san-kum/barviz/internal/engine"
	"github.com/san-kum/barviz/internal/export"
	"github.com/san-kum/barviz/internal/gui"
	"github.com/san-kum/barviz/internal/palette"
	"github.com/san-kum/barviz/internal/scene"
	"github.com/san-kum/barviz/internal/surface"
	"github.com/san-kum/barviz/internal/term"
	"github.com/san-kum/barviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	theme      string
	generator  string
	smoother   string
	seed       int64
	barCount   int
	width      int
	height     int
	tick       time.Duration
	// live
	terminal string
	// gui
	backend string
	scale   int
	showFPS bool
	// headless
	traceTicks    int
	snapshotTicks int
	barList       string
	outFile       string
	frames        int
	force         bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "barviz",
		Short: "animated bar level visualizer",
		RunE:  runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&theme, "theme", "", "color theme")
	pf.StringVar(&generator, "generator", "", "amplitude generator")
	pf.StringVar(&smoother, "smoother", "", "height smoother")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.IntVar(&barCount, "bars", 0, "number of bars")
	pf.IntVar(&width, "width", 0, "canvas width in pixels")
	pf.IntVar(&height, "height", 0, "canvas height in pixels")
	pf.DurationVar(&tick, "tick", 0, "tick interval")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&terminal, "backend", "bubbletea", "terminal backend (bubbletea, tcell)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&backend, "backend", "raylib", "window backend (raylib, ebiten)")
	guiCmd.Flags().IntVar(&scale, "scale", 4, "pixel scale")
	guiCmd.Flags().BoolVar(&showFPS, "fps", false, "show frame rate")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and plot bar heights",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&traceTicks, "ticks", 200, "number of ticks")
	traceCmd.Flags().StringVar(&barList, "plot", "", "comma separated bar indices to plot")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render headless to png, gif or svg",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshotTicks, "ticks", 100, "number of ticks")
	snapshotCmd.Flags().StringVar(&outFile, "out", "barviz.png", "output file (.png, .gif or .svg)")
	snapshotCmd.Flags().IntVar(&frames, "frames", 50, "frames recorded for gif output")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and themes",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(liveCmd, guiCmd, traceCmd, snapshotCmd, presetsCmd, initCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("generator") {
		cfg.Generator = generator
	}
	if flags.Changed("smoother") {
		cfg.Smoother = smoother
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("bars") {
		cfg.BarCount = barCount
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
		if cfg.MaxHeight > float64(height) {
			cfg.MaxHeight = float64(height)
		}
		if cfg.MinHeight > cfg.MaxHeight {
			cfg.MinHeight = cfg.MaxHeight / 2
		}
	}
	if flags.Changed("tick") {
		cfg.TickInterval = tick
	}
	return cfg, nil
}

func themeFor(cfg *config.Config) palette.Theme {
	t, ok := palette.GetTheme(cfg.Theme)
	if !ok {
		return palette.ThemeClassic
	}
	return t
}

func name(cfg *config.Config) string {
	if preset != "" {
		return preset
	}
	return fmt.Sprintf("%s / %s", cfg.Generator, cfg.Theme)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, core, err := scene.Build(cfg)
	if err != nil {
		return err
	}
	switch terminal {
	case "", "bubbletea":
		return viz.Run(eng, core, name(cfg), themeFor(cfg))
	case "tcell":
		return term.Run(eng, core)
	default:
		return fmt.Errorf("unknown backend: %s (available: bubbletea, tcell)", terminal)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, core, err := scene.Build(cfg)
	if err != nil {
		return err
	}

	opts := gui.Options{Title: "barviz - " + name(cfg), Scale: scale, ShowFPS: showFPS}
	switch backend {
	case "raylib":
		return gui.RunRaylib(eng, core, opts)
	case "ebiten":
		return gui.RunEbiten(eng, core, opts)
	default:
		return fmt.Errorf("unknown backend: %s (available: raylib, ebiten)", backend)
	}
}

// stepClock advances by one tick interval per read after the first, so
// headless runs animate as if they ran in real time.
type stepClock struct {
	now  time.Time
	step time.Duration
	read bool
}

func (c *stepClock) Now() time.Time {
	if c.read {
		c.now = c.now.Add(c.step)
	}
	c.read = true
	return c.now
}

func headless(cmd *cobra.Command, host bars.Host) (*engine.Engine, bars.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, bars.Config{}, err
	}
	clock := &stepClock{now: time.Unix(0, 0), step: cfg.TickInterval}
	eng, core, err := scene.Build(cfg, engine.WithClock(clock.Now))
	if err != nil {
		return nil, core, err
	}
	if err := eng.Setup(host, core); err != nil {
		return nil, core, err
	}
	return eng, core, nil
}

func parseIndices(s string, n int) ([]int, error) {
	if s == "" {
		return []int{0, n / 2, n - 1}, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad bar index %q: %w", part, err)
		}
		if i < 0 || i >= n {
			return nil, fmt.Errorf("bar index %d out of range [0, %d)", i, n)
		}
		out = append(out, i)
	}
	return out, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	if traceTicks < 1 {
		return fmt.Errorf("ticks must be positive, got %d", traceTicks)
	}
	eng, core, err := headless(cmd, &surface.ImageHost{})
	if err != nil {
		return err
	}
	defer eng.Close()

	indices, err := parseIndices(barList, core.BarCount)
	if err != nil {
		return err
	}
	series := make([][]float64, len(indices))
	mean := make([]float64, 0, traceTicks)
	for t := 0; t < traceTicks; t++ {
		eng.Tick()
		sum := 0.0
		for _, b := range eng.Bars() {
			sum += b.Current
		}
		mean = append(mean, sum/float64(len(eng.Bars())))
		for k, i := range indices {
			series[k] = append(series[k], eng.Bars()[i].Current)
		}
	}

	colors := []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.Purple, asciigraph.Red, asciigraph.Green, asciigraph.Yellow}
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.LowerBound(core.MinHeight),
		asciigraph.UpperBound(core.MaxHeight),
		asciigraph.SeriesColors(colors[:min(len(indices), len(colors))]...),
		asciigraph.Caption(fmt.Sprintf("bar heights %v", indices)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(mean,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("mean level"),
	))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "METRIC\tVALUE\n")
	for _, m := range eng.Metrics() {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), m.Value())
	}
	fmt.Fprintf(w, "ticks\t%d\n", eng.Ticks())
	fmt.Fprintf(w, "clamped\t%d\n", eng.Renderer().Degenerate())
	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotTicks < 1 {
		return fmt.Errorf("ticks must be positive, got %d", snapshotTicks)
	}
	ext := strings.ToLower(filepath.Ext(outFile))
	if ext == ".svg" {
		return snapshotSVG(cmd)
	}

	host := &surface.ImageHost{}
	eng, core, err := headless(cmd, host)
	if err != nil {
		return err
	}
	defer eng.Close()

	var rec *surface.Recorder
	capture := snapshotTicks
	if ext == ".gif" {
		rec = surface.NewRecorder(core.TickInterval)
		capture = max(snapshotTicks-frames, 0)
	}
	for t := 0; t < snapshotTicks; t++ {
		if rec != nil && t == capture {
			host.Last.OnInvalidate = rec.Capture
		}
		eng.Tick()
	}

	if err := surface.Save(outFile, host.Last.RGBA(), rec); err != nil {
		return err
	}
	if rec != nil {
		fmt.Printf("wrote %s (%d frames)\n", outFile, rec.Len())
	} else {
		fmt.Printf("wrote %s after %d ticks\n", outFile, eng.Ticks())
	}
	return nil
}

func snapshotSVG(cmd *cobra.Command) error {
	host := &export.SVGHost{Scale: 1}
	eng, _, err := headless(cmd, host)
	if err != nil {
		return err
	}
	defer eng.Close()
	for t := 0; t < snapshotTicks; t++ {
		eng.Tick()
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := host.Last.WriteTo(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d shapes)\n", outFile, host.Last.Rects())
	return f.Close()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PRESET\tBARS\tSIZE\tGENERATOR\tSMOOTHER\tTHEME\n")
	for _, p := range config.ListPresets() {
		cfg := config.GetPreset(p)
		fmt.Fprintf(w, "%s\t%d\t%dx%d\t%s\t%s\t%s\n", p, cfg.BarCount, cfg.Width, cfg.Height, cfg.Generator, cfg.Smoother, cfg.Theme)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nthemes: %s\n", strings.Join(palette.ThemeNames(), ", "))
	fmt.Printf("generators: %s\n", strings.Join(scene.NewRegistry().ListGenerators(), ", "))
	fmt.Printf("smoothers: %s\n", strings.Join(scene.NewRegistry().ListSmoothers(), ", "))
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	path := "barviz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if _, _, err := scene.Build(cfg); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
