package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/databg/internal/config"
	"github.com/san-kum/databg/internal/field"
	"github.com/san-kum/databg/internal/logging"
	"github.com/san-kum/databg/internal/theme"
	"github.com/san-kum/databg/internal/typewriter"
	"github.com/san-kum/databg/internal/viz"
	"github.com/san-kum/databg/internal/window"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	frameRate  int
	logFile    string
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "databg",
		Short:         "animated data-field background for the terminal or a window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTerminal,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory (theme preference)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frames per second")
	pf.StringVar(&logFile, "log", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the animation in a desktop window",
		RunE:  runWindow,
	}

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "read or change the saved theme",
	}
	themeCmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "print the saved theme",
			Args:  cobra.NoArgs,
			RunE:  themeGet,
		},
		&cobra.Command{
			Use:   "set [dark|light]",
			Short: "save a theme",
			Args:  cobra.ExactArgs(1),
			RunE:  themeSet,
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "switch between dark and light",
			Args:  cobra.NoArgs,
			RunE:  themeToggle,
		},
	)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  configInit,
	})

	rootCmd.AddCommand(windowCmd, themeCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers defaults, the preset, the config file and explicitly set
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if !cfg.Apply(preset) {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		var err error
		if cfg, err = config.LoadOver(configFile, cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	return cfg, cfg.Validate()
}

func openStore(cfg *config.Config) (*theme.Store, error) {
	st := theme.NewStore(cfg.DataDir, theme.Parse(cfg.Theme))
	if err := st.Init(); err != nil {
		return nil, err
	}
	if err := st.Load(); err != nil {
		return nil, err
	}
	return st, nil
}

// openLogger returns a logger and its closer. Without --log the terminal
// host discards logs and the window host writes to stderr.
func openLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	if logFile != "" {
		return logging.ToFile(logFile, level)
	}
	if fallback == nil {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	return logging.New(fallback, level), io.NopCloser(nil), nil
}

// resolveSeed picks a clock seed when none is configured.
func resolveSeed(cfg *config.Config) int64 {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg.Seed
}

func newScene(cfg *config.Config, w, h int) *field.Scene {
	rng := rand.New(rand.NewSource(resolveSeed(cfg)))
	return field.NewScene(w, h, rng, cfg.Params(), cfg.Palettes)
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := openLogger(nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	// The first WindowSizeMsg sizes the scene.
	scene := newScene(cfg, 0, 0)
	logger.Info("starting terminal host", "seed", cfg.Seed, "fps", cfg.FPS, "theme", st.Theme())

	return viz.Run(viz.Options{
		Scene:        scene,
		Themes:       st,
		Typewriter:   typewriter.New(cfg.Typewriter.Titles, cfg.Timing()),
		Interval:     cfg.FrameInterval(),
		PixelsPerDot: cfg.Terminal.PixelsPerDot,
		AlphaGain:    cfg.Terminal.AlphaGain,
		Logger:       logger,
	})
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	scene := newScene(cfg, cfg.Window.Width, cfg.Window.Height)
	logger.Info("starting window host", "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	return window.Run(window.Options{
		Scene:      scene,
		Themes:     st,
		Typewriter: typewriter.New(cfg.Typewriter.Titles, cfg.Timing()),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		TPS:        cfg.FPS,
		Logger:     logger,
	})
}

func themeGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	fmt.Println(st.Theme())
	return nil
}

func themeSet(cmd *cobra.Command, args []string) error {
	t, err := theme.ParseStrict(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	if err := st.Set(t); err != nil {
		return err
	}
	fmt.Println(t)
	return nil
}

func themeToggle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	next, err := st.Toggle()
	if err != nil {
		return err
	}
	fmt.Println(next)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFPS\tTHEME\tMAX PARTICLES\tMAX COLUMNS\tLINK DIST")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%.0f\n",
			name, p.FPS, p.Theme, p.Population.MaxParticles, p.Population.MaxColumns, p.Link.MaxDistance)
	}
	return w.Flush()
}

func configInit(cmd *cobra.Command, args []string) error {
	path := "databg.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}
