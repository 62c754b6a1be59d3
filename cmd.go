package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"deskfolio/internal/logging"
	"deskfolio/internal/tracing"
	"deskfolio/internal/wallpaper"
)

// Version information, set at build time via ldflags.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

type globalFlags struct {
	configFile  string
	logLevel    string
	skipBoot    bool
	noWallpaper bool
	theme       string
}

// apply lays command line overrides over a loaded config.
func (f *globalFlags) apply(cfg *Config) error {
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.skipBoot {
		cfg.Desktop.SkipBoot = true
	}
	if f.noWallpaper {
		cfg.Wallpaper.Enabled = false
	}
	if f.theme != "" {
		cfg.Desktop.Theme = f.theme
		if err := cfg.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *globalFlags) load(path string) (*Config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := f.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "deskfolio",
		Short: "A desktop environment in your terminal",
		Long: `Deskfolio boots a small windowed desktop inside the terminal.

Open panels from the desktop icons or with the number keys, drag windows by
their title bar, and use the taskbar to switch, minimize and restore them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(flags.configFile)
			if err != nil {
				return err
			}
			return runDesktop(cmd.Context(), cfg, flags)
		},
	}

	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (default: <config dir>/deskfolio/config.yaml)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flags.theme, "theme", "", "color theme: dark, light")
	root.Flags().BoolVar(&flags.skipBoot, "skip-boot", false, "start on the desktop without the boot and login screens")
	root.Flags().BoolVar(&flags.noWallpaper, "no-wallpaper", false, "do not download a wallpaper")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSnapshotCmd(flags))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deskfolio %s (%s)\n", Version, GitCommit)
		},
	}
}

func newSnapshotCmd(flags *globalFlags) *cobra.Command {
	var (
		out    string
		open   []string
		width  int
		height int
		view   bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the desktop to a PNG without starting the UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(flags.configFile)
			if err != nil {
				return err
			}
			cfg.Desktop.SkipBoot = true
			cfg.Wallpaper.Enabled = false
			if out == "" {
				out = cfg.SnapshotPath(snapshotName(time.Now()))
			}
			if err := renderSnapshot(cfg, out, width, height, open); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			if view {
				return openFile(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path")
	cmd.Flags().StringSliceVar(&open, "open", nil, "panel ids to open, back to front")
	cmd.Flags().IntVar(&width, "width", 120, "terminal width in cells")
	cmd.Flags().IntVar(&height, "height", 36, "terminal height in cells")
	cmd.Flags().BoolVar(&view, "view", false, "open the PNG when done")
	return cmd
}

// renderSnapshot composes a desktop of the given size with the listed panels
// open and writes it to path.
func renderSnapshot(cfg *Config, path string, width, height int, open []string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("snapshot size %dx%d: %w", width, height, ErrInvalidSize)
	}
	m := newModel(cfg, deps{})
	m.resize(width, height)
	for _, id := range open {
		if _, ok := m.panel(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownWindow, id)
		}
		m.openPanel(id)
	}
	return m.compose().ExportPNG(path)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging opens the log file. Logs are discarded when it cannot be
// opened because the terminal belongs to the UI.
func setupLogging(cfg *Config) (*logging.Logger, io.Closer) {
	lc := logging.DefaultConfig()
	lc.Level = logging.Level(cfg.Log.Level)
	lc.Format = logging.Format(cfg.Log.Format)
	path := cfg.Log.File
	if path == "" {
		path = logging.DefaultPath()
	}
	if path == "" {
		return logging.New(lc), nopCloser{}
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return logging.New(lc), nopCloser{}
	}
	lc.Output = f
	return logging.New(lc), f
}

func setupTracing(ctx context.Context, cfg *Config) (*tracing.Tracer, io.Closer, error) {
	tc := tracing.DefaultConfig()
	tc.Enabled = cfg.Tracing.Enabled
	tc.ExporterType = tracing.ExporterType(cfg.Tracing.Exporter)
	tc.OTLPEndpoint = cfg.Tracing.Endpoint
	tc.Version = Version
	if cfg.Tracing.SampleRate > 0 {
		tc.SampleRate = cfg.Tracing.SampleRate
	}
	var closer io.Closer = nopCloser{}
	if tc.Enabled && tc.ExporterType == tracing.ExporterStdout && cfg.Tracing.File != "" {
		f, err := logging.OpenFile(cfg.Tracing.File)
		if err != nil {
			return nil, nil, fmt.Errorf("open trace file: %w", err)
		}
		tc.Output, closer = f, f
	}
	t, err := tracing.New(ctx, tc)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return t, closer, nil
}

func runDesktop(ctx context.Context, cfg *Config, flags *globalFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log, logFile := setupLogging(cfg)
	defer logFile.Close()

	session := uuid.NewString()
	ctx = logging.WithSessionID(ctx, session)
	log = log.With("session_id", session)

	tracer, traceFile, err := setupTracing(ctx, cfg)
	if err != nil {
		return err
	}
	defer traceFile.Close()
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	d := deps{ctx: ctx, log: log, tracer: tracer}
	if cfg.Wallpaper.Enabled {
		d.provider = wallpaper.NewHTTPProvider(cfg.Wallpaper.URLTemplate, cfg.Wallpaper.Timeout)
	}
	m := newModel(cfg, d)

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
	if cfg.Desktop.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	if path := cfg.Path(); path != "" {
		w, err := newConfigWatcher(path, flags.load, p.Send)
		if err != nil {
			log.Warn("config watcher disabled", "path", path, "error", err)
		} else {
			w.Start(ctx)
			defer w.Close()
		}
	}

	log.Info("desktop started", "version", Version, "config", cfg.Path())
	_, err = p.Run()
	m.walls.Stop()
	log.Info("desktop stopped")
	return err
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
