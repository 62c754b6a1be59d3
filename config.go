package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"deskfolio/internal/content"
	"deskfolio/internal/geom"
	"deskfolio/internal/layout"
	"deskfolio/internal/sequencer"
	"deskfolio/internal/wallpaper"
	"deskfolio/internal/wm"
)

var (
	ErrUnknownWindow   = errors.New("unknown window")
	ErrDuplicateWindow = errors.New("duplicate window")
	ErrInvalidSize     = errors.New("invalid window size")
	ErrInvalidTheme    = errors.New("invalid theme")
)

type Config struct {
	Log       LogConfig        `yaml:"log"`
	Tracing   TracingConfig    `yaml:"tracing"`
	Desktop   DesktopConfig    `yaml:"desktop"`
	Wallpaper WallpaperConfig  `yaml:"wallpaper"`
	Timing    TimingConfig     `yaml:"timing"`
	Profile   content.Profile  `yaml:"profile"`
	Windows   []WindowOverride `yaml:"windows"`

	path string
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type TracingConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Exporter   string  `yaml:"exporter"`
	Endpoint   string  `yaml:"endpoint"`
	File       string  `yaml:"file"`
	SampleRate float64 `yaml:"sample_rate"`
}

type DesktopConfig struct {
	NarrowThreshold int           `yaml:"narrow_threshold"`
	AltScreen       bool          `yaml:"alt_screen"`
	Theme           string        `yaml:"theme"`
	SkipBoot        bool          `yaml:"skip_boot"`
	SnapshotDir     string        `yaml:"snapshot_dir"`
	Tick            time.Duration `yaml:"tick"`
}

type WallpaperConfig struct {
	Enabled     bool          `yaml:"enabled"`
	URLTemplate string        `yaml:"url_template"`
	Timeout     time.Duration `yaml:"timeout"`
}

type TimingConfig struct {
	Boot     time.Duration `yaml:"boot"`
	Restart  time.Duration `yaml:"restart"`
	Shutdown time.Duration `yaml:"shutdown"`
	Login    time.Duration `yaml:"login"`
}

// WindowOverride replaces parts of a panel's default title and geometry.
type WindowOverride struct {
	ID       string      `yaml:"id"`
	Title    string      `yaml:"title"`
	Position *geom.Point `yaml:"position"`
	Size     *geom.Size  `yaml:"size"`
}

func defaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: TracingConfig{
			Exporter:   "none",
			SampleRate: 1.0,
		},
		Desktop: DesktopConfig{
			NarrowThreshold: layout.DefaultNarrowThreshold,
			AltScreen:       true,
			Theme:           "dark",
			Tick:            50 * time.Millisecond,
		},
		Wallpaper: WallpaperConfig{
			Enabled:     true,
			URLTemplate: wallpaper.DefaultURLTemplate,
			Timeout:     wallpaper.DefaultTimeout,
		},
		Timing: TimingConfig{
			Boot:     sequencer.DefaultBoot,
			Restart:  sequencer.DefaultRestart,
			Shutdown: sequencer.DefaultShutdown,
			Login:    sequencer.DefaultLogin,
		},
		Profile: content.DefaultProfile(),
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "deskfolio", "config.yaml")
}

// loadConfig reads path, or the default location when path is empty. A
// missing file yields the defaults.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		path = defaultConfigPath()
	}
	config.path = path
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	config.expandPaths()
	return config, nil
}

func (c *Config) validate() error {
	known := make(map[string]bool)
	for _, p := range content.Catalog(c.Profile) {
		known[p.ID] = true
	}
	seen := make(map[string]bool)
	for _, w := range c.Windows {
		if !known[w.ID] {
			return fmt.Errorf("%w: %q", ErrUnknownWindow, w.ID)
		}
		if seen[w.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateWindow, w.ID)
		}
		seen[w.ID] = true
		if w.Size != nil && w.Size.Empty() {
			return fmt.Errorf("%w: %q is %dx%d", ErrInvalidSize, w.ID, w.Size.Width, w.Size.Height)
		}
	}
	c.Desktop.Theme = strings.ToLower(c.Desktop.Theme)
	switch c.Desktop.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Desktop.Theme)
	}
	if c.Desktop.Tick <= 0 {
		c.Desktop.Tick = 50 * time.Millisecond
	}
	return nil
}

func (c *Config) expandPaths() {
	c.Log.File = expandHome(c.Log.File)
	c.Tracing.File = expandHome(c.Tracing.File)
	c.Desktop.SnapshotDir = expandHome(c.Desktop.SnapshotDir)
}

func expandHome(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// SnapshotPath places filename in the snapshot directory, creating it.
func (c *Config) SnapshotPath(filename string) string {
	if c.Desktop.SnapshotDir == "" {
		return filename
	}
	os.MkdirAll(c.Desktop.SnapshotDir, 0755)
	return filepath.Join(c.Desktop.SnapshotDir, filename)
}

// panels returns the content catalog with window overrides applied.
func (c *Config) panels() []content.Panel {
	panels := content.Catalog(c.Profile)
	for _, o := range c.Windows {
		for i := range panels {
			if panels[i].ID != o.ID {
				continue
			}
			if o.Title != "" {
				panels[i].Title = o.Title
			}
			if o.Position != nil {
				panels[i].Position = *o.Position
			}
			if o.Size != nil {
				panels[i].Size = *o.Size
			}
		}
	}
	return panels
}

func registryFor(panels []content.Panel) *wm.Registry {
	defs := make([]wm.Definition, len(panels))
	for i, p := range panels {
		defs[i] = wm.Definition{ID: p.ID, Title: p.Title, Position: p.Position, Size: p.Size}
	}
	return wm.NewRegistry(defs)
}
