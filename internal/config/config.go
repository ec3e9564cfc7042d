// Package config loads the scrawl configuration: built-in defaults, then
// a TOML file, then command-line flags, then validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"
)

// AppName names the configuration directory.
const AppName = "scrawl"

// DefaultFileName is the configuration file name inside the configuration
// directory.
const DefaultFileName = "config.toml"

// Config is the application configuration.
type Config struct {
	Overlay  OverlayConfig  `toml:"overlay"`
	Export   ExportConfig   `toml:"export"`
	Settings SettingsConfig `toml:"settings"`
	Logger   LoggerConfig   `toml:"logger"`
	Terminal TerminalConfig `toml:"terminal"`
}

// OverlayConfig configures the drawing engine.
type OverlayConfig struct {
	HistoryCapacity int `toml:"history_capacity"`
	ToolbarHeight   int `toml:"toolbar_height"`
}

// ExportConfig configures PNG export.
type ExportConfig struct {
	// Dir is where images are saved. Empty means the home directory.
	Dir string `toml:"dir"`
	// CopyPath copies the saved path to the system clipboard.
	CopyPath bool `toml:"copy_path"`
}

// SettingsConfig locates the persisted tool settings. An empty Path
// disables persistence.
type SettingsConfig struct {
	Path string `toml:"path"`
}

// LoggerConfig configures the log file. The terminal belongs to the UI,
// so logs never go to stderr unless File is "-".
type LoggerConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// TerminalConfig configures the terminal front-end.
type TerminalConfig struct {
	// CellScale is the number of canvas pixels per terminal column.
	// Each row shows two stacked blocks, each CellScale pixels tall.
	CellScale int `toml:"cell_scale"`
}

// Defaults.
const (
	DefaultHistoryCapacity = 50
	DefaultToolbarHeight   = 0
	DefaultLogLevel        = "info"
	DefaultCellScale       = 4
	MaxCellScale           = 32
)

var validLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Overlay: OverlayConfig{
			HistoryCapacity: DefaultHistoryCapacity,
			ToolbarHeight:   DefaultToolbarHeight,
		},
		Logger:   LoggerConfig{Level: DefaultLogLevel},
		Terminal: TerminalConfig{CellScale: DefaultCellScale},
	}
	if dir := defaultDir(); dir != "" {
		cfg.Settings.Path = filepath.Join(dir, "settings.json")
	}
	return cfg
}

// DefaultPath returns the default configuration file path, or "" when the
// user configuration directory is unknown.
func DefaultPath() string {
	dir := defaultDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, DefaultFileName)
}

// defaultDir returns the scrawl configuration directory: under the user
// configuration directory, else ~/.scrawl, else "".
func defaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	if home, err := homedir.Dir(); err == nil && home != "" {
		return filepath.Join(home, "."+AppName)
	}
	return ""
}

// Load builds the configuration from defaults, the TOML file at path and
// the flags that were set. A missing file is not an error. An empty path
// selects DefaultPath. Invalid values are reset to their defaults and
// reported in the returned warnings, which the caller logs once logging
// is set up.
func Load(path string, flags *Flags) (*Config, []string, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	var warnings []string
	if path != "" {
		undecoded, err := cfg.decodeFile(path)
		if err != nil {
			return nil, nil, err
		}
		if len(undecoded) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s: unrecognized keys: %s", path, strings.Join(undecoded, ", ")))
		}
	}
	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	warnings = append(warnings, cfg.validate()...)
	if err := cfg.expand(); err != nil {
		return nil, nil, err
	}
	return cfg, warnings, nil
}

// decodeFile overlays the keys present in the file onto c.
func (c *Config) decodeFile(path string) ([]string, error) {
	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	var undecoded []string
	for _, k := range md.Undecoded() {
		undecoded = append(undecoded, k.String())
	}
	return undecoded, nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() []string {
	d := Default()
	var warnings []string
	reset := func(name string, bad any) {
		warnings = append(warnings, fmt.Sprintf("%s: invalid value %v, using default", name, bad))
	}

	if c.Overlay.HistoryCapacity <= 0 {
		reset("overlay.history_capacity", c.Overlay.HistoryCapacity)
		c.Overlay.HistoryCapacity = d.Overlay.HistoryCapacity
	}
	if c.Overlay.ToolbarHeight < 0 {
		reset("overlay.toolbar_height", c.Overlay.ToolbarHeight)
		c.Overlay.ToolbarHeight = d.Overlay.ToolbarHeight
	}
	c.Logger.Level = strings.ToLower(strings.TrimSpace(c.Logger.Level))
	if !contains(validLevels, c.Logger.Level) {
		reset("logger.level", c.Logger.Level)
		c.Logger.Level = d.Logger.Level
	}
	if c.Terminal.CellScale < 1 || c.Terminal.CellScale > MaxCellScale {
		reset("terminal.cell_scale", c.Terminal.CellScale)
		c.Terminal.CellScale = d.Terminal.CellScale
	}
	return warnings
}

// expand resolves a leading ~ in path values.
func (c *Config) expand() error {
	for _, p := range []*string{&c.Export.Dir, &c.Settings.Path, &c.Logger.File} {
		if *p == "" || *p == "-" {
			continue
		}
		v, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		*p = v
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
