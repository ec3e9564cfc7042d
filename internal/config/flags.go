package config

import (
	"flag"
	"fmt"
)

// Flags holds command-line flags. Only flags that were set on the command
// line override the configuration file.
type Flags struct {
	fs *flag.FlagSet

	ConfigPath   string
	Version      bool
	Replay       string
	Output       string
	Width        int
	Height       int
	LogLevel     string
	LogFile      string
	ExportDir    string
	SettingsPath string
	History      int
	CellScale    int
}

// NewFlags defines the scrawl flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", fmt.Sprintf("path to TOML configuration file (default %s)", DefaultPath()))
	fs.BoolVar(&f.Version, "version", false, "print version and exit")
	fs.StringVar(&f.Replay, "replay", "", "replay a YAML event script headlessly instead of opening the terminal")
	fs.StringVar(&f.Output, "o", "", "PNG written after -replay (default: export directory)")
	fs.IntVar(&f.Width, "width", 0, "override the script canvas width for -replay")
	fs.IntVar(&f.Height, "height", 0, "override the script canvas height for -replay")
	fs.StringVar(&f.LogLevel, "loglevel", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "logfile", "", "log file path, '-' for stderr")
	fs.StringVar(&f.ExportDir, "export-dir", "", "directory for exported images")
	fs.StringVar(&f.SettingsPath, "settings", "", "tool settings file")
	fs.IntVar(&f.History, "history", 0, "number of undo snapshots")
	fs.IntVar(&f.CellScale, "cell-scale", 0, "canvas pixels per terminal column")
	return f
}

// Parse parses args.
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// IsSet reports whether the named flag was set on the command line.
func (f *Flags) IsSet(name string) bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// ApplyOverrides copies every flag that was set into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.Level = f.LogLevel
		case "logfile":
			cfg.Logger.File = f.LogFile
		case "export-dir":
			cfg.Export.Dir = f.ExportDir
		case "settings":
			cfg.Settings.Path = f.SettingsPath
		case "history":
			cfg.Overlay.HistoryCapacity = f.History
		case "cell-scale":
			cfg.Terminal.CellScale = f.CellScale
		}
	})
}
