// Command scrawl is a screen annotation overlay for the terminal.
//
// Without flags it opens the terminal front-end. With -replay it runs a
// YAML event script headlessly and saves the canvas as PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/scrawl"
	"github.com/gogpu/scrawl/internal/config"
	"github.com/gogpu/scrawl/internal/replay"
	"github.com/gogpu/scrawl/internal/term"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "scrawl:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("scrawl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.NewFlags(fs)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.Version {
		fmt.Fprintln(stdout, "scrawl", version)
		return nil
	}

	cfg, warnings, err := config.Load(flags.ConfigPath, flags)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg.Logger, stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	for _, w := range warnings {
		scrawl.Logger().Warn("config: " + w)
	}

	settings := scrawl.DefaultSettings()
	if cfg.Settings.Path != "" {
		settings, err = scrawl.LoadSettings(cfg.Settings.Path)
		if err != nil {
			scrawl.Logger().Warn("settings ignored", "err", err)
		}
	}
	opts := []scrawl.Option{
		scrawl.WithHistoryCapacity(cfg.Overlay.HistoryCapacity),
		scrawl.WithToolbarHeight(float64(cfg.Overlay.ToolbarHeight)),
		scrawl.WithToolState(settings.ToolState()),
		scrawl.WithExportDir(cfg.Export.Dir),
	}

	if flags.Replay != "" {
		return runReplay(flags, opts, stdout)
	}
	return runTerminal(cfg, opts)
}

// runReplay plays a script and writes the canvas. Settings are read but
// never saved, so replays do not disturb the interactive tool state.
// -width and -height replace the canvas size the script declares.
func runReplay(flags *config.Flags, opts []scrawl.Option, stdout io.Writer) error {
	s, err := replay.Load(flags.Replay)
	if err != nil {
		return err
	}
	if flags.IsSet("width") {
		s.Width = flags.Width
	}
	if flags.IsSet("height") {
		s.Height = flags.Height
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", replay.ErrCanvasSize, s.Width, s.Height)
	}
	clock := replay.NewClock(time.Now())
	o := replay.New(s, append(opts, scrawl.WithClock(clock.Now))...)
	res := replay.Run(o, s, clock)
	scrawl.Logger().Info("replay finished", "script", flags.Replay, "steps", res.Steps, "quit", res.Quit)

	if flags.Output == "" {
		path, err := o.Export()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, path)
		return nil
	}
	if err := o.Canvas().SavePNG(flags.Output); err != nil {
		return err
	}
	fmt.Fprintln(stdout, flags.Output)
	return nil
}

func runTerminal(cfg *config.Config, opts []scrawl.Option) error {
	screen, err := term.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ui, err := term.New(screen, term.Options{Scale: cfg.Terminal.CellScale, CopyPath: cfg.Export.CopyPath},
		func(w, h int) *scrawl.Overlay { return scrawl.NewOverlay(w, h, opts...) })
	if err != nil {
		return err
	}
	ui.Run()

	if cfg.Settings.Path == "" {
		return nil
	}
	if err := scrawl.SaveSettings(cfg.Settings.Path, ui.Overlay().Settings()); err != nil {
		scrawl.Logger().Warn("settings not saved", "err", err)
	}
	return nil
}

// setupLogging routes the scrawl logger to the configured file. Without a
// file nothing is logged, since the terminal belongs to the UI; "-" logs
// to stderr.
func setupLogging(c config.LoggerConfig, stderr io.Writer) (func(), error) {
	var w io.Writer
	closeFn := func() {}
	switch c.File {
	case "":
		return closeFn, nil
	case "-":
		w = stderr
	default:
		if err := os.MkdirAll(filepath.Dir(c.File), 0o755); err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // path from config
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(c.Level)})
	scrawl.SetLogger(slog.New(h))
	return closeFn, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
