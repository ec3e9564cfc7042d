package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/scrawl"
	"github.com/gogpu/scrawl/internal/replay"
)

const script = `
width: 120
height: 90
steps:
  - tool: rect
  - fill: true
  - drag: [[10, 10], [60, 50]]
  - tool: arrow
  - drag: [[70, 80], [110, 20]]
`

func TestRunReplay(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "s.yaml")
	if err := os.WriteFile(scriptPath, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")
	cfgPath := filepath.Join(dir, "config.toml")
	settingsPath := filepath.Join(dir, "settings.json")
	logPath := filepath.Join(dir, "scrawl.log")
	t.Cleanup(func() { scrawl.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-config", cfgPath,
		"-settings", settingsPath,
		"-logfile", logPath,
		"-loglevel", "debug",
		"-replay", scriptPath,
		"-o", out,
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v (stderr %q)", err, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != out {
		t.Errorf("stdout: got %q, want %q", got, out)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 90 {
		t.Errorf("image size %v, want 120x90", b)
	}
	if _, _, _, a := img.At(30, 30).RGBA(); a != 0xffff {
		t.Errorf("filled rect alpha %#x, want opaque", a)
	}
	if _, _, _, a := img.At(5, 85).RGBA(); a != 0 {
		t.Errorf("background alpha %#x, want transparent", a)
	}

	if _, err := os.Stat(settingsPath); !os.IsNotExist(err) {
		t.Error("replay wrote the settings file")
	}
	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logData), "replay finished") {
		t.Errorf("log file lacks the replay summary:\n%s", logData)
	}
}

func TestRunVersion(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-version"}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout.String(), "scrawl ") {
		t.Errorf("version output: %q", stdout.String())
	}
}

func TestRunBadScript(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{
		"-config", filepath.Join(dir, "none.toml"),
		"-settings", filepath.Join(dir, "settings.json"),
		"-replay", filepath.Join(dir, "missing.yaml"),
	}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Error("missing script: want error")
	}
}

func writeScript(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "s.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRunReplaySizeFlags(t *testing.T) {
	small := `
width: 50
height: 40
steps:
  - tool: rect
  - drag: [[5, 5], [20, 20]]
`
	tests := []struct {
		name  string
		flags []string
		w, h  int
		fails bool
	}{
		{"script size", nil, 50, 40, false},
		{"both", []string{"-width", "300", "-height", "200"}, 300, 200, false},
		{"width only", []string{"-width", "70"}, 70, 40, false},
		{"zero", []string{"-height", "0"}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out := filepath.Join(dir, "o.png")
			args := append([]string{
				"-config", filepath.Join(dir, "none.toml"),
				"-settings", filepath.Join(dir, "settings.json"),
				"-replay", writeScript(t, dir, small),
				"-o", out,
			}, tt.flags...)
			err := run(args, &bytes.Buffer{}, &bytes.Buffer{})
			if tt.fails {
				if !errors.Is(err, replay.ErrCanvasSize) {
					t.Errorf("run: got %v, want ErrCanvasSize", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if b := decodePNG(t, out).Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("image size %v, want %dx%d", b, tt.w, tt.h)
			}
		})
	}
}

func TestRunReplayIgnoresToolbarHeight(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[overlay]\ntoolbar_height = 56\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "o.png")
	err := run([]string{
		"-config", cfgPath,
		"-settings", filepath.Join(dir, "settings.json"),
		"-replay", writeScript(t, dir, script),
		"-o", out,
	}, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// The filled rect starts at y=10, inside a 56 pixel toolbar band.
	if _, _, _, a := decodePNG(t, out).At(30, 30).RGBA(); a != 0xffff {
		t.Errorf("rect alpha %#x, want opaque", a)
	}
}
