package scrawl

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	homedir "github.com/mitchellh/go-homedir"
)

// fakeClock is an adjustable time source.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)}
}

func TestExportNamesAndContent(t *testing.T) {
	dir := t.TempDir()
	clk := newClock()
	o := NewOverlay(64, 80, WithClock(clk.now), WithToolbarHeight(0))
	o.SetTool(ToolRect)
	o.SetFill(true)
	drag(o, Pt(10, 10), Pt(40, 40))

	first, err := o.ExportTo(dir)
	if err != nil {
		t.Fatalf("ExportTo: %v", err)
	}
	if want := filepath.Join(dir, "scrawl_20260304_050607.png"); first != want {
		t.Errorf("first export: got %s, want %s", first, want)
	}
	second, err := o.ExportTo(dir)
	if err != nil {
		t.Fatalf("second ExportTo: %v", err)
	}
	if want := filepath.Join(dir, "scrawl_20260304_050607_1.png"); second != want {
		t.Errorf("colliding export: got %s, want %s", second, want)
	}

	f, err := os.Open(first)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := SurfaceFromImage(img)
	if got.Width() != 64 || got.Height() != 80 {
		t.Errorf("exported size %dx%d, want 64x80", got.Width(), got.Height())
	}
	if c := got.NRGBAAt(25, 25); c != red {
		t.Errorf("exported ink: got %v, want %v", c, red)
	}
	if c := got.NRGBAAt(60, 70); c.A != 0 {
		t.Errorf("exported background alpha %d, want 0", c.A)
	}
}

func TestExportNotice(t *testing.T) {
	dir := t.TempDir()
	clk := newClock()
	o := NewOverlay(8, 8, WithClock(clk.now), WithExportDir(dir))

	path, err := o.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	n, ok := o.Notice()
	if !ok || n.Level != NoticeInfo || n.Message != "Saved: "+path {
		t.Fatalf("notice after export: got %+v, %v", n, ok)
	}

	clk.t = clk.t.Add(NoticeDuration - time.Millisecond)
	if _, ok := o.Notice(); !ok {
		t.Error("notice expired early")
	}
	clk.t = clk.t.Add(time.Millisecond)
	if _, ok := o.Notice(); ok {
		t.Error("notice still shown after NoticeDuration")
	}
}

func TestExportFailurePostsWarning(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	clk := newClock()
	o := NewOverlay(8, 8, WithClock(clk.now))

	if _, err := o.ExportTo(filepath.Join(file, "sub")); err == nil {
		t.Fatal("ExportTo into a file path: want error")
	}
	n, ok := o.Notice()
	if !ok || n.Level != NoticeWarning || !strings.HasPrefix(n.Message, "Export failed: ") {
		t.Fatalf("failure notice: got %+v, %v", n, ok)
	}
	if want := clk.t.Add(WarningNoticeDuration); !n.Expires.Equal(want) {
		t.Errorf("warning expires %v, want %v", n.Expires, want)
	}
}

func TestExportTildeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	o := NewOverlay(4, 4, WithClock(newClock().now))
	path, err := o.ExportTo("~")
	if err != nil {
		t.Fatalf("ExportTo(~): %v", err)
	}
	if filepath.Dir(path) != home {
		t.Errorf("export dir: got %s, want %s", filepath.Dir(path), home)
	}
	path, err = o.ExportTo("")
	if err != nil {
		t.Fatalf("ExportTo(\"\"): %v", err)
	}
	if filepath.Dir(path) != home {
		t.Errorf("default export dir: got %s, want %s", filepath.Dir(path), home)
	}
}
