// Package term is a terminal front-end for scrawl. It shows the overlay
// frame with half-block characters, turns mouse and key events into
// overlay calls, and draws a toolbar row and a status line.
//
// Layout, top to bottom: one toolbar row, the canvas rows, one status
// row. Each canvas cell shows two square blocks of scale×scale pixels,
// the upper one as the foreground of '▀' and the lower one as its
// background.
package term

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/scrawl"
)

// ErrTooSmall is returned when the terminal has no room for the canvas.
var ErrTooSmall = errors.New("term: terminal too small")

// Options configures the front-end.
type Options struct {
	// Scale is the number of canvas pixels per terminal column.
	Scale int
	// CopyPath copies the path of an exported image to the clipboard.
	CopyPath bool
}

// UI runs an Overlay on a tcell screen.
type UI struct {
	screen tcell.Screen
	o      *scrawl.Overlay
	scale  int
	copy   bool
	clip   func(string) error

	cols, rows int
	pressed    bool
	mods       tcell.ModMask
	text       string
	quit       bool
}

// CanvasSize returns the canvas size in pixels for a terminal of cols×rows
// cells.
func CanvasSize(cols, rows, scale int) (int, int) {
	return cols * scale, (rows - chromeRows) * 2 * scale
}

// chromeRows is the number of rows used by the toolbar and status line.
const chromeRows = 2

// NewScreen creates and initializes a terminal screen with mouse motion
// reporting.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	return s, nil
}

// New creates a front-end for screen. The overlay is created by newOverlay
// with the canvas size that fits the screen.
func New(screen tcell.Screen, opts Options, newOverlay func(w, h int) *scrawl.Overlay) (*UI, error) {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	cols, rows := screen.Size()
	w, h := CanvasSize(cols, rows, opts.Scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, cols, rows)
	}
	ui := &UI{
		screen: screen,
		o:      newOverlay(w, h),
		scale:  opts.Scale,
		copy:   opts.CopyPath,
		clip:   clipboard.WriteAll,
		cols:   cols,
		rows:   rows,
	}
	scrawl.Logger().Debug("term: canvas", "cols", cols, "rows", rows, "width", w, "height", h)
	return ui, nil
}

// Overlay returns the overlay driven by the UI.
func (ui *UI) Overlay() *scrawl.Overlay { return ui.o }

// Run draws and handles events until the user quits.
func (ui *UI) Run() {
	ui.draw()
	for !ui.quit {
		ev := ui.screen.PollEvent()
		if ev == nil {
			return
		}
		if ui.handle(ev) {
			ui.draw()
		}
	}
}

// handle dispatches one event and reports whether to redraw.
func (ui *UI) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		ui.cols, ui.rows = ev.Size()
		ui.screen.Sync()
		return true
	case *tcell.EventMouse:
		return ui.apply(ui.mouse(ev))
	case *tcell.EventKey:
		return ui.apply(ui.key(ev))
	}
	return false
}

// apply reacts to an overlay effect and reports whether to redraw.
func (ui *UI) apply(eff scrawl.Effect) bool {
	if eff.Has(scrawl.EffectQuit) {
		ui.quit = true
	}
	if eff.Has(scrawl.EffectTextEntry) {
		ui.text = ""
	}
	return eff != 0
}

// export saves the canvas and copies the path when configured to.
func (ui *UI) export() scrawl.Effect {
	path, err := ui.o.Export()
	if err != nil || !ui.copy {
		return scrawl.EffectRedraw
	}
	if err := ui.clip(path); err != nil {
		scrawl.Logger().Warn("term: copy to clipboard failed", "err", err)
	}
	return scrawl.EffectRedraw
}
