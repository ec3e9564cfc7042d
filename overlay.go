package scrawl

import (
	"time"

	"github.com/gogpu/scrawl/text"
)

// Overlay is the drawing surface controller. It owns the canvas, the
// transient layer of the active session, the undo history and the tool
// state, turns pointer and key events into drawing, and produces frames.
//
// Overlay is not safe for concurrent use; a front-end calls it from one
// event loop.
type Overlay struct {
	opts    options
	canvas  *Surface
	frame   *Surface
	history *History
	state   ToolState
	paint   *painter
	fonts   *text.Registry

	sess    session
	cursor  Point
	hovered bool
	pending *TextEntry
	notice  *Notice

	// Modifier forcing: the replaced values and pending restores.
	eraserForced, restoreEraserOnEnd bool
	savedEraser                      bool
	lineForced, restoreToolOnEnd     bool
	savedTool                        Tool
}

// NewOverlay creates an overlay with a transparent canvas of the given
// size.
func NewOverlay(width, height int, opts ...Option) *Overlay {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	o := &Overlay{
		opts:    cfg,
		canvas:  NewSurface(width, height),
		frame:   NewSurface(width, height),
		history: NewHistory(cfg.historyCapacity),
		state:   DefaultToolState(),
		paint:   newPainter(),
		fonts:   cfg.fonts,
	}
	if cfg.state != nil {
		o.state = *cfg.state
		o.state.normalize()
	}
	if o.fonts == nil {
		o.fonts = text.NewRegistry()
	}
	Logger().Debug("scrawl: overlay created", "width", width, "height", height,
		"history", o.history.Cap(), "toolbar", cfg.toolbarHeight)
	return o
}

// Canvas returns the persistent canvas. It is replaced on undo, so do not
// keep it across events.
func (o *Overlay) Canvas() *Surface { return o.canvas }

// History returns the undo history.
func (o *Overlay) History() *History { return o.history }

// Drawing reports whether a pointer session is active.
func (o *Overlay) Drawing() bool { return o.sess != nil }

// ToolbarHeight returns the height of the toolbar band.
func (o *Overlay) ToolbarHeight() float64 { return o.opts.toolbarHeight }

// PointerDown handles a button press at p.
//
// Presses inside the toolbar band are ignored. If a text entry is pending
// the press commits it and does nothing else. Otherwise the text tool
// opens a new entry, and every other tool pushes a history snapshot and
// starts a session.
func (o *Overlay) PointerDown(p Point) Effect {
	last := o.cursor
	o.cursor, o.hovered = p, true
	if p.Y <= o.opts.toolbarHeight {
		return 0
	}
	if o.pending != nil {
		return o.CommitText()
	}
	if o.sess != nil {
		// Missed release: finish the old session where it was.
		o.endSession(last)
	}
	if o.state.Tool == ToolText && !o.state.Eraser {
		o.openText(p)
		return EffectRedraw | EffectTextEntry
	}

	o.history.Push(o.canvas)
	o.sess = newSession(o, o.state, p)
	Logger().Debug("scrawl: session started", "tool", o.state.Tool, "eraser", o.state.Eraser, "x", p.X, "y", p.Y)
	return EffectRedraw
}

// PointerMove handles pointer motion, with or without a held button.
func (o *Overlay) PointerMove(p Point) Effect {
	o.cursor, o.hovered = p, true
	var eff Effect
	if o.cursorVisible() {
		eff = EffectRedraw
	}
	if o.sess != nil {
		o.sess.move(p)
		eff = EffectRedraw
	}
	return eff
}

// PointerUp handles a button release. A release without a session is a
// no-op.
func (o *Overlay) PointerUp(p Point) Effect {
	o.cursor, o.hovered = p, true
	if o.sess == nil {
		return 0
	}
	o.endSession(p)
	return EffectRedraw
}

// PointerLeave hides the cursor indicator.
func (o *Overlay) PointerLeave() Effect {
	o.hovered = false
	return EffectRedraw
}

func (o *Overlay) endSession(p Point) {
	o.sess.finish(p)
	o.sess = nil
	o.applyDeferredRestores()
}

// Undo restores the most recent snapshot. With an empty history it does
// nothing.
func (o *Overlay) Undo() Effect {
	snap, ok := o.history.Pop()
	if !ok {
		return 0
	}
	o.canvas = snap
	return EffectRedraw
}

// Clear pushes a snapshot and makes the canvas transparent.
func (o *Overlay) Clear() Effect {
	o.history.Push(o.canvas)
	o.canvas.Clear()
	return EffectRedraw
}

// Style returns a snapshot of the current tool state, including tools
// forced by held modifier keys.
func (o *Overlay) Style() ToolState { return o.state }

// Settings returns the persistent part of the tool state, with modifier
// forcing undone.
func (o *Overlay) Settings() Settings {
	st := o.state
	if o.eraserForced {
		st.Eraser = o.savedEraser
	}
	if o.lineForced {
		st.Tool = o.savedTool
	}
	return SettingsFrom(st)
}

// SetTool selects the drawing tool.
func (o *Overlay) SetTool(t Tool) Effect {
	if int(t) >= len(toolNames) {
		return 0
	}
	o.state.Tool = t
	o.lineForced, o.restoreToolOnEnd = false, false
	return EffectRedraw
}

// SetWidth sets the stroke width, clamped to [MinWidth, MaxWidth].
func (o *Overlay) SetWidth(w int) Effect {
	o.state.SetWidth(w)
	return EffectRedraw
}

// SetColor sets the stroke color.
func (o *Overlay) SetColor(c RGB) Effect {
	o.state.Color = c
	return EffectRedraw
}

// SetFill enables or disables filled shapes.
func (o *Overlay) SetFill(on bool) Effect {
	o.state.Fill = on
	return EffectRedraw
}

// SetHighlighter enables or disables translucent ink.
func (o *Overlay) SetHighlighter(on bool) Effect {
	o.state.Highlighter = on
	return EffectRedraw
}

// SetEraser enables or disables the eraser.
func (o *Overlay) SetEraser(on bool) Effect {
	o.state.Eraser = on
	o.eraserForced, o.restoreEraserOnEnd = false, false
	return EffectRedraw
}

// ToggleFill flips the fill flag.
func (o *Overlay) ToggleFill() Effect { return o.SetFill(!o.state.Fill) }

// ToggleHighlighter flips the highlighter flag.
func (o *Overlay) ToggleHighlighter() Effect { return o.SetHighlighter(!o.state.Highlighter) }

// ToggleEraser flips the eraser flag.
func (o *Overlay) ToggleEraser() Effect { return o.SetEraser(!o.state.Eraser) }

// SetFont sets the text font family and size.
func (o *Overlay) SetFont(family string, pt int) Effect {
	o.state.SetFont(family, pt)
	return o.syncPendingFont()
}

// SetFontSize sets the text size in points, clamped to
// [MinFontSize, MaxFontSize].
func (o *Overlay) SetFontSize(pt int) Effect {
	o.state.SetFontSize(pt)
	return o.syncPendingFont()
}

// QuickSize sets stroke width and font size together.
func (o *Overlay) QuickSize(n int) Effect {
	o.state.QuickSize(n)
	return o.syncPendingFont()
}

// syncPendingFont applies a font change to an open text entry.
func (o *Overlay) syncPendingFont() Effect {
	if o.pending != nil {
		o.pending.Font = o.state.Font
	}
	return EffectRedraw
}

// now returns the overlay clock.
func (o *Overlay) now() time.Time { return o.opts.clock() }
