package scrawl

import "unicode"

// Key identifies a keyboard key. Printable keys use their rune; the
// special keys below live in the Unicode private use area.
type Key rune

// Special keys.
const (
	KeyEscape  Key = 0x1b
	KeyControl Key = 0xE000 + iota
	KeyShift
)

// Modifiers is the set of modifier keys held during a key event.
type Modifiers uint8

// Modifier bits.
const (
	ModCtrl Modifiers = 1 << iota
	ModShift
)

// KeyDown handles a key press.
//
//	Escape    cancel the pending text entry, or quit
//	Ctrl+Z    undo
//	Ctrl+S    export
//	Ctrl+Q    quit
//	C         clear the canvas (not while text is pending)
//	Control   force the eraser while held
//	Shift     force the line tool while held
//
// Holding a modifier only forces a tool when no session is active.
func (o *Overlay) KeyDown(k Key, mods Modifiers) Effect {
	switch k {
	case KeyEscape:
		if o.pending != nil {
			return o.CancelText()
		}
		return EffectQuit
	case KeyControl:
		return o.forceEraser()
	case KeyShift:
		return o.forceLine()
	}

	r := unicode.ToLower(rune(k))
	if mods&ModCtrl != 0 {
		switch r {
		case 'z':
			return o.Undo()
		case 's':
			_, _ = o.Export()
			return EffectRedraw
		case 'q':
			return EffectQuit
		}
		return 0
	}
	if r == 'c' && o.pending == nil {
		return o.Clear()
	}
	return 0
}

// KeyUp handles a key release. Releasing Control or Shift restores the
// style that was replaced when the key was pressed; during a session the
// restore waits until the session ends.
func (o *Overlay) KeyUp(k Key, _ Modifiers) Effect {
	switch k {
	case KeyControl:
		if !o.eraserForced {
			return 0
		}
		if o.sess != nil {
			o.restoreEraserOnEnd = true
			return 0
		}
		o.restoreEraser()
		return EffectRedraw
	case KeyShift:
		if !o.lineForced {
			return 0
		}
		if o.sess != nil {
			o.restoreToolOnEnd = true
			return 0
		}
		o.restoreTool()
		return EffectRedraw
	}
	return 0
}

func (o *Overlay) forceEraser() Effect {
	if o.sess != nil || o.eraserForced {
		return 0
	}
	o.savedEraser = o.state.Eraser
	o.state.Eraser = true
	o.eraserForced = true
	return EffectRedraw
}

func (o *Overlay) forceLine() Effect {
	if o.sess != nil || o.lineForced {
		return 0
	}
	o.savedTool = o.state.Tool
	o.state.Tool = ToolLine
	o.lineForced = true
	return EffectRedraw
}

func (o *Overlay) restoreEraser() {
	if o.eraserForced {
		o.state.Eraser = o.savedEraser
	}
	o.eraserForced, o.restoreEraserOnEnd = false, false
}

func (o *Overlay) restoreTool() {
	if o.lineForced {
		o.state.Tool = o.savedTool
	}
	o.lineForced, o.restoreToolOnEnd = false, false
}

// applyDeferredRestores runs the modifier releases that arrived while a
// session was active.
func (o *Overlay) applyDeferredRestores() {
	if o.restoreEraserOnEnd {
		o.restoreEraser()
	}
	if o.restoreToolOnEnd {
		o.restoreTool()
	}
}
