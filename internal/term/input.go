package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/gogpu/scrawl"
)

// quickSizes are the width and font size presets on keys 1 to 4.
var quickSizes = [...]int{10, 16, 24, 36}

// palette is cycled by the 'o' key.
var palette = []scrawl.RGB{
	scrawl.DefaultColor,
	{R: 255, G: 214, B: 0},
	{R: 79, G: 195, B: 247},
	{R: 129, G: 199, B: 132},
	{R: 255, G: 255, B: 255},
	{R: 0, G: 0, B: 0},
}

// pixel maps a canvas cell to the pixel at its center.
func (ui *UI) pixel(cx, cy int) scrawl.Point {
	s := float64(ui.scale)
	return scrawl.Pt(float64(cx)*s+s/2, float64(cy-1)*2*s+s)
}

func (ui *UI) onCanvas(cy int) bool {
	return cy >= 1 && cy < ui.rows-1
}

// mouse handles a mouse event. Terminals report no key releases, so the
// Ctrl and Shift modifiers of mouse events drive eraser and line forcing.
func (ui *UI) mouse(ev *tcell.EventMouse) scrawl.Effect {
	eff := ui.modifiers(ev.Modifiers())
	cx, cy := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !ui.pressed:
		ui.pressed = true
		if cy == 0 {
			return eff | ui.toolbarClick(cx)
		}
		if !ui.onCanvas(cy) {
			return eff
		}
		return eff | ui.o.PointerDown(ui.pixel(cx, cy))
	case !down && ui.pressed:
		ui.pressed = false
		return eff | ui.o.PointerUp(ui.pixel(cx, cy))
	case !ui.onCanvas(cy) && !ui.o.Drawing():
		return eff | ui.o.PointerLeave()
	default:
		return eff | ui.o.PointerMove(ui.pixel(cx, cy))
	}
}

// modifiers turns changes of the held modifiers into key events.
func (ui *UI) modifiers(m tcell.ModMask) scrawl.Effect {
	var eff scrawl.Effect
	changed := m ^ ui.mods
	ui.mods = m
	for _, k := range []struct {
		mask tcell.ModMask
		key  scrawl.Key
		mod  scrawl.Modifiers
	}{
		{tcell.ModCtrl, scrawl.KeyControl, scrawl.ModCtrl},
		{tcell.ModShift, scrawl.KeyShift, scrawl.ModShift},
	} {
		if changed&k.mask == 0 {
			continue
		}
		if m&k.mask != 0 {
			eff |= ui.o.KeyDown(k.key, k.mod)
		} else {
			eff |= ui.o.KeyUp(k.key, 0)
		}
	}
	return eff
}

// key handles a key press.
func (ui *UI) key(ev *tcell.EventKey) scrawl.Effect {
	if _, ok := ui.o.PendingText(); ok {
		return ui.textKey(ev)
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		return ui.o.KeyDown(scrawl.KeyEscape, 0)
	case tcell.KeyCtrlZ:
		return ui.o.KeyDown('z', scrawl.ModCtrl)
	case tcell.KeyCtrlS:
		return ui.export()
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return ui.o.KeyDown('q', scrawl.ModCtrl)
	case tcell.KeyRune:
		return ui.runeKey(ev.Rune())
	}
	return 0
}

func (ui *UI) runeKey(r rune) scrawl.Effect {
	st := ui.o.Style()
	switch r {
	case 'p':
		return ui.o.SetTool(scrawl.ToolPen)
	case 'r':
		return ui.o.SetTool(scrawl.ToolRect)
	case 'e':
		return ui.o.SetTool(scrawl.ToolEllipse)
	case 'l':
		return ui.o.SetTool(scrawl.ToolLine)
	case 'a':
		return ui.o.SetTool(scrawl.ToolArrow)
	case 't':
		return ui.o.SetTool(scrawl.ToolText)
	case 'f':
		return ui.o.ToggleFill()
	case 'h':
		return ui.o.ToggleHighlighter()
	case 'x':
		return ui.o.ToggleEraser()
	case '+', '=':
		return ui.o.SetWidth(st.Width + 1)
	case '-':
		return ui.o.SetWidth(st.Width - 1)
	case ']':
		return ui.o.SetFontSize(st.Font.Size + 2)
	case '[':
		return ui.o.SetFontSize(st.Font.Size - 2)
	case 'o':
		return ui.o.SetColor(nextColor(st.Color))
	case '1', '2', '3', '4':
		return ui.o.QuickSize(quickSizes[r-'1'])
	}
	return ui.o.KeyDown(scrawl.Key(r), 0)
}

// textKey edits the pending text entry. Enter commits, Ctrl+J starts a new
// line, Escape cancels and Backspace removes one grapheme cluster.
func (ui *UI) textKey(ev *tcell.EventKey) scrawl.Effect {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ui.o.KeyDown(scrawl.KeyEscape, 0)
	case tcell.KeyEnter:
		return ui.o.CommitText()
	case tcell.KeyCtrlJ:
		ui.text += "\n"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ui.text = dropLastGrapheme(ui.text)
	case tcell.KeyRune:
		ui.text += string(ev.Rune())
	default:
		return 0
	}
	return ui.o.UpdateText(ui.text)
}

// dropLastGrapheme removes the last user-perceived character of s.
func dropLastGrapheme(s string) string {
	last := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		last, _ = gr.Positions()
	}
	return s[:last]
}

func nextColor(c scrawl.RGB) scrawl.RGB {
	for i, p := range palette {
		if p == c {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}
