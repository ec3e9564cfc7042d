package term

import (
	"github.com/gogpu/scrawl"
)

// button is a toolbar entry.
type button struct {
	label  string
	action func(ui *UI) scrawl.Effect
	active func(st scrawl.ToolState) bool
}

func toolButton(label string, t scrawl.Tool) button {
	return button{
		label:  label,
		action: func(ui *UI) scrawl.Effect { return ui.o.SetTool(t) },
		active: func(st scrawl.ToolState) bool { return st.Tool == t },
	}
}

var buttons = []button{
	toolButton("Pen", scrawl.ToolPen),
	toolButton("Rect", scrawl.ToolRect),
	toolButton("Ellipse", scrawl.ToolEllipse),
	toolButton("Line", scrawl.ToolLine),
	toolButton("Arrow", scrawl.ToolArrow),
	toolButton("Text", scrawl.ToolText),
	{
		label:  "Fill",
		action: func(ui *UI) scrawl.Effect { return ui.o.ToggleFill() },
		active: func(st scrawl.ToolState) bool { return st.Fill },
	},
	{
		label:  "Highlight",
		action: func(ui *UI) scrawl.Effect { return ui.o.ToggleHighlighter() },
		active: func(st scrawl.ToolState) bool { return st.Highlighter },
	},
	{
		label:  "Eraser",
		action: func(ui *UI) scrawl.Effect { return ui.o.ToggleEraser() },
		active: func(st scrawl.ToolState) bool { return st.Eraser },
	},
	{label: "Undo", action: func(ui *UI) scrawl.Effect { return ui.o.Undo() }},
	{label: "Clear", action: func(ui *UI) scrawl.Effect { return ui.o.Clear() }},
	{label: "Save", action: func(ui *UI) scrawl.Effect { return ui.export() }},
	{label: "Quit", action: func(*UI) scrawl.Effect { return scrawl.EffectQuit }},
}

// span is the column range [x0, x1) of a toolbar button.
type span struct {
	x0, x1 int
	b      *button
}

// layout places the buttons left to right, one space apart.
func layout() []span {
	spans := make([]span, len(buttons))
	x := 1
	for i := range buttons {
		w := len(buttons[i].label) + 2
		spans[i] = span{x0: x, x1: x + w, b: &buttons[i]}
		x += w + 1
	}
	return spans
}

// toolbarClick runs the button under column x, if any.
func (ui *UI) toolbarClick(x int) scrawl.Effect {
	for _, s := range layout() {
		if x >= s.x0 && x < s.x1 {
			return s.b.action(ui)
		}
	}
	return 0
}
