package term

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/gogpu/scrawl"
)

// backdrop stands in for the screen under the transparent overlay.
var backdrop = color.NRGBA{R: 30, G: 30, B: 30, A: 255}

var (
	barStyle    = tcell.StyleDefault.Background(tcell.NewRGBColor(26, 29, 38)).Foreground(tcell.NewRGBColor(224, 224, 224))
	activeStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(62, 68, 96)).Foreground(tcell.ColorWhite).Bold(true)
	warnStyle   = barStyle.Foreground(tcell.NewRGBColor(239, 83, 80))
)

// draw renders the toolbar, the canvas and the status line.
func (ui *UI) draw() {
	ui.drawToolbar()
	ui.drawCanvas(ui.o.Render())
	ui.drawStatus()
	ui.screen.Show()
}

func (ui *UI) drawToolbar() {
	fill(ui.screen, 0, ui.cols, barStyle)
	st := ui.o.Style()
	for _, s := range layout() {
		style := barStyle
		if s.b.active != nil && s.b.active(st) {
			style = activeStyle
		}
		putString(ui.screen, s.x0, 0, " "+s.b.label+" ", style)
	}
}

func (ui *UI) drawCanvas(frame *image.NRGBA) {
	s := ui.scale
	for cy := 1; cy < ui.rows-1; cy++ {
		y := (cy - 1) * 2 * s
		for cx := 0; cx < ui.cols; cx++ {
			x := cx * s
			top := blockColor(frame, image.Rect(x, y, x+s, y+s))
			bot := blockColor(frame, image.Rect(x, y+s, x+s, y+2*s))
			style := tcell.StyleDefault.Foreground(top).Background(bot)
			ui.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func (ui *UI) drawStatus() {
	y := ui.rows - 1
	fill(ui.screen, y, ui.cols, barStyle)
	putString(ui.screen, 1, y, ui.statusText(), barStyle)

	if n, ok := ui.o.Notice(); ok {
		style := barStyle
		if n.Level == scrawl.NoticeWarning {
			style = warnStyle
		}
		x := ui.cols - uniseg.StringWidth(n.Message) - 1
		putString(ui.screen, max(x, 1), y, n.Message, style)
	}
}

// statusText describes the style, or the pending text while typing.
func (ui *UI) statusText() string {
	if e, ok := ui.o.PendingText(); ok {
		shown := strings.ReplaceAll(e.Text, "\n", "⏎")
		return fmt.Sprintf("Text: %s▏ Enter commit · Ctrl+J newline · Esc cancel", shown)
	}
	st := ui.o.Style()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %dpx %s", st.Tool, st.Width, st.Color)
	for _, f := range []struct {
		on   bool
		name string
	}{{st.Fill, "fill"}, {st.Highlighter, "highlight"}, {st.Eraser, "eraser"}} {
		if f.on {
			b.WriteString(" " + f.name)
		}
	}
	fmt.Fprintf(&b, " │ %s %dpt", st.Font.Family, st.Font.Size)
	return b.String()
}

// blockColor averages the pixels of r composited over the backdrop.
func blockColor(img *image.NRGBA, r image.Rectangle) tcell.Color {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return tcell.NewRGBColor(int32(backdrop.R), int32(backdrop.G), int32(backdrop.B))
	}
	var sr, sg, sb, n int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			a, ia := int(c.A), 255-int(c.A)
			sr += (int(c.R)*a + int(backdrop.R)*ia) / 255
			sg += (int(c.G)*a + int(backdrop.G)*ia) / 255
			sb += (int(c.B)*a + int(backdrop.B)*ia) / 255
			n++
		}
	}
	return tcell.NewRGBColor(int32(sr/n), int32(sg/n), int32(sb/n))
}

func fill(s tcell.Screen, y, cols int, style tcell.Style) {
	for x := 0; x < cols; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// putString writes str at (x, y) one grapheme cluster per cell group and
// returns the column after it.
func putString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		runes := gr.Runes()
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += max(gr.Width(), 1)
	}
	return x
}
