package scrawl

import (
	"image"
	"math"

	"github.com/gogpu/scrawl/internal/stroke"
	"github.com/gogpu/scrawl/text"
)

// minUnderline is the shortest underline of a pending text entry, so an
// empty entry still shows where typing will appear.
const minUnderline = 40

// Render composites a frame: the canvas, the transient layer of a freehand
// session, the cursor indicator, the pending text and the live shape
// preview, in that order. The returned image is reused by the next call.
func (o *Overlay) Render() *image.NRGBA {
	o.frame.CopyFrom(o.canvas)
	if o.sess != nil {
		if l := o.sess.layer(); l != nil {
			o.frame.CompositeOver(l, 0, 0)
		}
	}
	o.renderCursor(o.frame)
	o.renderPendingText(o.frame)
	if o.sess != nil {
		o.sess.preview(o.frame)
	}
	return o.frame.Image()
}

// cursorVisible reports whether the cursor indicator is drawn: the eraser
// shows a dashed ring and the highlighter pen a translucent disc.
func (o *Overlay) cursorVisible() bool {
	if !o.hovered || o.cursor.Y <= o.opts.toolbarHeight {
		return false
	}
	return o.state.Eraser || (o.state.Highlighter && o.state.Tool == ToolPen)
}

func (o *Overlay) renderCursor(dst *Surface) {
	if !o.cursorVisible() {
		return
	}
	r := cursorRadius(o.state.Width)
	c := o.cursor.internal()
	if o.state.Eraser {
		ring := make([]Point, 0, 64)
		for _, p := range stroke.EllipseOutline(c, r, r) {
			ring = append(ring, fromInternal(p))
		}
		o.paint.dashed(dst, ring, previewLineWidth, eraserCursorRing)
		return
	}
	o.paint.fill(dst, o.state.Color.WithAlpha(HighlightAlpha), CompositeOver, stroke.Circle(c, r))
}

// renderPendingText previews the text entry and underlines the line the
// text is typed on.
func (o *Overlay) renderPendingText(dst *Surface) {
	e := o.pending
	if e == nil {
		return
	}
	face, err := o.face(e.Font)
	if err != nil {
		return
	}
	if e.Text != "" {
		o.drawText(dst, *e, e.Text)
	}

	lines := text.Lines(e.Text)
	width := float64(minUnderline)
	for _, l := range lines {
		width = math.Max(width, face.Measure(l))
	}
	m := face.Metrics()
	y := e.Pos.Y + float64(len(lines)-1)*m.LineHeight + math.Max(m.Descent/2, 2)
	underline := []Point{{X: e.Pos.X, Y: y}, {X: e.Pos.X + width, Y: y}}
	o.paint.stroke(dst, underline, false, stroke.Style{Width: 1, Cap: stroke.LineCapButt},
		e.Color.WithAlpha(e.Alpha), CompositeOver)
}
