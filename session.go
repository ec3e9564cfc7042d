package scrawl

import (
	"image"
	"image/color"

	"github.com/gogpu/scrawl/internal/stroke"
)

// session is one pointer-down to pointer-up interaction. The style is
// captured when the session starts and does not change while it runs.
type session interface {
	// move handles a pointer move while the button is held.
	move(p Point)

	// finish handles pointer-up and applies the result to the canvas.
	finish(p Point)

	// layer returns the transient layer drawn above the canvas, or nil.
	layer() *Surface

	// preview draws the live shape preview onto the frame.
	preview(frame *Surface)
}

// newSession picks the session type for the style:
//
//	pen or text, eraser      eraserSession   dabs straight onto the canvas
//	pen                      freehandSession transient layer, merged on release
//	rect, ellipse, line,
//	arrow (any flags)        shapeSession    preview only, drawn on release
//
// The text tool without the eraser never starts a session; it opens a
// pending text entry instead.
func newSession(o *Overlay, st ToolState, anchor Point) session {
	switch st.Tool {
	case ToolPen, ToolText:
		if st.Eraser {
			s := &eraserSession{o: o, width: st.Width}
			s.dab(anchor)
			return s
		}
		return newFreehandSession(o, st, anchor)
	default:
		return &shapeSession{o: o, st: st, anchor: anchor, cur: anchor}
	}
}

// freehandSession draws a pen or highlighter path into a transient layer.
// Every move clears the layer and rasterizes the whole path again as one
// outline, so joins between pointer samples never show seams.
type freehandSession struct {
	o     *Overlay
	pts   []Point
	style stroke.Style
	ink   color.NRGBA
	surf  *Surface
	dirty image.Rectangle
}

func newFreehandSession(o *Overlay, st ToolState, anchor Point) *freehandSession {
	s := &freehandSession{
		o:     o,
		pts:   []Point{anchor},
		style: stroke.Style{Width: float64(st.Width), Cap: stroke.LineCapRound},
		ink:   st.Color.WithAlpha(st.inkAlpha()),
		surf:  NewSurface(o.canvas.Width(), o.canvas.Height()),
	}
	s.redraw()
	return s
}

func (s *freehandSession) redraw() {
	s.surf.clearRect(s.dirty)
	s.dirty = s.o.paint.stroke(s.surf, s.pts, false, s.style, s.ink, CompositeOver)
}

func (s *freehandSession) move(p Point) {
	if p.Distance(s.pts[len(s.pts)-1]) < 1e-3 {
		return
	}
	s.pts = append(s.pts, p)
	s.redraw()
}

func (s *freehandSession) finish(p Point) {
	s.move(p)
	s.o.canvas.CompositeOver(s.surf, 0, 0)
	Logger().Debug("scrawl: freehand stroke merged", "points", len(s.pts), "alpha", s.ink.A)
}

func (s *freehandSession) layer() *Surface { return s.surf }

func (s *freehandSession) preview(*Surface) {}

// eraserSession clears a dab around every pointer position straight on
// the canvas.
type eraserSession struct {
	o     *Overlay
	width int
}

func (s *eraserSession) dab(p Point) {
	s.o.paint.fill(s.o.canvas, color.NRGBA{}, CompositeClear, dab(p, s.width))
}

func (s *eraserSession) move(p Point) { s.dab(p) }

func (s *eraserSession) finish(Point) {}

func (s *eraserSession) layer() *Surface { return nil }

func (s *eraserSession) preview(*Surface) {}

// shapeSession tracks the drag rectangle of rect, ellipse, line and arrow
// tools. Nothing touches the canvas until pointer-up.
type shapeSession struct {
	o           *Overlay
	st          ToolState
	anchor, cur Point
}

func (s *shapeSession) move(p Point) { s.cur = p }

func (s *shapeSession) finish(p Point) {
	s.cur = p
	s.o.drawShape(s.o.canvas, s.st, s.anchor, s.cur)
	Logger().Debug("scrawl: shape finalized", "tool", s.st.Tool, "eraser", s.st.Eraser,
		"highlighter", s.st.Highlighter, "fill", s.st.Fill)
}

func (s *shapeSession) layer() *Surface { return nil }

func (s *shapeSession) preview(frame *Surface) {
	if s.st.Eraser {
		s.o.drawEraserPreview(frame, s.st, s.anchor, s.cur)
		return
	}
	s.o.drawShape(frame, s.st, s.anchor, s.cur)
}
