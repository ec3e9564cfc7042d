package scrawl

import (
	"strings"

	"github.com/gogpu/scrawl/internal/raster"
	"github.com/gogpu/scrawl/text"
)

// TextEntry is text being typed at a point. The front-end edits Text; the
// overlay rasterizes it on commit. Pos is the baseline origin of the first
// line.
type TextEntry struct {
	Pos   Point
	Font  TextStyle
	Color RGB
	Alpha uint8
	Text  string
}

// PendingText returns the open text entry, if any.
func (o *Overlay) PendingText() (TextEntry, bool) {
	if o.pending == nil {
		return TextEntry{}, false
	}
	return *o.pending, true
}

// UpdateText replaces the text of the pending entry. Without a pending
// entry it does nothing.
func (o *Overlay) UpdateText(s string) Effect {
	if o.pending == nil {
		return 0
	}
	o.pending.Text = s
	return EffectRedraw
}

// CommitText closes the pending entry. If its text is not blank a history
// snapshot is pushed and the trimmed text is drawn onto the canvas, one
// baseline per line. Blank text closes the entry without touching the
// canvas or the history.
func (o *Overlay) CommitText() Effect {
	e := o.pending
	if e == nil {
		return 0
	}
	o.pending = nil
	s := strings.TrimSpace(e.Text)
	if s == "" {
		return EffectRedraw
	}
	o.history.Push(o.canvas)
	o.drawText(o.canvas, *e, s)
	Logger().Debug("scrawl: text committed", "lines", len(text.Lines(s)), "family", e.Font.Family, "size", e.Font.Size)
	return EffectRedraw
}

// CancelText discards the pending entry without touching the canvas.
func (o *Overlay) CancelText() Effect {
	if o.pending == nil {
		return 0
	}
	o.pending = nil
	return EffectRedraw
}

func (o *Overlay) openText(p Point) {
	o.pending = &TextEntry{
		Pos:   p,
		Font:  o.state.Font,
		Color: o.state.Color,
		Alpha: o.state.inkAlpha(),
	}
}

// face returns the font for a text style.
func (o *Overlay) face(ts TextStyle) (*text.Face, error) {
	return o.fonts.Face(ts.Family, text.PointsToPixels(float64(ts.Size)))
}

// drawText fills the outlines of s onto dst.
func (o *Overlay) drawText(dst *Surface, e TextEntry, s string) {
	face, err := o.face(e.Font)
	if err != nil {
		Logger().Warn("scrawl: no usable font", "family", e.Font.Family, "err", err)
		return
	}
	var path raster.Path
	face.Draw(&path, s, e.Pos.X, e.Pos.Y)
	if path.Empty() {
		return
	}
	o.paint.path(dst, &path, e.Color.WithAlpha(e.Alpha))
}
