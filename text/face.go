package text

import (
	"strings"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// PathSink receives glyph outlines. Coordinates are in pixels with Y
// growing downward. Each contour starts with MoveTo and ends with Close.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubeTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Metrics holds vertical font metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the tallest
	// glyphs. Positive.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// lowest glyphs. Positive.
	Descent float64

	// LineHeight is the recommended distance between consecutive baselines.
	LineHeight float64
}

// Glyph is a shaped glyph positioned relative to the line origin.
type Glyph struct {
	ID      sfnt.GlyphIndex
	X, Y    float64 // offset from the pen origin, Y down
	Advance float64
}

// Face is a font at a specific pixel size.
//
// Face reuses internal buffers and is not safe for concurrent use.
// Create one Face per goroutine from the shared FontSource.
type Face struct {
	src     *FontSource
	size    float64
	ppem    fixed.Int26_6
	shape   *gtfont.Face
	hb      shaping.HarfbuzzShaper
	buf     sfnt.Buffer
	metrics Metrics
}

func newFace(src *FontSource, px float64) *Face {
	f := &Face{
		src:   src,
		size:  px,
		ppem:  floatToFixed(px),
		shape: gtfont.NewFace(src.shaper),
	}
	if m, err := src.sfnt.Metrics(&f.buf, f.ppem, font.HintingNone); err == nil {
		f.metrics = Metrics{
			Ascent:     fixedToFloat(m.Ascent),
			Descent:    fixedToFloat(m.Descent),
			LineHeight: fixedToFloat(m.Height),
		}
	}
	if f.metrics.LineHeight <= 0 {
		f.metrics.LineHeight = px * 1.2
	}
	return f
}

// Size returns the size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics { return f.metrics }

// Shape converts a single line of text into positioned glyphs.
func (f *Face) Shape(line string) []Glyph {
	runes := []rune(normalize(line))
	if len(runes) == 0 {
		return nil
	}
	out := f.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.shape,
		Size:      f.ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // glyph ids of TrueType fonts fit in 16 bits
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return glyphs
}

// Measure returns the advance width of a single line of text.
func (f *Face) Measure(line string) float64 {
	var w float64
	for _, g := range f.Shape(line) {
		w += g.Advance
	}
	return w
}

// Lines splits text into the lines Draw renders.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// Draw emits the outlines of s into dst. The first baseline starts at
// (x, y); each following line moves down by the line height.
// Glyphs without an outline (spaces, color glyphs) are skipped.
func (f *Face) Draw(dst PathSink, s string, x, y float64) {
	for i, line := range Lines(s) {
		by := y + float64(i)*f.metrics.LineHeight
		for _, g := range f.Shape(line) {
			f.drawGlyph(dst, g, x+g.X, by+g.Y)
		}
	}
}

func (f *Face) drawGlyph(dst PathSink, g Glyph, ox, oy float64) {
	segs, err := f.src.sfnt.LoadGlyph(&f.buf, g.ID, f.ppem, nil)
	if err != nil || len(segs) == 0 {
		return
	}
	pt := func(p fixed.Point26_6) (float64, float64) {
		return ox + fixedToFloat(p.X), oy + fixedToFloat(p.Y)
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				dst.Close()
			}
			x, y := pt(seg.Args[0])
			dst.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			dst.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			dst.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			dst.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		dst.Close()
	}
}

// normalize composes the text (NFC) so that decomposed input such as
// "e" + U+0301 shapes to the precomposed glyph. Tabs become spaces.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	return norm.NFC.String(s)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// PointsToPixels converts a font size in points to pixels at 96 dpi.
func PointsToPixels(pt float64) float64 {
	return pt * 96 / 72
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
