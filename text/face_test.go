package text

import (
	"math"
	"testing"
)

// recorder is a PathSink that counts contours and tracks bounds.
type recorder struct {
	moves, closes int
	minX, minY    float64
	maxX, maxY    float64
}

func newRecorder() *recorder {
	return &recorder{minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}
}

func (r *recorder) pt(x, y float64) {
	r.minX, r.minY = math.Min(r.minX, x), math.Min(r.minY, y)
	r.maxX, r.maxY = math.Max(r.maxX, x), math.Max(r.maxY, y)
}

func (r *recorder) MoveTo(x, y float64)             { r.moves++; r.pt(x, y) }
func (r *recorder) LineTo(x, y float64)             { r.pt(x, y) }
func (r *recorder) QuadTo(_, _, x, y float64)       { r.pt(x, y) }
func (r *recorder) CubeTo(_, _, _, _, x, y float64) { r.pt(x, y) }
func (r *recorder) Close()                          { r.closes++ }

func sansFace(t *testing.T, px float64) *Face {
	t.Helper()
	f, err := NewRegistry().Face("Sans", px)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	return f
}

func TestFaceMetrics(t *testing.T) {
	m := sansFace(t, 32).Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics: got ascent %v descent %v, want both positive", m.Ascent, m.Descent)
	}
	if m.LineHeight < m.Ascent+m.Descent-1 {
		t.Errorf("LineHeight %v smaller than ascent+descent %v", m.LineHeight, m.Ascent+m.Descent)
	}
}

func TestFaceShape(t *testing.T) {
	f := sansFace(t, 32)
	glyphs := f.Shape("Hi!")
	if len(glyphs) != 3 {
		t.Fatalf("Shape: got %d glyphs, want 3", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v not after glyph %d at x=%v", i, glyphs[i].X, i-1, glyphs[i-1].X)
		}
	}
	if f.Shape("") != nil {
		t.Error("Shape(\"\") should return nil")
	}
	if w := f.Measure("Hi!"); w <= 0 {
		t.Errorf("Measure: got %v, want > 0", w)
	}
	if a, b := f.Measure("WWW"), f.Measure("iii"); a <= b {
		t.Errorf("Measure(WWW)=%v should exceed Measure(iii)=%v", a, b)
	}
}

func TestFaceShapeNormalizes(t *testing.T) {
	f := sansFace(t, 24)
	composed := f.Shape("\u00e9")
	decomposed := f.Shape("e\u0301")
	if len(composed) != 1 || len(decomposed) != 1 {
		t.Fatalf("got %d and %d glyphs, want 1 and 1", len(composed), len(decomposed))
	}
	if composed[0].ID != decomposed[0].ID {
		t.Errorf("glyph ids differ: %d vs %d", composed[0].ID, decomposed[0].ID)
	}
}

func TestFaceDraw(t *testing.T) {
	f := sansFace(t, 40)
	r := newRecorder()
	f.Draw(r, "o", 100, 200)

	// "o" has an outer and an inner contour.
	if r.moves != 2 || r.closes != 2 {
		t.Errorf("contours: got %d moves %d closes, want 2 and 2", r.moves, r.closes)
	}
	if r.maxY > 201 || r.minY < 200-f.Metrics().Ascent {
		t.Errorf("vertical extent [%v, %v] outside [baseline-ascent, baseline]", r.minY, r.maxY)
	}
	if r.minX < 100 || r.maxX > 100+f.Measure("o") {
		t.Errorf("horizontal extent [%v, %v] outside advance box", r.minX, r.maxX)
	}
}

func TestFaceDrawMultiline(t *testing.T) {
	f := sansFace(t, 20)
	one, two := newRecorder(), newRecorder()
	f.Draw(one, "x", 0, 50)
	f.Draw(two, "x\r\nx", 0, 50)

	if two.moves != 2*one.moves {
		t.Errorf("two lines: got %d contours, want %d", two.moves, 2*one.moves)
	}
	lh := f.Metrics().LineHeight
	if d := two.maxY - one.maxY; math.Abs(d-lh) > 1e-9 {
		t.Errorf("second line offset: got %v, want line height %v", d, lh)
	}
}

func TestFaceDrawSpacesOnly(t *testing.T) {
	r := newRecorder()
	sansFace(t, 20).Draw(r, "  \t ", 0, 0)
	if r.moves != 0 {
		t.Errorf("whitespace produced %d contours", r.moves)
	}
}

func TestLines(t *testing.T) {
	got := Lines("a\r\nb\nc")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Lines: got %q", got)
	}
}

func TestPointsToPixels(t *testing.T) {
	if got := PointsToPixels(24); got != 32 {
		t.Errorf("PointsToPixels(24) = %v, want 32", got)
	}
}
