package stroke

import (
	"math"
	"testing"
)

// contours flattens an outline into closed polygons, sampling cubics.
func contours(els []PathElement) [][]Point {
	var out [][]Point
	var cur []Point
	flush := func() {
		if len(cur) > 2 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, el := range els {
		switch e := el.(type) {
		case MoveTo:
			flush()
			cur = []Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		case CubicTo:
			p0 := cur[len(cur)-1]
			for i := 1; i <= 16; i++ {
				t := float64(i) / 16
				u := 1 - t
				cur = append(cur, Point{
					X: u*u*u*p0.X + 3*u*u*t*e.Control1.X + 3*u*t*t*e.Control2.X + t*t*t*e.Point.X,
					Y: u*u*u*p0.Y + 3*u*u*t*e.Control1.Y + 3*u*t*t*e.Control2.Y + t*t*t*e.Point.Y,
				})
			}
		case Close:
			flush()
		}
	}
	flush()
	return out
}

// winding returns the winding number of the outline around p.
func winding(els []PathElement, p Point) int {
	w := 0
	for _, poly := range contours(els) {
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			side := (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
			switch {
			case a.Y <= p.Y && b.Y > p.Y && side > 0:
				w++
			case a.Y > p.Y && b.Y <= p.Y && side < 0:
				w--
			}
		}
	}
	return w
}

func inside(els []PathElement, p Point) bool {
	return winding(els, p) != 0
}

func TestExpandSimpleLine(t *testing.T) {
	els := Expand([]Point{{0, 0}, {10, 0}}, false, Style{Width: 2, Cap: LineCapButt})
	if len(els) < 4 {
		t.Fatalf("len(Expand) = %d, want at least 4", len(els))
	}
	if _, ok := els[0].(MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", els[0])
	}
	if _, ok := els[len(els)-1].(Close); !ok {
		t.Errorf("last element = %T, want Close", els[len(els)-1])
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{5, 0}, true},
		{Point{5, 0.9}, true},
		{Point{5, -0.9}, true},
		{Point{5, 1.1}, false},
		{Point{-0.1, 0}, false},
		{Point{10.1, 0}, false},
	}
	for _, tt := range tests {
		if got := inside(els, tt.p); got != tt.want {
			t.Errorf("inside(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestExpandCaps(t *testing.T) {
	line := []Point{{0, 100}, {200, 100}}
	tests := []struct {
		name string
		cap  LineCap
		p    Point
		want bool
	}{
		{"round start", LineCapRound, Point{-4.5, 100}, true},
		{"round start corner", LineCapRound, Point{-4.5, 104.5}, false},
		{"round end", LineCapRound, Point{204.5, 100}, true},
		{"square start corner", LineCapSquare, Point{-4.5, 104.5}, true},
		{"square end corner", LineCapSquare, Point{204.5, 95.5}, true},
		{"past square end", LineCapSquare, Point{205.5, 100}, false},
		{"butt end", LineCapButt, Point{200.5, 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			els := Expand(line, false, Style{Width: 10, Cap: tt.cap})
			if got := inside(els, tt.p); got != tt.want {
				t.Errorf("inside(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// TestExpandRoundJoins turns both ways: the arc must land on the outer
// side of the turn and the inner side must stay filled.
func TestExpandRoundJoins(t *testing.T) {
	tests := []struct {
		name  string
		pts   []Point
		outer Point // just inside the arc
		miss  Point // beyond the arc
		inner Point // inner corner
	}{
		{"turn down", []Point{{10, 100}, {50, 100}, {50, 140}}, Point{51.3, 98.7}, Point{51.8, 98.2}, Point{48.5, 101.5}},
		{"turn up", []Point{{10, 100}, {50, 100}, {50, 60}}, Point{51.3, 101.3}, Point{51.8, 101.8}, Point{48.5, 98.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			els := Expand(tt.pts, false, Style{Width: 4, Cap: LineCapRound})
			if !inside(els, tt.outer) {
				t.Errorf("outer corner %v not covered", tt.outer)
			}
			if inside(els, tt.miss) {
				t.Errorf("%v beyond the join radius is covered", tt.miss)
			}
			if winding(els, tt.inner) == 0 {
				t.Errorf("inner corner %v has winding 0", tt.inner)
			}
		})
	}
}

// TestExpandWindingNeverCancels checks that a path doubling back on itself
// winds one way everywhere, so no covered point is cancelled out.
func TestExpandWindingNeverCancels(t *testing.T) {
	pts := []Point{{20, 100}, {180, 100}, {20, 101}, {180, 102}, {100, 60}}
	els := Expand(pts, false, Style{Width: 20, Cap: LineCapRound})
	sign := 0
	for y := 50.5; y < 120; y += 1 {
		for x := 5.5; x < 195; x += 1 {
			w := winding(els, Point{x, y})
			if w == 0 {
				continue
			}
			s := 1
			if w < 0 {
				s = -1
			}
			if sign == 0 {
				sign = s
			}
			if s != sign {
				t.Fatalf("winding at (%v,%v) = %d, opposite to the rest of the stroke", x, y, w)
			}
		}
	}
	if !inside(els, Point{100, 101}) {
		t.Error("overlapped middle not covered")
	}
}

func TestExpandCollinearSameOutline(t *testing.T) {
	a, b := Point{10, 13}, Point{100, 50}
	single := Expand([]Point{a, b}, false, Style{Width: 4, Cap: LineCapRound})
	pts := []Point{a}
	for i := 1; i <= 10; i++ {
		pts = append(pts, a.Lerp(b, float64(i)/10))
	}
	multi := Expand(pts, false, Style{Width: 4, Cap: LineCapRound})

	for y := 5.25; y < 60; y += 0.5 {
		for x := 2.25; x < 110; x += 0.5 {
			p := Point{x, y}
			if inside(single, p) != inside(multi, p) {
				t.Fatalf("coverage differs at %v", p)
			}
		}
	}
}

func TestExpandClosed(t *testing.T) {
	rect := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	els := Expand(rect, true, Style{Width: 2, Cap: LineCapRound})

	closes := 0
	for _, el := range els {
		if _, ok := el.(Close); ok {
			closes++
		}
	}
	if closes != 2 {
		t.Errorf("closed outline has %d contours, want 2", closes)
	}
	if !inside(els, Point{0, 5}) {
		t.Error("closing edge not covered")
	}
	if !inside(els, Point{-0.6, -0.6}) {
		t.Error("rounded corner not covered")
	}
	if inside(els, Point{5, 5}) {
		t.Error("interior of outline must stay empty")
	}

	// A repeated first point does not add a zero-length closing segment.
	again := Expand(append(rect, rect[0]), true, Style{Width: 2, Cap: LineCapRound})
	if len(again) != len(els) {
		t.Errorf("len with repeated start = %d, want %d", len(again), len(els))
	}
}

func TestExpandDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		pts    []Point
		style  Style
		empty  bool
		center bool
	}{
		{"empty", nil, Style{Width: 4, Cap: LineCapRound}, true, false},
		{"zero width", []Point{{3, 3}, {5, 5}}, Style{Width: 0, Cap: LineCapRound}, true, false},
		{"round dot", []Point{{3, 3}}, Style{Width: 4, Cap: LineCapRound}, false, true},
		{"square dot", []Point{{3, 3}, {3, 3}}, Style{Width: 4, Cap: LineCapSquare}, false, true},
		{"butt dot", []Point{{3, 3}}, Style{Width: 4, Cap: LineCapButt}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			els := Expand(tt.pts, false, tt.style)
			if got := len(els) == 0; got != tt.empty {
				t.Errorf("empty = %v, want %v", got, tt.empty)
			}
			if got := inside(els, Point{3, 3}); got != tt.center {
				t.Errorf("center covered = %v, want %v", got, tt.center)
			}
		})
	}
	if inside(Expand([]Point{{3, 3}}, false, Style{Width: 4, Cap: LineCapRound}), Point{4.6, 4.6}) {
		t.Error("round dot covers the corner of its box")
	}
}

func TestArcEndpoints(t *testing.T) {
	out := newPathBuilder()
	out.moveTo(Point{10, 0})
	arc(out, Point{0, 0}, Vec2{X: 10}, -math.Pi/2)
	end := out.current
	if math.Abs(end.X) > 1e-9 || math.Abs(end.Y+10) > 1e-9 {
		t.Errorf("arc end = %v, want (0,-10)", end)
	}
	if n := len(out.elements); n != 2 {
		t.Errorf("quarter arc emitted %d elements, want 2", n)
	}
}

func TestEllipseWithinTolerance(t *testing.T) {
	c := Point{100, 100}
	poly := Ellipse(c, 80, 40)
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		mid := p.Lerp(q, 0.5)
		// Distance of the chord midpoint from the ellipse, in normalized units.
		dx, dy := (mid.X-c.X)/80, (mid.Y-c.Y)/40
		r := math.Hypot(dx, dy)
		if 1-r > DefaultTolerance/40+1e-9 {
			t.Fatalf("chord %d deviates by %.4f", i, 1-r)
		}
	}
	if Ellipse(c, 0, 10) != nil {
		t.Error("Ellipse with zero radius should be nil")
	}
}

func TestArcSegmentsBounds(t *testing.T) {
	if got := arcSegments(0.1, 2*math.Pi); got != 8 {
		t.Errorf("arcSegments(tiny) = %d, want 8", got)
	}
	if got := arcSegments(1e6, 2*math.Pi); got != 512 {
		t.Errorf("arcSegments(huge) = %d, want 512", got)
	}
}
