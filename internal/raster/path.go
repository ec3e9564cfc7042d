package raster

import (
	"image"
	"math"

	"github.com/gogpu/scrawl/internal/stroke"
)

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
	opCubic
	opClose
)

type pathOp struct {
	kind opKind
	pts  [6]float32
}

type point struct{ X, Y float64 }

// Path is a sequence of contours that may contain Bézier curves.
// It holds glyph outlines and stroke outlines, which FillPath rasterizes
// in one pass.
type Path struct {
	ops    []pathOp
	lo, hi point
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.add(opMove, x, y)
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.add(opLine, x, y)
}

// QuadTo adds a quadratic Bézier curve with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.add(opQuad, cx, cy, x, y)
}

// CubeTo adds a cubic Bézier curve with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.add(opCubic, c1x, c1y, c2x, c2y, x, y)
}

// Close closes the current contour.
func (p *Path) Close() {
	p.ops = append(p.ops, pathOp{kind: opClose})
}

// AppendOutline appends a stroke outline produced by stroke.Expand.
func (p *Path) AppendOutline(els []stroke.PathElement) {
	for _, el := range els {
		switch e := el.(type) {
		case stroke.MoveTo:
			p.MoveTo(e.Point.X, e.Point.Y)
		case stroke.LineTo:
			p.LineTo(e.Point.X, e.Point.Y)
		case stroke.CubicTo:
			p.CubeTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case stroke.Close:
			p.Close()
		}
	}
}

// Empty reports whether the path has no drawing operations.
func (p *Path) Empty() bool {
	return len(p.ops) == 0
}

// add appends an operation and grows the bounding box. Control points are
// included, so the box may be slightly larger than the curve.
func (p *Path) add(kind opKind, coords ...float64) {
	o := pathOp{kind: kind}
	for i, c := range coords {
		o.pts[i] = float32(c)
	}
	for i := 0; i+1 < len(coords); i += 2 {
		x, y := coords[i], coords[i+1]
		if len(p.ops) == 0 && i == 0 {
			p.lo, p.hi = point{x, y}, point{x, y}
			continue
		}
		p.lo.X, p.lo.Y = math.Min(p.lo.X, x), math.Min(p.lo.Y, y)
		p.hi.X, p.hi.Y = math.Max(p.hi.X, x), math.Max(p.hi.Y, y)
	}
	p.ops = append(p.ops, o)
}

// Bounds returns the pixel rectangle the path can touch when filled.
// An empty path has empty bounds.
func (p *Path) Bounds() image.Rectangle {
	if len(p.ops) == 0 {
		return image.Rectangle{}
	}
	return outset(p.lo.X, p.lo.Y, p.hi.X, p.hi.Y)
}
