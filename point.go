package scrawl

import (
	"math"

	"github.com/gogpu/scrawl/internal/stroke"
)

// Point is a position in surface pixel coordinates.
// The origin is the top-left corner and Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

func (p Point) internal() stroke.Point {
	return stroke.Point{X: p.X, Y: p.Y}
}

func fromInternal(p stroke.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func toInternal(pts []Point) []stroke.Point {
	out := make([]stroke.Point, len(pts))
	for i, p := range pts {
		out[i] = p.internal()
	}
	return out
}

// normRect returns the rectangle spanned by a and b with min <= max on both
// axes, whatever the drag direction was.
func normRect(a, b Point) (x0, y0, x1, y1 float64) {
	return math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Max(a.X, b.X), math.Max(a.Y, b.Y)
}
