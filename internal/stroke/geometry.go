package stroke

import "math"

// DefaultTolerance is the flattening tolerance in pixels.
const DefaultTolerance = 0.2

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Angle returns the angle of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < 1e-10 {
		return Vec2{X: 0, Y: 0}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Polygon is a closed sequence of vertices. The closing edge is implicit.
type Polygon []Point

// Bounds returns the minimum and maximum corners of the polygon.
// It returns zero points for an empty polygon.
func (p Polygon) Bounds() (lo, hi Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	lo, hi = p[0], p[0]
	for _, q := range p[1:] {
		lo.X = math.Min(lo.X, q.X)
		lo.Y = math.Min(lo.Y, q.Y)
		hi.X = math.Max(hi.X, q.X)
		hi.Y = math.Max(hi.Y, q.Y)
	}
	return lo, hi
}

// Rect returns the axis-aligned rectangle with corners (x0, y0) and (x1, y1).
func Rect(x0, y0, x1, y1 float64) Polygon {
	return Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// Circle returns a polygon approximating a circle.
func Circle(c Point, r float64) Polygon {
	return Ellipse(c, r, r)
}

// Ellipse returns a polygon approximating an axis-aligned ellipse.
// Radii <= 0 produce nil.
func Ellipse(c Point, rx, ry float64) Polygon {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	n := arcSegments(math.Max(rx, ry), 2*math.Pi)
	poly := make(Polygon, n)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = Point{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)}
	}
	return poly
}

// EllipseOutline returns the ellipse as an open polyline whose last point
// repeats the first, for stroking.
func EllipseOutline(c Point, rx, ry float64) []Point {
	poly := Ellipse(c, rx, ry)
	if poly == nil {
		return nil
	}
	return append([]Point(poly), poly[0])
}

// arcSegments returns the number of segments needed so that a chord of an
// arc with radius r stays within DefaultTolerance of the arc.
func arcSegments(r, sweep float64) int {
	const minSegments, maxSegments = 8, 512
	if r <= DefaultTolerance {
		return minSegments
	}
	step := 2 * math.Acos(1-DefaultTolerance/r)
	n := int(math.Ceil(sweep / step))
	if n < minSegments {
		return minSegments
	}
	if n > maxSegments {
		return maxSegments
	}
	return n
}
