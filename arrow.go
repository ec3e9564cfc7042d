package scrawl

import (
	"math"

	"github.com/gogpu/scrawl/internal/stroke"
)

// Arrow is the filled geometry of an arrow: a tapered body running from
// the start point to the junction, and a triangular head whose apex is the
// end point.
type Arrow struct {
	// Body is a trapezoid: start+n·w/4, junction+n·w/2, junction-n·w/2,
	// start-n·w/4, with n the unit normal of the arrow direction.
	// It is empty when the head takes the whole length.
	Body []Point

	// Head is the triangle base-left, apex, base-right.
	Head [3]Point

	Junction      Point
	HeadLength    float64
	HeadHalfWidth float64
}

// ArrowGeometry computes the arrow from start to end for stroke width w.
//
// The head is max(3w, 15) long and max(2.5w, 12) wide on each side of the
// shaft. The body tapers from a half-width of w/4 at start to w/2 where it
// meets the head. Arrows shorter than one pixel have no geometry and
// ArrowGeometry returns false. An arrow shorter than its head is all head.
func ArrowGeometry(start, end Point, w float64) (Arrow, bool) {
	d := end.Sub(start)
	length := d.Length()
	if length < 1 {
		return Arrow{}, false
	}
	theta := math.Atan2(d.Y, d.X)
	u := Pt(math.Cos(theta), math.Sin(theta))
	n := Pt(-u.Y, u.X)

	a := Arrow{
		HeadLength:    math.Max(3*w, 15),
		HeadHalfWidth: math.Max(2.5*w, 12),
	}
	hl := math.Min(a.HeadLength, length)
	a.Junction = end.Sub(u.Mul(hl))

	hw := n.Mul(a.HeadHalfWidth)
	a.Head = [3]Point{a.Junction.Add(hw), end, a.Junction.Sub(hw)}

	if hl < length {
		s, j := n.Mul(w/4), n.Mul(w/2)
		a.Body = []Point{start.Add(s), a.Junction.Add(j), a.Junction.Sub(j), start.Sub(s)}
	}
	return a, true
}

// Outline returns the silhouette of the arrow as a closed polygon without
// a repeated first vertex: seven points, or three when there is no body.
func (a Arrow) Outline() []Point {
	if len(a.Body) == 0 {
		return a.Head[:]
	}
	return []Point{a.Body[0], a.Body[1], a.Head[0], a.Head[1], a.Head[2], a.Body[2], a.Body[3]}
}

// polygons returns the filled area of the arrow. Body and head are filled
// as one silhouette so no seam shows where they meet; the head is never
// narrower than the body, so the silhouette is a simple polygon.
func (a Arrow) polygons() []stroke.Polygon {
	return []stroke.Polygon{stroke.Polygon(toInternal(a.Outline()))}
}
