package stroke

import "math"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// Style defines the style for stroke expansion. Joins are always round.
type Style struct {
	Width float64
	Cap   LineCap
}

// PathElement represents an element of an expanded outline.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new contour.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current contour.
type Close struct{}

func (Close) isPathElement() {}

// Expand converts a stroked polyline into an outline to be filled with the
// nonzero winding rule. If closed is true the last point connects back to
// the first and no caps are drawn; the outline is then two contours, the
// outer and the inner edge of the ring.
//
// A polyline that collapses to a single point yields a dot shaped by the
// cap: a disk for round caps, a square for square caps, nothing for butt.
func Expand(pts []Point, closed bool, style Style) []PathElement {
	if style.Width <= 0 {
		return nil
	}
	pts = dedupe(pts)
	if n := len(pts); closed && n > 2 && pts[n-1].Distance(pts[0]) < minSegment {
		pts = pts[:n-1]
	}
	e := newExpander(style)
	switch len(pts) {
	case 0:
		return nil
	case 1:
		e.dot(pts[0])
		return e.output.elements
	}

	e.startPt, e.lastPt = pts[0], pts[0]
	for _, p := range pts[1:] {
		e.lineTo(p)
	}
	if closed && len(pts) > 2 {
		e.lineTo(e.startPt)
		e.finishClosed()
	} else {
		e.finish()
	}
	return e.output.elements
}

// expander builds the outline of one polyline. The forward path runs along
// the -normal side, the backward path along the +normal side; the outline
// is forward, end cap, reversed backward, start cap.
type expander struct {
	hw       float64
	lineCap  LineCap
	forward  *pathBuilder
	backward *pathBuilder
	output   *pathBuilder

	startPt   Point
	startNorm Vec2
	startTan  Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2

	// Joins turning by less than this (as sine of the angle) are drawn
	// as plain corners.
	joinThresh float64
}

func newExpander(style Style) *expander {
	return &expander{
		hw:         style.Width / 2,
		lineCap:    style.Cap,
		forward:    newPathBuilder(),
		backward:   newPathBuilder(),
		output:     newPathBuilder(),
		joinThresh: 2 * DefaultTolerance / style.Width,
	}
}

// normal returns the perpendicular of tan with length hw.
func (e *expander) normal(tan Vec2) Vec2 {
	return tan.Perp().Scale(e.hw / tan.Length())
}

func (e *expander) lineTo(p Point) {
	if p == e.lastPt {
		return
	}
	tan := p.Sub(e.lastPt)
	e.join(tan)
	e.lastTan = tan
	norm := e.normal(tan)
	e.forward.lineTo(p.Add(norm.Neg()))
	e.backward.lineTo(p.Add(norm))
	e.lastPt = p
	e.lastNorm = norm
}

// join connects the previous segment to one leaving lastPt along tan.
// The outer side gets an arc. The inner side is routed through the
// vertex itself, so the outline stays the union of the segment bodies and
// the join wedge and every covered point has positive winding.
func (e *expander) join(tan Vec2) {
	p0 := e.lastPt
	norm := e.normal(tan)
	if e.forward.isEmpty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	cross := e.lastTan.Cross(tan)
	dot := e.lastTan.Dot(tan)
	if dot > 0 && math.Abs(cross) < math.Hypot(cross, dot)*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	lastNorm := e.normal(e.lastTan)
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward.lineTo(p0)
		e.backward.lineTo(p0.Add(norm))
		arc(e.forward, p0, lastNorm.Neg(), angle)
	} else {
		e.forward.lineTo(p0)
		e.forward.lineTo(p0.Add(norm.Neg()))
		arc(e.backward, p0, lastNorm, angle)
	}
}

// finish completes an open polyline with caps.
func (e *expander) finish() {
	if e.forward.isEmpty() {
		return
	}
	e.output.appendPath(e.forward)
	e.cap(e.lastPt, e.lastNorm.Neg(), false)
	e.appendReversed(e.backward)
	e.cap(e.startPt, e.startNorm, true)
}

// finishClosed completes a closed polyline: the forward and the reversed
// backward path become two separate contours.
func (e *expander) finishClosed() {
	if e.forward.isEmpty() {
		return
	}
	e.join(e.startTan)

	e.output.appendPath(e.forward)
	e.output.close()

	e.output.moveTo(e.backward.current)
	e.appendReversed(e.backward)
	e.output.close()
}

// cap adds a line cap around center. norm points from center to the
// current end of the output.
func (e *expander) cap(center Point, norm Vec2, closePath bool) {
	switch e.lineCap {
	case LineCapRound:
		arc(e.output, center, norm, math.Pi)
	case LineCapSquare:
		e.output.lineTo(transform(center, norm, Point{X: 1, Y: 1}))
		e.output.lineTo(transform(center, norm, Point{X: -1, Y: 1}))
		if !closePath {
			e.output.lineTo(transform(center, norm, Point{X: -1, Y: 0}))
		}
	default:
		if !closePath {
			e.output.lineTo(center.Add(norm.Neg()))
		}
	}
	if closePath {
		e.output.close()
	}
}

// dot emits the shape of a zero-length stroke.
func (e *expander) dot(c Point) {
	switch e.lineCap {
	case LineCapRound:
		start := Vec2{X: e.hw}
		e.output.moveTo(c.Add(start))
		arc(e.output, c, start, 2*math.Pi)
		e.output.close()
	case LineCapSquare:
		r := Rect(c.X-e.hw, c.Y-e.hw, c.X+e.hw, c.Y+e.hw)
		e.output.moveTo(r[0])
		for _, p := range r[1:] {
			e.output.lineTo(p)
		}
		e.output.close()
	}
}

// appendReversed appends pb to the output in reverse order. The output
// must already be at the last point of pb.
func (e *expander) appendReversed(pb *pathBuilder) {
	elems := pb.elements
	for i := len(elems) - 1; i >= 1; i-- {
		end := endPoint(elems[i-1])
		switch el := elems[i].(type) {
		case LineTo:
			e.output.lineTo(end)
		case CubicTo:
			e.output.cubicTo(el.Control2, el.Control1, end)
		}
	}
}

// arc appends a circular arc around center starting at center+norm and
// sweeping angle radians, as cubic Beziers of at most 90 degrees each.
func arc(out *pathBuilder, center Point, norm Vec2, angle float64) {
	n := max(int(math.Ceil(math.Abs(angle)/(math.Pi/2))), 1)
	step := angle / float64(n)
	a := norm.Angle()
	r := norm.Length()
	for range n {
		arcSegment(out, center, r, a, a+step)
		a += step
	}
}

// arcSegment appends one arc segment of up to 90 degrees.
func arcSegment(out *pathBuilder, center Point, r, a0, a1 float64) {
	da := a1 - a0
	k := math.Sin(da) * (math.Sqrt(4+3*math.Tan(da/2)*math.Tan(da/2)) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	p1 := Point{X: center.X + r*cos0, Y: center.Y + r*sin0}
	p2 := Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
	c1 := Point{X: p1.X - k*r*sin0, Y: p1.Y + k*r*cos0}
	c2 := Point{X: p2.X + k*r*sin1, Y: p2.Y - k*r*cos1}
	out.cubicTo(c1, c2, p2)
}

// transform maps p through the frame with x axis norm at center.
func transform(center Point, norm Vec2, p Point) Point {
	return Point{
		X: norm.X*p.X - norm.Y*p.Y + center.X,
		Y: norm.Y*p.X + norm.X*p.Y + center.Y,
	}
}

// minSegment is the shortest segment kept; closer points are merged.
const minSegment = 1e-3

// dedupe drops consecutive points closer than minSegment.
func dedupe(pts []Point) []Point {
	if len(pts) < 2 {
		return pts
	}
	out := make([]Point, 1, len(pts))
	out[0] = pts[0]
	for _, p := range pts[1:] {
		if p.Distance(out[len(out)-1]) < minSegment {
			continue
		}
		out = append(out, p)
	}
	return out
}

func endPoint(el PathElement) Point {
	switch e := el.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case CubicTo:
		return e.Point
	default:
		return Point{}
	}
}

// pathBuilder accumulates path elements and tracks the current point.
type pathBuilder struct {
	elements []PathElement
	current  Point
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{elements: make([]PathElement, 0, 64)}
}

func (b *pathBuilder) isEmpty() bool {
	return len(b.elements) == 0
}

func (b *pathBuilder) moveTo(p Point) {
	b.elements = append(b.elements, MoveTo{Point: p})
	b.current = p
}

func (b *pathBuilder) lineTo(p Point) {
	b.elements = append(b.elements, LineTo{Point: p})
	b.current = p
}

func (b *pathBuilder) cubicTo(c1, c2, p Point) {
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
	b.current = p
}

func (b *pathBuilder) close() {
	b.elements = append(b.elements, Close{})
}

func (b *pathBuilder) appendPath(other *pathBuilder) {
	b.elements = append(b.elements, other.elements...)
	b.current = other.current
}
