// Package raster builds anti-aliased coverage masks for scrawl surfaces.
//
// A mask is an *image.Alpha positioned in surface coordinates: each byte is
// the fraction of the pixel covered by the shape. Separate shapes are
// accumulated into a mask by maximum coverage, so a filled region and its
// outline drawn into one mask never raise coverage above what a single
// shape would produce. A path is rasterized in one pass with the nonzero
// winding rule, so a stroke outline crossing itself stays flat too.
// Coverage is computed with golang.org/x/image/vector.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/scrawl/internal/stroke"
)

// NewMask returns an empty coverage mask covering r.
func NewMask(r image.Rectangle) *image.Alpha {
	return image.NewAlpha(r)
}

// Rasterizer fills polygons and paths into coverage masks.
// The zero value is not usable; create one with NewRasterizer.
// A Rasterizer reuses its buffers between calls and is not safe for
// concurrent use.
type Rasterizer struct {
	z   *vector.Rasterizer
	buf []uint8
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{z: vector.NewRasterizer(1, 1)}
}

// FillPolygons rasterizes each polygon on its own and merges the coverage
// into m by maximum. Polygons with fewer than three vertices are skipped.
func (r *Rasterizer) FillPolygons(m *image.Alpha, polys ...stroke.Polygon) {
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		lo, hi := poly.Bounds()
		pr := outset(lo.X, lo.Y, hi.X, hi.Y)
		if pr.Intersect(m.Rect).Empty() {
			continue
		}
		ox, oy := float32(pr.Min.X), float32(pr.Min.Y)
		r.begin(pr)
		r.z.MoveTo(float32(poly[0].X)-ox, float32(poly[0].Y)-oy)
		for _, p := range poly[1:] {
			r.z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
		}
		r.z.ClosePath()
		r.merge(m, pr)
	}
}

// FillPath rasterizes all contours of p in a single pass and merges the
// coverage into m by maximum. Contours with opposite orientation cancel,
// which is how glyph counters (the hole in "o") and the inside of a closed
// stroke are cut out; overlapping contours of the same orientation do not
// add up.
func (r *Rasterizer) FillPath(m *image.Alpha, p *Path) {
	if p == nil || len(p.ops) == 0 {
		return
	}
	pr := outset(p.lo.X, p.lo.Y, p.hi.X, p.hi.Y)
	if pr.Intersect(m.Rect).Empty() {
		return
	}
	ox, oy := float32(pr.Min.X), float32(pr.Min.Y)
	r.begin(pr)
	for _, o := range p.ops {
		a := o.pts
		switch o.kind {
		case opMove:
			r.z.MoveTo(a[0]-ox, a[1]-oy)
		case opLine:
			r.z.LineTo(a[0]-ox, a[1]-oy)
		case opQuad:
			r.z.QuadTo(a[0]-ox, a[1]-oy, a[2]-ox, a[3]-oy)
		case opCubic:
			r.z.CubeTo(a[0]-ox, a[1]-oy, a[2]-ox, a[3]-oy, a[4]-ox, a[5]-oy)
		case opClose:
			r.z.ClosePath()
		}
	}
	r.z.ClosePath()
	r.merge(m, pr)
}

// begin resets the vector rasterizer to the local rectangle pr.
func (r *Rasterizer) begin(pr image.Rectangle) {
	r.z.Reset(pr.Dx(), pr.Dy())
	r.z.DrawOp = draw.Src
}

// merge draws the accumulated coverage into a scratch mask covering pr and
// folds it into m by maximum.
func (r *Rasterizer) merge(m *image.Alpha, pr image.Rectangle) {
	w, h := pr.Dx(), pr.Dy()
	n := w * h
	if cap(r.buf) < n {
		r.buf = make([]uint8, n)
	}
	r.buf = r.buf[:n]
	clear(r.buf)
	local := &image.Alpha{Pix: r.buf, Stride: w, Rect: image.Rect(0, 0, w, h)}
	r.z.Draw(local, local.Rect, image.Opaque, image.Point{})

	dr := pr.Intersect(m.Rect)
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		src := local.Pix[(y-pr.Min.Y)*w+(dr.Min.X-pr.Min.X):]
		dst := m.Pix[m.PixOffset(dr.Min.X, y):]
		for x := 0; x < dr.Dx(); x++ {
			if src[x] > dst[x] {
				dst[x] = src[x]
			}
		}
	}
}

// outset returns the smallest integer rectangle containing the given
// floating-point bounds, plus a one pixel margin for anti-aliasing.
func outset(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x0))-1,
		int(math.Floor(y0))-1,
		int(math.Ceil(x1))+1,
		int(math.Ceil(y1))+1,
	)
}

// Bounds returns the pixel rectangle touched by the given polygons.
func Bounds(polys ...stroke.Polygon) image.Rectangle {
	var r image.Rectangle
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		lo, hi := poly.Bounds()
		r = r.Union(outset(lo.X, lo.Y, hi.X, hi.Y))
	}
	return r
}
