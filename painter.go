package scrawl

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/scrawl/internal/raster"
	"github.com/gogpu/scrawl/internal/stroke"
)

// Colors of the eraser preview and cursor ring.
var (
	eraserPreviewLine = color.NRGBA{R: 255, G: 80, B: 80, A: 200}
	eraserPreviewFill = color.NRGBA{R: 255, G: 80, B: 80, A: 35}
	eraserPreviewInk  = RGB{R: 255, G: 80, B: 80}
	eraserCursorRing  = color.NRGBA{R: 200, G: 200, B: 200, A: 180}
)

const (
	previewLineWidth = 1.5
	minCursorRadius  = 2
)

// dashPattern is the on/off pattern of dashed preview outlines.
var dashPattern = []float64{6, 3}

// painter turns geometry into coverage masks and composites them.
// Every call builds one mask and composites it once, so overlapping
// pieces of the same shape never blend twice.
type painter struct {
	rast *raster.Rasterizer
}

func newPainter() *painter {
	return &painter{rast: raster.NewRasterizer()}
}

// composite fills polys and outlines into one mask and applies it to dst
// with color c. It returns the touched rectangle.
func (p *painter) composite(dst *Surface, c color.NRGBA, mode CompositeMode, polys []stroke.Polygon, outlines ...*raster.Path) image.Rectangle {
	r := raster.Bounds(polys...)
	for _, o := range outlines {
		r = r.Union(o.Bounds())
	}
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return r
	}
	mask := raster.NewMask(r)
	p.rast.FillPolygons(mask, polys...)
	for _, o := range outlines {
		p.rast.FillPath(mask, o)
	}
	dst.paint(mask, c, mode)
	return r
}

// fill composites the union of polys onto dst.
func (p *painter) fill(dst *Surface, c color.NRGBA, mode CompositeMode, polys ...stroke.Polygon) image.Rectangle {
	return p.composite(dst, c, mode, polys)
}

// stroke composites a stroked polyline onto dst.
func (p *painter) stroke(dst *Surface, pts []Point, closed bool, st stroke.Style, c color.NRGBA, mode CompositeMode) image.Rectangle {
	return p.composite(dst, c, mode, nil, outline(toInternal(pts), closed, st))
}

// dashed composites a dashed polyline of width w onto dst.
func (p *painter) dashed(dst *Surface, pts []Point, w float64, c color.NRGBA) {
	var path raster.Path
	st := stroke.Style{Width: w, Cap: stroke.LineCapButt}
	for _, d := range stroke.Dash(toInternal(pts), dashPattern, 0) {
		path.AppendOutline(stroke.Expand(d, false, st))
	}
	p.composite(dst, c, CompositeOver, nil, &path)
}

// outline returns the fillable outline of a stroked polyline.
func outline(pts []stroke.Point, closed bool, st stroke.Style) *raster.Path {
	var path raster.Path
	path.AppendOutline(stroke.Expand(pts, closed, st))
	return &path
}

// translucentLine draws the segment a-b with uniform alpha: the line is
// rasterized opaque into a scratch surface covering its bounding box
// inflated by radius+2, the scratch alpha is scaled by alpha/255 and the
// result is composited once. Cap and body overlap can then never darken.
func (p *painter) translucentLine(dst *Surface, a, b Point, w float64, lineCap stroke.LineCap, ink RGB, alpha uint8) {
	pad := w/2 + 2
	box := image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-pad)),
		int(math.Floor(math.Min(a.Y, b.Y)-pad)),
		int(math.Ceil(math.Max(a.X, b.X)+pad)),
		int(math.Ceil(math.Max(a.Y, b.Y)+pad)),
	).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}
	scratch := newSurfaceRect(box)
	p.stroke(scratch, []Point{a, b}, false, stroke.Style{Width: w, Cap: lineCap}, ink.WithAlpha(255), CompositeOver)
	scratch.MultiplyAlpha(alpha)
	dst.CompositeOver(scratch, box.Min.X, box.Min.Y)
}

// path fills a glyph path onto dst.
func (p *painter) path(dst *Surface, path *raster.Path, c color.NRGBA) {
	p.composite(dst, c, CompositeOver, nil, path)
}

// dab is the eraser footprint: a disk of radius ⌊w/2⌋.
func dab(at Point, w int) stroke.Polygon {
	return stroke.Circle(at.internal(), float64(w/2))
}

// cursorRadius is the radius of the eraser and highlighter cursor.
func cursorRadius(w int) float64 {
	return float64(max(w/2, minCursorRadius))
}
