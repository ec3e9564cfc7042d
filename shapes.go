package scrawl

import (
	"image/color"

	"github.com/gogpu/scrawl/internal/raster"
	"github.com/gogpu/scrawl/internal/stroke"
)

// shapeRegion returns the filled area of a rect or ellipse dragged from a
// to b. The rectangle is normalized, so the drag direction does not matter.
func shapeRegion(tool Tool, a, b Point) stroke.Polygon {
	x0, y0, x1, y1 := normRect(a, b)
	if tool == ToolEllipse {
		c := stroke.Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}
		return stroke.Ellipse(c, (x1-x0)/2, (y1-y0)/2)
	}
	return stroke.Rect(x0, y0, x1, y1)
}

// shapeOutline returns the pen outline of a rect or ellipse. A flat
// ellipse degrades to the outline of its box, which is a line or a dot.
func shapeOutline(tool Tool, a, b Point, w float64) *raster.Path {
	st := stroke.Style{Width: w, Cap: stroke.LineCapRound}
	region := shapeRegion(tool, a, b)
	if region == nil {
		x0, y0, x1, y1 := normRect(a, b)
		region = stroke.Rect(x0, y0, x1, y1)
	}
	return outline(region, true, st)
}

// drawShape renders a finished rect, ellipse, line or arrow onto dst.
// Previews use the same function, so what is shown during the drag is
// what lands on the canvas.
//
// Rules:
//   - ink alpha is 128 with the highlighter, else opaque
//   - fill applies to rect, ellipse and arrow only, and never with the eraser
//   - highlighter with fill paints rect and ellipse without outline
//   - a highlighted line goes through the translucent scratch path with
//     square caps; other lines are round-capped
//   - with the eraser, rect, ellipse and arrow clear their filled region
//     and a line clears along a round-capped stroke
func (o *Overlay) drawShape(dst *Surface, st ToolState, a, b Point) {
	w := float64(st.Width)
	ink := st.Color.WithAlpha(st.inkAlpha())
	clearInk := color.NRGBA{}

	switch st.Tool {
	case ToolRect, ToolEllipse:
		region := shapeRegion(st.Tool, a, b)
		if st.Eraser {
			o.paint.fill(dst, clearInk, CompositeClear, region)
			return
		}
		var polys []stroke.Polygon
		if st.fills() && region != nil {
			polys = append(polys, region)
		}
		var edge []*raster.Path
		if !(st.Highlighter && st.fills()) {
			edge = append(edge, shapeOutline(st.Tool, a, b, w))
		}
		o.paint.composite(dst, ink, CompositeOver, polys, edge...)

	case ToolLine:
		switch {
		case st.Eraser:
			o.paint.stroke(dst, []Point{a, b}, false, stroke.Style{Width: w, Cap: stroke.LineCapRound}, clearInk, CompositeClear)
		case st.Highlighter:
			o.paint.translucentLine(dst, a, b, w, stroke.LineCapSquare, st.Color, HighlightAlpha)
		default:
			o.paint.stroke(dst, []Point{a, b}, false, stroke.Style{Width: w, Cap: stroke.LineCapRound}, ink, CompositeOver)
		}

	case ToolArrow:
		arrow, ok := ArrowGeometry(a, b, w)
		if !ok {
			return
		}
		if st.Eraser {
			o.paint.fill(dst, clearInk, CompositeClear, arrow.polygons()...)
			return
		}
		o.paint.fill(dst, ink, CompositeOver, arrow.polygons()...)
	}
}

// drawEraserPreview shows in red what an eraser shape is about to clear:
// a faint region with a dashed outline for rect, ellipse and arrow, and a
// translucent stroke for a line.
func (o *Overlay) drawEraserPreview(dst *Surface, st ToolState, a, b Point) {
	var outline []Point
	switch st.Tool {
	case ToolLine:
		o.paint.translucentLine(dst, a, b, float64(st.Width), stroke.LineCapRound, eraserPreviewInk, HighlightAlpha)
		return
	case ToolArrow:
		arrow, ok := ArrowGeometry(a, b, float64(st.Width))
		if !ok {
			return
		}
		o.paint.fill(dst, eraserPreviewFill, CompositeOver, arrow.polygons()...)
		outline = arrow.Outline()
	case ToolRect, ToolEllipse:
		region := shapeRegion(st.Tool, a, b)
		if region == nil {
			return
		}
		o.paint.fill(dst, eraserPreviewFill, CompositeOver, region)
		for _, p := range region {
			outline = append(outline, fromInternal(p))
		}
	default:
		return
	}
	if len(outline) > 0 {
		outline = append(outline, outline[0])
	}
	o.paint.dashed(dst, outline, previewLineWidth, eraserPreviewLine)
}
