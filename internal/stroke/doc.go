// Package stroke converts stroked polylines into fillable outlines.
//
// Expand follows the usual offset-path construction: the polyline is
// offset by half the width on both sides, the forward offset runs along
// the path, the backward offset is appended reversed, and caps connect the
// two ends. The result is a single outline filled with the nonzero winding
// rule, so a stroke rasterizes in one pass and its edge has no seams at
// vertices, however many points a freehand path has.
//
// # Joins
//
// Joins are always round, which is what freehand ink and shape outlines
// use. The outer side of a turn gets an arc; the inner side is routed
// through the vertex so overlapping parts of the outline wind the same way
// and never cancel.
//
// # Line Caps
//
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Usage
//
//	style := stroke.Style{Width: 4, Cap: stroke.LineCapRound}
//	outline := stroke.Expand([]stroke.Point{{X: 10, Y: 100}, {X: 50, Y: 100}}, false, style)
//
// Curves (ellipses, circles) are flattened to polygons with
// DefaultTolerance, the maximum distance in pixels between the true curve
// and its polygon.
package stroke
