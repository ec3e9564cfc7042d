// Package scrawl is the drawing engine of a screen-annotation overlay.
//
// # Overview
//
// An Overlay holds a persistent canvas of straight-alpha RGBA pixels and
// turns pointer and keyboard events into ink on it: freehand pen and
// highlighter strokes, rectangles, ellipses, lines, arrows and text, an
// eraser, undo and PNG export. A front-end (window, terminal, test) only
// forwards events, calls the style mutators and shows the frames returned
// by Render.
//
// # Quick Start
//
//	o := scrawl.NewOverlay(1920, 1080)
//	o.SetTool(scrawl.ToolArrow)
//	o.PointerDown(scrawl.Pt(100, 200))
//	o.PointerMove(scrawl.Pt(300, 240))
//	o.PointerUp(scrawl.Pt(400, 260))
//	frame := o.Render()
//
// # Compositing
//
// Shapes are rasterized into anti-aliased coverage masks. All pieces of
// one shape (segments, joins, caps, fill and outline) are merged into a
// single mask by maximum coverage and composited once, so translucent ink
// never darkens where pieces overlap. Highlighted lines go through an
// opaque scratch buffer whose alpha is scaled afterwards. The eraser
// composites in clear mode, leaving erased pixels fully transparent.
//
// # History
//
// A snapshot of the canvas is pushed before every undoable change: when a
// drawing session starts, when text is committed and before the canvas is
// cleared. Undo restores the latest snapshot.
//
// # Logging
//
// The package is silent unless SetLogger is called.
package scrawl
