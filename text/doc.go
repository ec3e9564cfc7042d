// Package text turns committed annotation text into glyph outlines.
//
// The pipeline has three stages:
//
//   - FontSource: a parsed font file, shared and lazily parsed
//   - Face: a FontSource at a pixel size; shapes lines with HarfBuzz
//     (github.com/go-text/typesetting) and loads glyph outlines with
//     golang.org/x/image/font/sfnt
//   - Registry: maps family names such as "Sans" or "Mono" to sources;
//     the Go font family is built in
//
// Outlines are emitted into a PathSink in pixel coordinates with Y growing
// downward, ready to be filled by a scanline rasterizer.
//
// # Example usage
//
//	reg := text.NewRegistry()
//	face, err := reg.Face("Sans", text.PointsToPixels(24))
//	if err != nil {
//	    return err
//	}
//	face.Draw(path, "Hello\nworld", 100, 100)
package text
