// Package blend implements the pixel compositing operators used by scrawl
// surfaces.
//
// All values are straight (non-premultiplied) alpha in the range 0-255,
// matching image.NRGBA storage. Keeping the canvas in straight alpha means
// an exported PNG reproduces every pixel exactly when decoded again.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	// ModeSourceOver is the default alpha blending mode: S over D.
	ModeSourceOver Mode = iota

	// ModeClear removes destination coverage: D * (1 - Sa).
	// With Sa equal to a shape's coverage, fully covered pixels become
	// transparent and anti-aliased edges fade out proportionally.
	ModeClear
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "SourceOver"
	case ModeClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Func is the signature for compositing operators.
// Parameters are the source color (sr, sg, sb, sa) and the destination
// color (dr, dg, db, da), both straight alpha.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Get returns the operator function for the given mode.
// Unknown modes fall back to source-over.
func Get(mode Mode) Func {
	switch mode {
	case ModeClear:
		return blendClear
	default:
		return blendSourceOver
	}
}
