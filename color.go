package scrawl

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidColor is returned by ParseColor for strings that are not
// #RGB or #RRGGBB hex colors.
var ErrInvalidColor = errors.New("scrawl: invalid color")

// RGB is an opaque stroke color. Opacity is decided by the tool state
// (full, or 128 for the highlighter), never by the color itself.
type RGB struct {
	R, G, B uint8
}

// DefaultColor is the stroke color of a fresh ToolState.
var DefaultColor = RGB{R: 255, G: 50, B: 50}

// ParseColor parses a hex color string. A leading '#' is optional;
// both the short (RGB) and long (RRGGBB) forms are accepted.
func ParseColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var v [6]uint8
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok || i >= len(v) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v[i] = d
	}

	switch len(hex) {
	case 3:
		return RGB{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17}, nil
	case 6:
		return RGB{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5]}, nil
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// WithAlpha returns the color as a straight-alpha NRGBA value.
func (c RGB) WithAlpha(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
