package scrawl

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/scrawl/internal/blend"
)

// CompositeMode selects how ink is combined with a surface.
type CompositeMode uint8

const (
	// CompositeOver blends ink over the destination (source-over).
	CompositeOver CompositeMode = iota

	// CompositeClear removes destination alpha in proportion to the ink
	// coverage. Fully covered pixels become transparent whatever they held.
	CompositeClear
)

// String returns the mode name.
func (m CompositeMode) String() string {
	switch m {
	case CompositeOver:
		return "Over"
	case CompositeClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

func (m CompositeMode) blendMode() blend.Mode {
	switch m {
	case CompositeClear:
		return blend.ModeClear
	default:
		return blend.ModeSourceOver
	}
}

// Surface is a fixed-size straight-alpha RGBA pixel buffer.
// All pixels of a new surface are transparent, and its bounds never change.
//
// Surface implements image.Image.
type Surface struct {
	img *image.NRGBA
}

// NewSurface creates a transparent surface with the given dimensions.
// Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	return newSurfaceRect(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// newSurfaceRect creates a surface whose bounds are r. Scratch buffers use
// this to stay in canvas coordinates while covering only a small area.
func newSurfaceRect(r image.Rectangle) *Surface {
	return &Surface{img: image.NewNRGBA(r)}
}

// SurfaceFromImage copies img into a new surface of the same size with
// its origin moved to (0, 0). Straight-alpha sources are copied byte for
// byte; other images are converted pixel by pixel.
func SurfaceFromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	if src, ok := img.(*image.NRGBA); ok {
		copyRows(s.img, s.img.Rect, src, b.Min)
		return s
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			s.img.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return s
}

// copyRows copies the pixels of src starting at sp into the rectangle r
// of dst. Both images must contain the respective areas.
func copyRows(dst *image.NRGBA, r image.Rectangle, src *image.NRGBA, sp image.Point) {
	n := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		di := dst.PixOffset(r.Min.X, r.Min.Y+y)
		si := src.PixOffset(sp.X, sp.Y+y)
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
	}
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.img.NRGBAAt(x, y)
}

// NRGBAAt returns the straight-alpha color at (x, y).
// Points outside the surface are transparent.
func (s *Surface) NRGBAAt(x, y int) color.NRGBA {
	return s.img.NRGBAAt(x, y)
}

// Image returns the backing image. The image shares memory with the
// surface; callers that keep it across mutations should Clone first.
func (s *Surface) Image() *image.NRGBA {
	return s.img
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Clone returns an independent deep copy of the surface.
func (s *Surface) Clone() *Surface {
	c := newSurfaceRect(s.img.Rect)
	copy(c.img.Pix, s.img.Pix)
	return c
}

// CopyFrom overwrites s with the pixels of src inside their common bounds.
func (s *Surface) CopyFrom(src *Surface) {
	if src.img.Rect == s.img.Rect {
		copy(s.img.Pix, src.img.Pix)
		return
	}
	r := src.img.Rect.Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	copyRows(s.img, r, src.img, r.Min)
}

// CompositeOver blends src over s using source-over, with the top-left
// corner of src placed at (x, y). Pixels falling outside s are dropped.
func (s *Surface) CompositeOver(src *Surface, x, y int) {
	sr := src.img.Rect
	delta := image.Pt(x, y).Sub(sr.Min)
	dr := sr.Add(delta).Intersect(s.img.Rect)
	if dr.Empty() {
		return
	}
	over := blend.Get(blend.ModeSourceOver)
	w := dr.Dx()
	for py := dr.Min.Y; py < dr.Max.Y; py++ {
		si := src.img.PixOffset(dr.Min.X-delta.X, py-delta.Y)
		di := s.img.PixOffset(dr.Min.X, py)
		sp := src.img.Pix[si : si+w*4]
		dp := s.img.Pix[di : di+w*4]
		for i := 0; i < len(sp); i += 4 {
			if sp[i+3] == 0 {
				continue
			}
			dp[i], dp[i+1], dp[i+2], dp[i+3] = over(
				sp[i], sp[i+1], sp[i+2], sp[i+3],
				dp[i], dp[i+1], dp[i+2], dp[i+3],
			)
		}
	}
}

// MultiplyAlpha scales every pixel's alpha by k/255.
func (s *Surface) MultiplyAlpha(k uint8) {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		a := blend.MulDiv255(pix[i+3], k)
		if a == 0 {
			pix[i], pix[i+1], pix[i+2] = 0, 0, 0
		}
		pix[i+3] = a
	}
}

// paint applies ink of color c through a coverage mask. The ink alpha is
// c.A scaled by coverage; CompositeClear uses the coverage alone and
// ignores c.
func (s *Surface) paint(mask *image.Alpha, c color.NRGBA, mode CompositeMode) {
	dr := mask.Rect.Intersect(s.img.Rect)
	if dr.Empty() {
		return
	}
	fn := blend.Get(mode.blendMode())
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		mi := mask.PixOffset(dr.Min.X, y)
		di := s.img.PixOffset(dr.Min.X, y)
		cov := mask.Pix[mi : mi+dr.Dx()]
		dp := s.img.Pix[di : di+dr.Dx()*4]
		for x, m := range cov {
			if m == 0 {
				continue
			}
			sa := m
			if mode != CompositeClear {
				sa = blend.MulDiv255(c.A, m)
			}
			i := x * 4
			dp[i], dp[i+1], dp[i+2], dp[i+3] = fn(
				c.R, c.G, c.B, sa,
				dp[i], dp[i+1], dp[i+2], dp[i+3],
			)
		}
	}
}

// EncodePNG writes the surface to w as a PNG with straight alpha, so every
// pixel survives a round trip through SurfaceFromImage exactly.
func (s *Surface) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, s.img); err != nil {
		return fmt.Errorf("scrawl: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("scrawl: save png: %w", err)
	}
	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("scrawl: save png: %w", err)
	}
	return nil
}

// clearRect makes the pixels inside r transparent.
func (s *Surface) clearRect(r image.Rectangle) {
	r = r.Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := s.img.PixOffset(r.Min.X, y)
		clear(s.img.Pix[i : i+r.Dx()*4])
	}
}
