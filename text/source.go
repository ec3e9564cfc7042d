package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is a loaded font file. Parsing happens on first use, so
// registering many sources is cheap.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte

	once   sync.Once
	sfnt   *opentype.Font // outlines and metrics
	shaper *gtfont.Font   // HarfBuzz shaping
	err    error
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return &FontSource{data: bytes.Clone(data)}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path and
// parses it immediately so that a broken file is reported here.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	s, err := NewFontSource(data)
	if err != nil {
		return nil, err
	}
	if err := s.parse(); err != nil {
		return nil, err
	}
	return s, nil
}

// builtinSource wraps font data compiled into the binary.
func builtinSource(data []byte) *FontSource {
	return &FontSource{data: data}
}

// parse parses the font for both backends once.
func (s *FontSource) parse() error {
	s.once.Do(func() {
		f, err := opentype.Parse(s.data)
		if err != nil {
			s.err = fmt.Errorf("text: parse font: %w", err)
			return
		}
		face, err := gtfont.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.err = fmt.Errorf("text: parse font for shaping: %w", err)
			return
		}
		s.sfnt, s.shaper = f, face.Font
	})
	return s.err
}

// Name returns the family name stored in the font, or "" if the font
// cannot be parsed or has no name record.
func (s *FontSource) Name() string {
	if s.parse() != nil {
		return ""
	}
	var buf sfnt.Buffer
	name, err := s.sfnt.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Face returns the font at the given pixel size (pixels per em).
func (s *FontSource) Face(px float64) (*Face, error) {
	if err := s.parse(); err != nil {
		return nil, err
	}
	return newFace(s, px), nil
}
