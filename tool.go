package scrawl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTool is returned by ParseTool for names that are not a tool.
var ErrUnknownTool = errors.New("scrawl: unknown tool")

// Tool identifies the active drawing tool.
type Tool uint8

// Drawing tools.
const (
	ToolPen Tool = iota
	ToolRect
	ToolEllipse
	ToolLine
	ToolArrow
	ToolText
)

var toolNames = [...]string{
	ToolPen:     "pen",
	ToolRect:    "rect",
	ToolEllipse: "ellipse",
	ToolLine:    "line",
	ToolArrow:   "arrow",
	ToolText:    "text",
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	return []Tool{ToolPen, ToolRect, ToolEllipse, ToolLine, ToolArrow, ToolText}
}

// String returns the tool name used in settings files.
func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", t)
}

// ParseTool returns the tool with the given name. Matching ignores case;
// "rectangle" is accepted as an alias of "rect".
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "rectangle" {
		return ToolRect, nil
	}
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return ToolPen, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// filled reports whether the tool has an interior that fill can paint.
func (t Tool) filled() bool {
	return t == ToolRect || t == ToolEllipse || t == ToolArrow
}

// Limits applied by the ToolState mutators.
const (
	MinWidth    = 1
	MaxWidth    = 120
	MinFontSize = 6
	MaxFontSize = 200

	DefaultWidth      = 4
	DefaultFontFamily = "Sans"
	DefaultFontSize   = 24

	// HighlightAlpha is the alpha of highlighter ink.
	HighlightAlpha = 128
)

// TextStyle is the font used for committed text.
type TextStyle struct {
	Family string
	Size   int // points
}

// ToolState is the current tool and style. The zero value is not valid;
// use DefaultToolState. Mutators clamp out-of-range input so that
// rasterization never sees an invalid width or font size.
type ToolState struct {
	Tool        Tool
	Color       RGB
	Width       int
	Fill        bool
	Highlighter bool
	Eraser      bool
	Font        TextStyle
}

// DefaultToolState returns the state of a fresh session: red pen of width
// 4, no fill, highlighter or eraser, 24 pt sans-serif text.
func DefaultToolState() ToolState {
	return ToolState{
		Tool:  ToolPen,
		Color: DefaultColor,
		Width: DefaultWidth,
		Font:  TextStyle{Family: DefaultFontFamily, Size: DefaultFontSize},
	}
}

// SetWidth sets the stroke width, clamped to [MinWidth, MaxWidth].
func (s *ToolState) SetWidth(w int) {
	s.Width = clamp(w, MinWidth, MaxWidth)
}

// SetFontSize sets the font size, clamped to [MinFontSize, MaxFontSize].
func (s *ToolState) SetFontSize(pt int) {
	s.Font.Size = clamp(pt, MinFontSize, MaxFontSize)
}

// SetFont sets the font family and size. An empty family keeps the
// current one.
func (s *ToolState) SetFont(family string, pt int) {
	if family = strings.TrimSpace(family); family != "" {
		s.Font.Family = family
	}
	s.SetFontSize(pt)
}

// QuickSize sets stroke width and font size together, as the toolbar's
// size presets do.
func (s *ToolState) QuickSize(n int) {
	s.SetWidth(n)
	s.SetFontSize(n)
}

// normalize clamps every field into range. It is applied to states that
// did not go through the mutators.
func (s *ToolState) normalize() {
	if int(s.Tool) >= len(toolNames) {
		s.Tool = ToolPen
	}
	s.SetWidth(s.Width)
	if s.Font.Family == "" {
		s.Font.Family = DefaultFontFamily
	}
	s.SetFontSize(s.Font.Size)
}

// inkAlpha returns the alpha of ink drawn with this state.
func (s ToolState) inkAlpha() uint8 {
	if s.Highlighter {
		return HighlightAlpha
	}
	return 255
}

// fills reports whether shapes drawn with this state get a filled interior.
func (s ToolState) fills() bool {
	return s.Fill && !s.Eraser && s.Tool.filled()
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
