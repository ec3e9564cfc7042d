// Package replay drives an Overlay from a YAML event script. Scripts make
// drawing sessions reproducible without a screen: the command replays one
// and saves the canvas, and tests use them as fixtures.
//
// A script is a canvas size and a list of steps, each holding one action:
//
//	width: 320
//	height: 200
//	steps:
//	  - tool: rect
//	  - fill: true
//	  - drag: [[20, 80], [120, 180]]
//	  - key: ctrl+z
package replay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/scrawl"
)

// Script is a parsed event script.
type Script struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Steps  []Step `yaml:"steps"`
}

// Point is an [x, y] pair.
type Point [2]float64

func (p Point) pt() scrawl.Point { return scrawl.Pt(p[0], p[1]) }

// Font selects a font family and size in points.
type Font struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
}

// Step is one scripted action. Exactly one field is set.
type Step struct {
	Tool        *string  `yaml:"tool,omitempty"`
	Width       *int     `yaml:"width,omitempty"`
	Color       *string  `yaml:"color,omitempty"`
	Fill        *bool    `yaml:"fill,omitempty"`
	Highlighter *bool    `yaml:"highlighter,omitempty"`
	Eraser      *bool    `yaml:"eraser,omitempty"`
	Font        *Font    `yaml:"font,omitempty"`
	Size        *int     `yaml:"size,omitempty"`
	Down        *Point   `yaml:"down,omitempty"`
	Move        *Point   `yaml:"move,omitempty"`
	Up          *Point   `yaml:"up,omitempty"`
	Drag        []Point  `yaml:"drag,omitempty"`
	Key         *string  `yaml:"key,omitempty"`
	KeyUp       *string  `yaml:"keyup,omitempty"`
	Text        *string  `yaml:"text,omitempty"`
	Commit      *bool    `yaml:"commit,omitempty"`
	Cancel      *bool    `yaml:"cancel,omitempty"`
	Undo        *bool    `yaml:"undo,omitempty"`
	Clear       *bool    `yaml:"clear,omitempty"`
	Wait        *float64 `yaml:"wait,omitempty"`
}

// Errors.
var (
	ErrEmptyStep   = errors.New("replay: step has no action")
	ErrMultiAction = errors.New("replay: step has more than one action")
	ErrBadKey      = errors.New("replay: unknown key")
	ErrShortDrag   = errors.New("replay: drag needs at least one point")
	ErrCanvasSize  = errors.New("replay: width and height must be positive")
)

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: parse: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrCanvasSize, s.Width, s.Height)
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // script path from the command line
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return Parse(data)
}

func (s *Step) validate() error {
	n := 0
	for _, set := range []bool{
		s.Tool != nil, s.Width != nil, s.Color != nil, s.Fill != nil,
		s.Highlighter != nil, s.Eraser != nil, s.Font != nil, s.Size != nil,
		s.Down != nil, s.Move != nil, s.Up != nil, s.Drag != nil,
		s.Key != nil, s.KeyUp != nil, s.Text != nil, s.Commit != nil,
		s.Cancel != nil, s.Undo != nil, s.Clear != nil, s.Wait != nil,
	} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return ErrEmptyStep
	case n > 1:
		return ErrMultiAction
	}
	if s.Drag != nil && len(s.Drag) == 0 {
		return ErrShortDrag
	}
	if s.Tool != nil {
		if _, err := scrawl.ParseTool(*s.Tool); err != nil {
			return err
		}
	}
	if s.Color != nil {
		if _, err := scrawl.ParseColor(*s.Color); err != nil {
			return err
		}
	}
	for _, k := range []*string{s.Key, s.KeyUp} {
		if k == nil {
			continue
		}
		if _, _, err := ParseKey(*k); err != nil {
			return err
		}
	}
	return nil
}

// ParseKey parses a key name such as "c", "escape", "ctrl+z", "control"
// or "shift".
func ParseKey(name string) (scrawl.Key, scrawl.Modifiers, error) {
	var mods scrawl.Modifiers
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	for _, m := range parts[:len(parts)-1] {
		switch m {
		case "ctrl", "control":
			mods |= scrawl.ModCtrl
		case "shift":
			mods |= scrawl.ModShift
		default:
			return 0, 0, fmt.Errorf("%w: %q", ErrBadKey, name)
		}
	}
	switch k := parts[len(parts)-1]; k {
	case "esc", "escape":
		return scrawl.KeyEscape, mods, nil
	case "ctrl", "control":
		return scrawl.KeyControl, mods | scrawl.ModCtrl, nil
	case "shift":
		return scrawl.KeyShift, mods | scrawl.ModShift, nil
	default:
		r := []rune(k)
		if len(r) != 1 {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadKey, name)
		}
		return scrawl.Key(r[0]), mods, nil
	}
}
