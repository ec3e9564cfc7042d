package scrawl

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Settings is the persisted tool state, stored as a flat JSON object.
// The eraser flag is deliberately absent: every run starts without it.
type Settings struct {
	Tool        string `json:"tool"`
	Color       string `json:"color"`
	Width       int    `json:"width"`
	Fill        bool   `json:"fill"`
	Highlighter bool   `json:"highlighter"`
	FontFamily  string `json:"font_family"`
	FontSize    int    `json:"font_size"`
}

// DefaultSettings returns the settings of DefaultToolState.
func DefaultSettings() Settings {
	return SettingsFrom(DefaultToolState())
}

// SettingsFrom captures the persistent fields of a tool state.
func SettingsFrom(s ToolState) Settings {
	return Settings{
		Tool:        s.Tool.String(),
		Color:       s.Color.Hex(),
		Width:       s.Width,
		Fill:        s.Fill,
		Highlighter: s.Highlighter,
		FontFamily:  s.Font.Family,
		FontSize:    s.Font.Size,
	}
}

// Apply copies the settings into a tool state. Fields that do not hold a
// valid value leave the state unchanged.
func (s Settings) Apply(st *ToolState) {
	if t, err := ParseTool(s.Tool); err == nil {
		st.Tool = t
	}
	if c, err := ParseColor(s.Color); err == nil {
		st.Color = c
	}
	if validWidth(s.Width) {
		st.Width = s.Width
	}
	st.Fill = s.Fill
	st.Highlighter = s.Highlighter
	if s.FontFamily != "" {
		st.Font.Family = s.FontFamily
	}
	if validFontSize(s.FontSize) {
		st.Font.Size = s.FontSize
	}
}

// ToolState returns the default tool state with the settings applied.
func (s Settings) ToolState() ToolState {
	st := DefaultToolState()
	s.Apply(&st)
	return st
}

func validWidth(w int) bool     { return w >= MinWidth && w <= MaxWidth }
func validFontSize(pt int) bool { return pt >= MinFontSize && pt <= MaxFontSize }

// LoadSettings reads a settings file. It always returns usable settings:
// each field is decoded on its own, and a missing, mistyped or out-of-range
// field keeps its default. The returned error describes what was ignored
// and is meant for logging; startup must not fail on it.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path) //nolint:gosec // settings path comes from config
	if err != nil {
		return s, fmt.Errorf("scrawl: load settings: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return s, fmt.Errorf("scrawl: load settings: %w", err)
	}

	var errs []error
	field := func(name string, dst any, valid func() bool) {
		raw, ok := fields[name]
		if !ok {
			return
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		if valid != nil && !valid() {
			errs = append(errs, fmt.Errorf("%s: invalid value %s", name, raw))
		}
	}

	var (
		tool, colorHex, family string
		width, fontSize        int
	)
	field("tool", &tool, func() bool { _, err := ParseTool(tool); return err == nil })
	field("color", &colorHex, func() bool { _, err := ParseColor(colorHex); return err == nil })
	field("width", &width, func() bool { return validWidth(width) })
	field("fill", &s.Fill, nil)
	field("highlighter", &s.Highlighter, nil)
	field("font_family", &family, func() bool { return family != "" })
	field("font_size", &fontSize, func() bool { return validFontSize(fontSize) })

	if t, err := ParseTool(tool); err == nil {
		s.Tool = t.String()
	}
	if c, err := ParseColor(colorHex); err == nil {
		s.Color = c.Hex()
	}
	if validWidth(width) {
		s.Width = width
	}
	if family != "" {
		s.FontFamily = family
	}
	if validFontSize(fontSize) {
		s.FontSize = fontSize
	}

	if len(errs) > 0 {
		return s, fmt.Errorf("scrawl: load settings %s: %w", path, errors.Join(errs...))
	}
	return s, nil
}

// SaveSettings writes the settings atomically: the JSON goes to a
// temporary file in the same directory, which is then renamed over path.
// Missing directories are created.
func SaveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("scrawl: save settings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scrawl: save settings: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("scrawl: save settings: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("scrawl: save settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("scrawl: save settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("scrawl: save settings: %w", err)
	}
	return nil
}
