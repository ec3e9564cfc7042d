package scrawl

import "strings"

// Effect tells the front-end what to do after an event.
type Effect uint8

const (
	// EffectRedraw means the frame changed and Render should be called.
	EffectRedraw Effect = 1 << iota

	// EffectQuit means the user asked to leave the overlay.
	EffectQuit

	// EffectTextEntry means a pending text entry was opened; the front-end
	// should show its text input at PendingText's position.
	EffectTextEntry
)

// Has reports whether all bits of f are set in e.
func (e Effect) Has(f Effect) bool {
	return e&f == f
}

// String returns the set effects joined by '|', or "None".
func (e Effect) String() string {
	if e == 0 {
		return "None"
	}
	var parts []string
	for _, f := range []struct {
		bit  Effect
		name string
	}{
		{EffectRedraw, "Redraw"},
		{EffectQuit, "Quit"},
		{EffectTextEntry, "TextEntry"},
	} {
		if e.Has(f.bit) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}
