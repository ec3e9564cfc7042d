package scrawl

import (
	"time"

	"github.com/gogpu/scrawl/text"
)

// DefaultToolbarHeight is the height of the band at the top of the
// surface that belongs to the toolbar. Pointer presses inside it are not
// drawing input.
const DefaultToolbarHeight = 56

// Option configures an Overlay during creation.
//
// Example:
//
//	o := scrawl.NewOverlay(1920, 1080,
//	    scrawl.WithHistoryCapacity(100),
//	    scrawl.WithToolState(state),
//	)
type Option func(*options)

// options holds optional configuration for Overlay creation.
type options struct {
	historyCapacity int
	toolbarHeight   float64
	state           *ToolState
	clock           func() time.Time
	fonts           *text.Registry
	exportDir       string
}

// defaultOptions returns the default overlay options.
func defaultOptions() options {
	return options{
		historyCapacity: DefaultHistoryCapacity,
		toolbarHeight:   DefaultToolbarHeight,
		clock:           time.Now,
	}
}

// WithHistoryCapacity sets the number of undo snapshots kept.
// Values <= 0 select DefaultHistoryCapacity.
func WithHistoryCapacity(n int) Option {
	return func(o *options) {
		o.historyCapacity = n
	}
}

// WithToolbarHeight sets the height of the toolbar band. Use 0 for a
// front-end without a toolbar over the drawing surface.
func WithToolbarHeight(h float64) Option {
	return func(o *options) {
		o.toolbarHeight = max(h, 0)
	}
}

// WithToolState sets the initial tool and style, for example one restored
// from settings. Out-of-range values are clamped.
func WithToolState(s ToolState) Option {
	return func(o *options) {
		o.state = &s
	}
}

// WithClock sets the time source used for export file names and notice
// expiry. Tests use it to get deterministic names.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithFonts sets the font registry used to render text.
// By default a registry with the Go fonts is created.
func WithFonts(r *text.Registry) Option {
	return func(o *options) {
		o.fonts = r
	}
}

// WithExportDir sets the directory used by Export.
// By default images are saved to the user's home directory.
func WithExportDir(dir string) Option {
	return func(o *options) {
		o.exportDir = dir
	}
}
