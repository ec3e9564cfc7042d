package replay

import (
	"time"

	"github.com/gogpu/scrawl"
)

// Clock is a manual time source for replays. Wait steps advance it, so
// notice expiry and export names do not depend on the wall clock.
type Clock struct {
	t time.Time
}

// NewClock returns a clock starting at t.
func NewClock(t time.Time) *Clock { return &Clock{t: t} }

// Now returns the clock's time.
func (c *Clock) Now() time.Time { return c.t }

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Result summarizes a replay.
type Result struct {
	Steps int
	Quit  bool
}

// Run applies the steps of s to o in order. A step whose effect contains
// EffectQuit stops the replay. Wait steps advance clock when it is not
// nil.
func Run(o *scrawl.Overlay, s *Script, clock *Clock) Result {
	var res Result
	for i := range s.Steps {
		res.Steps++
		eff := apply(o, &s.Steps[i], clock)
		scrawl.Logger().Debug("replay: step", "n", res.Steps, "effect", eff)
		if eff.Has(scrawl.EffectQuit) {
			res.Quit = true
			break
		}
	}
	return res
}

// New creates an overlay sized for s. The replay has no toolbar over the
// canvas, whatever toolbar height opts ask for.
func New(s *Script, opts ...scrawl.Option) *scrawl.Overlay {
	opts = append(opts[:len(opts):len(opts)], scrawl.WithToolbarHeight(0))
	return scrawl.NewOverlay(s.Width, s.Height, opts...)
}

// apply runs one validated step.
func apply(o *scrawl.Overlay, st *Step, clock *Clock) scrawl.Effect {
	switch {
	case st.Tool != nil:
		t, _ := scrawl.ParseTool(*st.Tool)
		return o.SetTool(t)
	case st.Width != nil:
		return o.SetWidth(*st.Width)
	case st.Color != nil:
		c, _ := scrawl.ParseColor(*st.Color)
		return o.SetColor(c)
	case st.Fill != nil:
		return o.SetFill(*st.Fill)
	case st.Highlighter != nil:
		return o.SetHighlighter(*st.Highlighter)
	case st.Eraser != nil:
		return o.SetEraser(*st.Eraser)
	case st.Font != nil:
		return o.SetFont(st.Font.Family, st.Font.Size)
	case st.Size != nil:
		return o.QuickSize(*st.Size)
	case st.Down != nil:
		return o.PointerDown(st.Down.pt())
	case st.Move != nil:
		return o.PointerMove(st.Move.pt())
	case st.Up != nil:
		return o.PointerUp(st.Up.pt())
	case st.Drag != nil:
		eff := o.PointerDown(st.Drag[0].pt())
		for _, p := range st.Drag[1:] {
			eff |= o.PointerMove(p.pt())
		}
		return eff | o.PointerUp(st.Drag[len(st.Drag)-1].pt())
	case st.Key != nil:
		k, mods, _ := ParseKey(*st.Key)
		return o.KeyDown(k, mods)
	case st.KeyUp != nil:
		k, mods, _ := ParseKey(*st.KeyUp)
		return o.KeyUp(k, mods)
	case st.Text != nil:
		return o.UpdateText(*st.Text)
	case st.Commit != nil:
		return o.CommitText()
	case st.Cancel != nil:
		return o.CancelText()
	case st.Undo != nil:
		return o.Undo()
	case st.Clear != nil:
		return o.Clear()
	case st.Wait != nil:
		if clock != nil {
			clock.Advance(time.Duration(*st.Wait * float64(time.Second)))
		}
	}
	return 0
}
