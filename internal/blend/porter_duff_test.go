package blend

import "testing"

type px struct{ r, g, b, a byte }

func apply(mode Mode, s, d px) px {
	r, g, b, a := Get(mode)(s.r, s.g, s.b, s.a, d.r, d.g, d.b, d.a)
	return px{r, g, b, a}
}

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name string
		src  px
		dst  px
		want px
	}{
		{"opaque over anything", px{255, 50, 50, 255}, px{0, 0, 255, 128}, px{255, 50, 50, 255}},
		{"anything over transparent", px{10, 20, 30, 128}, px{0, 0, 0, 0}, px{10, 20, 30, 128}},
		{"transparent over dst", px{10, 20, 30, 0}, px{1, 2, 3, 200}, px{1, 2, 3, 200}},
		{"half over opaque", px{255, 0, 0, 128}, px{0, 0, 255, 255}, px{128, 0, 127, 255}},
		{"same color translucent", px{255, 50, 50, 128}, px{255, 50, 50, 128}, px{255, 50, 50, 192}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(ModeSourceOver, tt.src, tt.dst); got != tt.want {
				t.Errorf("SourceOver(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

// TestClearFullCoverage verifies that a fully covered pixel always ends up
// transparent regardless of its previous color.
func TestClearFullCoverage(t *testing.T) {
	for _, dst := range []px{{255, 50, 50, 255}, {1, 2, 3, 128}, {0, 0, 0, 1}, {0, 0, 0, 0}} {
		if got := apply(ModeClear, px{0, 0, 0, 255}, dst); got != (px{}) {
			t.Errorf("Clear(full, %v) = %v, want transparent", dst, got)
		}
	}
}

func TestClearPartialCoverage(t *testing.T) {
	got := apply(ModeClear, px{0, 0, 0, 128}, px{255, 50, 50, 255})
	want := px{255, 50, 50, 127}
	if got != want {
		t.Errorf("Clear(half, opaque) = %v, want %v", got, want)
	}

	got = apply(ModeClear, px{0, 0, 0, 0}, px{255, 50, 50, 255})
	if got != (px{255, 50, 50, 255}) {
		t.Errorf("Clear(none, opaque) = %v, want unchanged", got)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSourceOver, "SourceOver"},
		{ModeClear, "Clear"},
		{Mode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
