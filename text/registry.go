package text

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// DefaultFamily is the family used when a requested family is unknown.
const DefaultFamily = "Sans"

// Registry maps family names to font sources. Lookups ignore case and
// surrounding space. A new Registry knows the Go fonts under the names
// below, plus the aliases "sans-serif", "go", "monospace" and "go mono".
//
//	Sans, Sans Bold, Sans Italic, Sans Bold Italic, Sans Medium,
//	Mono, Mono Bold, Mono Italic, Small Caps
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]*FontSource
	names    map[string]string // key -> display name
	fallback *FontSource
}

// NewRegistry returns a registry with the Go fonts registered.
func NewRegistry() *Registry {
	r := &Registry{
		families: make(map[string]*FontSource),
		names:    make(map[string]string),
	}
	builtin := []struct {
		name string
		ttf  []byte
	}{
		{"Sans", goregular.TTF},
		{"Sans Bold", gobold.TTF},
		{"Sans Italic", goitalic.TTF},
		{"Sans Bold Italic", gobolditalic.TTF},
		{"Sans Medium", gomedium.TTF},
		{"Mono", gomono.TTF},
		{"Mono Bold", gomonobold.TTF},
		{"Mono Italic", gomonoitalic.TTF},
		{"Small Caps", gosmallcaps.TTF},
	}
	for _, b := range builtin {
		r.put(b.name, builtinSource(b.ttf))
	}
	r.fallback = r.families[key(DefaultFamily)]
	r.alias("sans-serif", "Sans")
	r.alias("go", "Sans")
	r.alias("monospace", "Mono")
	r.alias("go mono", "Mono")
	return r
}

func key(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

func (r *Registry) put(family string, src *FontSource) {
	k := key(family)
	r.families[k] = src
	r.names[k] = strings.TrimSpace(family)
}

// alias makes name resolve to the source of target without listing it.
func (r *Registry) alias(name, target string) {
	r.families[key(name)] = r.families[key(target)]
}

// Register adds or replaces a family.
func (r *Registry) Register(family string, src *FontSource) error {
	if key(family) == "" {
		return ErrEmptyFamily
	}
	if src == nil {
		return ErrEmptyFontData
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(family, src)
	return nil
}

// RegisterFile loads a TTF or OTF file and registers it as family.
func (r *Registry) RegisterFile(family, path string) error {
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	return r.Register(family, src)
}

// Has reports whether family is registered (aliases included).
func (r *Registry) Has(family string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.families[key(family)]
	return ok
}

// Families returns the registered family names, sorted. Aliases are not
// listed.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Source returns the source registered for family, falling back to
// DefaultFamily when the family is unknown.
func (r *Registry) Source(family string) *FontSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if src, ok := r.families[key(family)]; ok {
		return src
	}
	return r.families[key(DefaultFamily)]
}

// Face returns family at px pixels per em. If the family is unknown or
// its font cannot be parsed, the built-in Go Regular font is used instead.
func (r *Registry) Face(family string, px float64) (*Face, error) {
	if f, err := r.Source(family).Face(px); err == nil {
		return f, nil
	}
	return r.fallback.Face(px)
}
