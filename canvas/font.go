package canvas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/runrig-coop/farm-flow-board/internal/logging"
)

// FontBook resolves CSS-style family lists to gg font faces.
//
// A FontBook starts with the Go fonts registered as "Go", "sans-serif" and
// "system-ui" (Go Regular) and "Go Mono" and "monospace" (Go Mono). Families
// that are not registered fall through to the next name in the list, and a
// list with no registered name uses the fallback source.
//
// FontBook is safe for concurrent use.
type FontBook struct {
	mu       sync.Mutex
	sources  map[string]*text.FontSource
	fallback *text.FontSource
	faces    map[faceKey]text.Face
	missing  map[string]bool
}

type faceKey struct {
	source *text.FontSource
	size   float64
}

var (
	defaultBookOnce sync.Once
	defaultBook     *FontBook
	defaultBookErr  error
)

// DefaultFontBook returns a process-wide FontBook holding the Go fonts.
func DefaultFontBook() (*FontBook, error) {
	defaultBookOnce.Do(func() {
		defaultBook, defaultBookErr = NewFontBook()
	})
	return defaultBook, defaultBookErr
}

// NewFontBook creates a FontBook with the Go fonts registered.
func NewFontBook() (*FontBook, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("canvas: load Go Regular: %w", err)
	}
	mono, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("canvas: load Go Mono: %w", err)
	}

	b := &FontBook{
		sources:  make(map[string]*text.FontSource),
		fallback: regular,
		faces:    make(map[faceKey]text.Face),
		missing:  make(map[string]bool),
	}
	for _, name := range []string{"Go", "sans-serif", "system-ui"} {
		b.sources[normalizeFamily(name)] = regular
	}
	for _, name := range []string{"Go Mono", "monospace"} {
		b.sources[normalizeFamily(name)] = mono
	}
	return b, nil
}

// Register maps a family name to a font source, replacing any previous
// registration for that name.
func (b *FontBook) Register(family string, src *text.FontSource) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sources[normalizeFamily(family)] = src
	delete(b.missing, normalizeFamily(family))
}

// RegisterFile loads a TrueType or OpenType file and registers it under
// family.
func (b *FontBook) RegisterFile(family, path string) error {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return fmt.Errorf("canvas: load font %q: %w", path, err)
	}
	b.Register(family, src)
	return nil
}

// Source returns the first registered source in the family list of f, or
// the fallback source.
func (b *FontBook) Source(f Font) *text.FontSource {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sourceLocked(f)
}

func (b *FontBook) sourceLocked(f Font) *text.FontSource {
	for _, name := range f.Families() {
		if src, ok := b.sources[normalizeFamily(name)]; ok {
			return src
		}
	}
	if !b.missing[f.Family] {
		b.missing[f.Family] = true
		logging.Logger().Debug("canvas: no registered font family, using fallback", "family", f.Family)
	}
	return b.fallback
}

// Face returns a cached face for f.
func (b *FontBook) Face(f Font) text.Face {
	b.mu.Lock()
	defer b.mu.Unlock()
	src := b.sourceLocked(f)
	key := faceKey{source: src, size: f.Size}
	if face, ok := b.faces[key]; ok {
		return face
	}
	face := src.Face(f.Size)
	b.faces[key] = face
	return face
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
