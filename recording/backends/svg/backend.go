// Package svg provides an SVG backend for the recording system, written
// with github.com/ajstarks/svgo.
//
// Paths, rectangles and text map onto SVG elements. Clips become clipPath
// groups that close on Restore. Drop shadows are drawn as an offset copy of
// the shape in the shadow color; blur is not reproduced.
//
//	import _ "github.com/runrig-coop/farm-flow-board/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"

	"github.com/runrig-coop/farm-flow-board/canvas"
	"github.com/runrig-coop/farm-flow-board/internal/logging"
	"github.com/runrig-coop/farm-flow-board/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	}, "svg")
}

// Backend writes SVG documents.
type Backend struct {
	width, height int
	began, ended  bool

	body   bytes.Buffer
	doc    *svgo.SVG
	out    bytes.Buffer
	clipID int

	state state
	stack []state
	path  pathBuilder
}

type state struct {
	fill      gg.RGBA
	stroke    gg.RGBA
	lineWidth float64
	font      canvas.Font
	align     canvas.TextAlign
	shadow    canvas.Shadow
	tx, ty    float64
	groups    int
}

func defaultState() state {
	return state{
		fill:      gg.Black,
		stroke:    gg.Black,
		lineWidth: 1,
		font:      canvas.DefaultFont,
		align:     canvas.AlignStart,
		shadow:    canvas.NoShadow,
	}
}

var _ recording.Backend = (*Backend)(nil)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{state: defaultState()}
}

// Begin starts a document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: begin: %w: %dx%d", canvas.ErrInvalidDimensions, width, height)
	}
	b.width, b.height = width, height
	b.body.Reset()
	b.out.Reset()
	b.doc = svgo.New(&b.body)
	b.state = defaultState()
	b.stack = b.stack[:0]
	b.path.reset()
	b.began, b.ended = true, false
	return nil
}

// End closes open groups and assembles the document.
func (b *Backend) End() error {
	if !b.began {
		return fmt.Errorf("svg: End called before Begin")
	}
	for len(b.stack) > 0 {
		b.Restore()
	}
	b.closeGroups()

	b.out.Reset()
	doc := svgo.New(&b.out)
	doc.Start(b.width, b.height)
	if _, err := b.body.WriteTo(&b.out); err != nil {
		return fmt.Errorf("svg: assemble: %w", err)
	}
	doc.End()
	b.ended = true
	return nil
}

// WriteTo writes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, fmt.Errorf("svg: WriteTo called before End")
	}
	return bytes.NewReader(b.out.Bytes()).WriteTo(w)
}

// Bytes returns the finished document.
func (b *Backend) Bytes() []byte { return b.out.Bytes() }

func (b *Backend) Width() int  { return b.width }
func (b *Backend) Height() int { return b.height }

// SetSize resizes the document and discards everything drawn so far.
func (b *Backend) SetSize(w, h int) {
	if w <= 0 || h <= 0 {
		logging.Logger().Warn("svg: resize rejected", "width", w, "height", h)
		return
	}
	b.width, b.height = w, h
	b.body.Reset()
	b.state = defaultState()
	b.stack = b.stack[:0]
	b.path.reset()
}

func (b *Backend) Save() {
	b.stack = append(b.stack, b.state)
	b.state.groups = 0
}

func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.closeGroups()
	b.state = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Backend) closeGroups() {
	for ; b.state.groups > 0; b.state.groups-- {
		b.doc.Gend()
	}
}

// ClearRect discards the document body when it covers the whole surface
// outside any clip; SVG has no way to erase a region.
func (b *Backend) ClearRect(x, y, w, h float64) {
	x, y = x+b.state.tx, y+b.state.ty
	full := x <= 0 && y <= 0 && x+w >= float64(b.width) && y+h >= float64(b.height)
	if full && b.openGroups() == 0 {
		b.body.Reset()
		return
	}
	logging.Logger().Debug("svg: partial ClearRect ignored", "x", x, "y", y, "w", w, "h", h)
}

func (b *Backend) openGroups() int {
	n := b.state.groups
	for _, s := range b.stack {
		n += s.groups
	}
	return n
}

func (b *Backend) FillRect(x, y, w, h float64) {
	var p pathBuilder
	p.rect(x+b.state.tx, y+b.state.ty, w, h)
	b.fillPath(p.String())
}

func (b *Backend) StrokeRect(x, y, w, h float64) {
	var p pathBuilder
	p.rect(x+b.state.tx, y+b.state.ty, w, h)
	b.strokePath(p.String())
}

func (b *Backend) BeginPath() { b.path.reset() }

func (b *Backend) MoveTo(x, y float64) { b.path.moveTo(x+b.state.tx, y+b.state.ty) }

func (b *Backend) LineTo(x, y float64) { b.path.lineTo(x+b.state.tx, y+b.state.ty) }

func (b *Backend) Arc(x, y, r, start, end float64) {
	b.path.arc(x+b.state.tx, y+b.state.ty, r, start, end)
}

func (b *Backend) ClosePath() { b.path.close() }

func (b *Backend) Fill() {
	if !b.path.empty() {
		b.fillPath(b.path.String())
	}
}

func (b *Backend) Stroke() {
	if !b.path.empty() {
		b.strokePath(b.path.String())
	}
}

// Clip opens a group clipped to the current path. The group closes on the
// matching Restore.
func (b *Backend) Clip() {
	if b.path.empty() {
		return
	}
	b.clipID++
	id := "clip" + strconv.Itoa(b.clipID)
	b.doc.ClipPath(`id="` + id + `"`)
	b.doc.Path(b.path.String())
	b.doc.ClipEnd()
	b.doc.Group(`clip-path="url(#` + id + `)"`)
	b.state.groups++
}

func (b *Backend) FillText(s string, x, y float64) {
	st := []string{
		"font-family:" + b.state.font.Family,
		"font-size:" + num(b.state.font.Size) + "px",
		"text-anchor:" + anchor(b.state.align),
	}
	st = append(st, paint("fill", b.state.fill)...)
	b.doc.Text(round(x+b.state.tx), round(y+b.state.ty), s, strings.Join(st, ";"))
}

func (b *Backend) SetFillStyle(c gg.RGBA)          { b.state.fill = c }
func (b *Backend) SetStrokeStyle(c gg.RGBA)        { b.state.stroke = c }
func (b *Backend) SetLineWidth(w float64)          { b.state.lineWidth = w }
func (b *Backend) SetFont(f canvas.Font)           { b.state.font = f }
func (b *Backend) SetTextAlign(a canvas.TextAlign) { b.state.align = a }
func (b *Backend) SetShadow(s canvas.Shadow)       { b.state.shadow = s }

func (b *Backend) Translate(x, y float64) {
	b.state.tx += x
	b.state.ty += y
}

func (b *Backend) ResetTransform() { b.state.tx, b.state.ty = 0, 0 }

func (b *Backend) fillPath(d string) {
	if sh := b.state.shadow; sh.Visible() {
		st := append(paint("fill", sh.Color), "stroke:none")
		b.doc.Path(d, fmt.Sprintf(`transform="translate(%s,%s)"`, num(sh.OffsetX), num(sh.OffsetY)), strings.Join(st, ";"))
	}
	st := append(paint("fill", b.state.fill), "stroke:none")
	b.doc.Path(d, strings.Join(st, ";"))
}

func (b *Backend) strokePath(d string) {
	st := append([]string{"fill:none", "stroke-width:" + num(b.state.lineWidth)}, paint("stroke", b.state.stroke)...)
	b.doc.Path(d, strings.Join(st, ";"))
}

// paint returns the CSS declarations for a color property.
func paint(prop string, c gg.RGBA) []string {
	ch := func(f float64) int { return int(math.Round(math.Max(0, math.Min(1, f)) * 255)) }
	decl := []string{fmt.Sprintf("%s:rgb(%d,%d,%d)", prop, ch(c.R), ch(c.G), ch(c.B))}
	if c.A < 1 {
		decl = append(decl, prop+"-opacity:"+num(c.A))
	}
	return decl
}

func anchor(a canvas.TextAlign) string {
	switch a {
	case canvas.AlignCenter:
		return "middle"
	case canvas.AlignEnd:
		return "end"
	}
	return "start"
}

func round(v float64) int { return int(math.Round(v)) }

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
