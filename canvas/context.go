package canvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/runrig-coop/farm-flow-board/internal/logging"
)

// ErrInvalidDimensions is returned when a Context is created or resized with
// a non-positive width or height.
var ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

// Ensure Context implements Surface.
var _ Surface = (*Context)(nil)

// Context is a Surface that rasterizes onto a gg.Context.
//
// The gg transform is kept at identity: Context applies its own translation
// to every coordinate before handing it to gg, which keeps text, shadows and
// clip bookkeeping in a single coordinate space.
type Context struct {
	dc     *gg.Context
	fonts  *FontBook
	width  int
	height int

	state drawState
	stack []drawState
	path  []segment
}

// drawState is everything Save and Restore cover besides gg's clip stack.
type drawState struct {
	fill      gg.RGBA
	stroke    gg.RGBA
	lineWidth float64
	font      Font
	align     TextAlign
	shadow    Shadow
	tx, ty    float64
	clip      rect
}

func defaultState(width, height int) drawState {
	return drawState{
		fill:      gg.Black,
		stroke:    gg.Black,
		lineWidth: 1,
		font:      DefaultFont,
		align:     AlignStart,
		shadow:    NoShadow,
		clip:      rect{0, 0, float64(width), float64(height)},
	}
}

// NewContext creates a raster surface of the given size.
//
//	cc := canvas.NewContext(800, 600)
//	cc := canvas.NewContext(800, 600, canvas.WithFontBook(book))
func NewContext(width, height int, opts ...Option) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	fonts := options.fonts
	if fonts == nil {
		var err error
		fonts, err = DefaultFontBook()
		if err != nil {
			logging.Logger().Warn("canvas: default fonts unavailable, text disabled", "err", err)
		}
	}

	return &Context{
		dc:     gg.NewContext(width, height),
		fonts:  fonts,
		width:  width,
		height: height,
		state:  defaultState(width, height),
		stack:  make([]drawState, 0, 8),
	}
}

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.height }

// SetSize resizes the surface, clearing its pixels and drawing state.
// Non-positive sizes are rejected and logged; use Resize to observe the error.
func (c *Context) SetSize(width, height int) {
	if err := c.Resize(width, height); err != nil {
		logging.Logger().Warn("canvas: resize rejected", "err", err)
	}
}

// Resize is SetSize with an error return.
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if err := c.dc.Resize(width, height); err != nil {
		return fmt.Errorf("canvas: context resize failed: %w", err)
	}
	c.width = width
	c.height = height
	c.dc.ResetClip()
	c.dc.Identity()
	c.state = defaultState(width, height)
	c.stack = c.stack[:0]
	c.path = c.path[:0]
	return nil
}

// GG returns the underlying gg context.
func (c *Context) GG() *gg.Context { return c.dc }

// Image returns a snapshot of the pixels.
func (c *Context) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the pixels to w as PNG.
func (c *Context) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// SavePNG writes the pixels to a PNG file.
func (c *Context) SavePNG(path string) error { return c.dc.SavePNG(path) }

// Save pushes the drawing state.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
	c.dc.Push()
}

// Restore pops the drawing state.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dc.Pop()
}

// Depth returns the number of saved states.
func (c *Context) Depth() int { return len(c.stack) }

// ClearRect sets the pixels of the rectangle to transparent.
func (c *Context) ClearRect(x, y, w, h float64) {
	r := c.device(rect{x, y, w, h}).normalize()
	if r.x <= 0 && r.y <= 0 && r.x+r.w >= float64(c.width) && r.y+r.h >= float64(c.height) {
		c.dc.ClearWithColor(gg.Transparent)
		return
	}
	pm := c.dc.ResizeTarget()
	x0, y0 := max(int(math.Floor(r.x)), 0), max(int(math.Floor(r.y)), 0)
	x1, y1 := min(int(math.Ceil(r.x+r.w)), c.width), min(int(math.Ceil(r.y+r.h)), c.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			pm.SetPixel(px, py, gg.Transparent)
		}
	}
}

// FillRect fills a rectangle with the fill style.
func (c *Context) FillRect(x, y, w, h float64) {
	c.fillSegments(rectSegments(x+c.state.tx, y+c.state.ty, w, h))
}

// StrokeRect outlines a rectangle with the stroke style and line width.
func (c *Context) StrokeRect(x, y, w, h float64) {
	c.strokeSegments(rectSegments(x+c.state.tx, y+c.state.ty, w, h))
}

// BeginPath discards the current path.
func (c *Context) BeginPath() { c.path = c.path[:0] }

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path = append(c.path, segment{op: opMove, x: x + c.state.tx, y: y + c.state.ty})
}

// LineTo adds a straight line to (x, y).
func (c *Context) LineTo(x, y float64) {
	c.path = append(c.path, segment{op: opLine, x: x + c.state.tx, y: y + c.state.ty})
}

// Arc adds a circular arc.
func (c *Context) Arc(x, y, r, startAngle, endAngle float64) {
	c.path = append(c.path, segment{
		op: opArc, x: x + c.state.tx, y: y + c.state.ty,
		r: r, a0: startAngle, a1: endAngle,
	})
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path = append(c.path, segment{op: opClose}) }

// Fill fills the current path with the fill style.
func (c *Context) Fill() { c.fillSegments(c.path) }

// Stroke strokes the current path with the stroke style.
func (c *Context) Stroke() { c.strokeSegments(c.path) }

// Clip intersects the clip region with the current path. An open subpath is
// closed first.
//
// Text is clipped to the bounding box of the clip region.
func (c *Context) Clip() {
	if len(c.path) == 0 {
		return
	}
	if c.path[len(c.path)-1].op != opClose {
		c.path = append(c.path, segment{op: opClose})
	}
	c.dc.ClearPath()
	replay(c.dc, c.path, 0, 0)
	c.dc.Clip()
	c.state.clip = c.state.clip.intersect(bounds(c.path))
}

// FillText draws s with the fill style and current font.
func (c *Context) FillText(s string, x, y float64) {
	if s == "" || c.fonts == nil {
		return
	}
	face := c.fonts.Face(c.state.font)
	c.dc.SetFont(face)
	w, _ := c.dc.MeasureString(s)
	dx := x + c.state.tx - w*c.state.align.anchor()
	dy := y + c.state.ty
	dst := newClipTarget(c.dc.ResizeTarget(), c.state.clip)
	if dst.Bounds().Empty() {
		return
	}
	if err := c.dc.FlushGPU(); err != nil {
		logging.Logger().Warn("canvas: flush before text failed", "err", err)
	}
	text.Draw(dst, s, face, dx, dy, c.state.fill.Color())
}

// SetFillStyle sets the fill color.
func (c *Context) SetFillStyle(col gg.RGBA) { c.state.fill = col }

// SetStrokeStyle sets the stroke color.
func (c *Context) SetStrokeStyle(col gg.RGBA) { c.state.stroke = col }

// SetLineWidth sets the stroke width.
func (c *Context) SetLineWidth(w float64) { c.state.lineWidth = w }

// SetFont sets the text font.
func (c *Context) SetFont(f Font) { c.state.font = f }

// SetTextAlign sets the horizontal text alignment.
func (c *Context) SetTextAlign(a TextAlign) { c.state.align = a }

// SetShadow sets the shadow drawn beneath fills.
func (c *Context) SetShadow(s Shadow) { c.state.shadow = s }

// Translate moves the origin.
func (c *Context) Translate(x, y float64) {
	c.state.tx += x
	c.state.ty += y
}

// ResetTransform returns the origin to the top-left corner.
func (c *Context) ResetTransform() {
	c.state.tx, c.state.ty = 0, 0
}

func (c *Context) device(r rect) rect {
	r.x += c.state.tx
	r.y += c.state.ty
	return r
}

func (c *Context) fillSegments(segs []segment) {
	if len(segs) == 0 {
		return
	}
	if sh := c.state.shadow; sh.Visible() {
		c.drawShadow(segs, sh)
	}
	c.dc.ClearPath()
	replay(c.dc, segs, 0, 0)
	setColor(c.dc, c.state.fill)
	c.fill("fill")
}

func (c *Context) strokeSegments(segs []segment) {
	if len(segs) == 0 {
		return
	}
	c.dc.ClearPath()
	replay(c.dc, segs, 0, 0)
	setColor(c.dc, c.state.stroke)
	c.dc.SetLineWidth(c.state.lineWidth)
	c.stroke("stroke")
}

// drawShadow paints the offset silhouette of segs. Blur is approximated by
// a translucent halo stroked around the silhouette.
func (c *Context) drawShadow(segs []segment, sh Shadow) {
	if sh.Blur > 0 {
		halo := sh.Color
		halo.A /= 3
		c.dc.ClearPath()
		replay(c.dc, segs, sh.OffsetX, sh.OffsetY)
		setColor(c.dc, halo)
		c.dc.SetLineWidth(sh.Blur)
		c.stroke("shadow")
	}
	c.dc.ClearPath()
	replay(c.dc, segs, sh.OffsetX, sh.OffsetY)
	setColor(c.dc, sh.Color)
	c.fill("shadow")
}

func (c *Context) fill(pass string)   { warnRender("fill", pass, c.dc.Fill()) }
func (c *Context) stroke(pass string) { warnRender("stroke", pass, c.dc.Stroke()) }

// warnRender logs a failed gg render call. Drawing carries on.
func warnRender(op, pass string, err error) {
	if err != nil {
		logging.Logger().Warn("canvas: render failed", "op", op, "pass", pass, "err", err)
	}
}

func setColor(dc *gg.Context, col gg.RGBA) {
	dc.SetRGBA(col.R, col.G, col.B, col.A)
}
