package canvas

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// Surface is a mutable 2D raster target.
//
// Coordinates are in pixels with the origin at the top-left corner. Styles
// set on a Surface stay in effect until changed or until Restore pops the
// state saved by the matching Save.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int
	// Height returns the surface height in pixels.
	Height() int
	// SetSize resizes the surface. Like a canvas element, resizing clears
	// the pixels and resets the drawing state.
	SetSize(width, height int)

	// Save pushes the complete drawing state onto a stack.
	Save()
	// Restore pops the drawing state saved by the last Save. It is a no-op
	// on an empty stack.
	Restore()

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centred on (x, y) from startAngle to endAngle,
	// in radians, clockwise in screen space.
	Arc(x, y, r, startAngle, endAngle float64)
	ClosePath()
	// Fill fills the current path. The path is kept.
	Fill()
	// Stroke strokes the current path. The path is kept.
	Stroke()
	// Clip intersects the clipping region with the current path.
	Clip()

	// FillText draws s with its baseline at y, aligned on x according to
	// the current text alignment.
	FillText(s string, x, y float64)

	SetFillStyle(c gg.RGBA)
	SetStrokeStyle(c gg.RGBA)
	SetLineWidth(w float64)
	SetFont(f Font)
	SetTextAlign(a TextAlign)
	SetShadow(s Shadow)

	// Translate moves the origin of the current transform.
	Translate(x, y float64)
	// ResetTransform sets the current transform back to identity.
	ResetTransform()
}

// TextAlign is the horizontal alignment of text relative to its x position.
type TextAlign uint8

const (
	// AlignStart puts x at the left edge of the text.
	AlignStart TextAlign = iota
	// AlignCenter puts x at the horizontal centre of the text.
	AlignCenter
	// AlignEnd puts x at the right edge of the text.
	AlignEnd
)

// String returns the CSS keyword for the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("TextAlign(%d)", a)
	}
}

// anchor returns the horizontal anchor fraction used by gg.
func (a TextAlign) anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignEnd:
		return 1
	default:
		return 0
	}
}

// Font selects a font by pixel size and CSS-style family list.
type Font struct {
	Size   float64
	Family string
}

// DefaultFont is the font a fresh drawing state starts with.
var DefaultFont = Font{Size: 10, Family: "sans-serif"}

// String formats the font like a CSS font shorthand, e.g. "16px Inter".
func (f Font) String() string {
	return fmt.Sprintf("%gpx %s", f.Size, f.Family)
}

// Families splits the family list into individual names with quotes and
// surrounding whitespace removed.
func (f Font) Families() []string {
	parts := strings.Split(f.Family, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// Shadow describes the drop shadow applied to fills.
type Shadow struct {
	Color   gg.RGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// NoShadow disables shadows.
var NoShadow = Shadow{Color: gg.Transparent}

// Visible reports whether drawing with s produces any shadow pixels.
func (s Shadow) Visible() bool {
	return s.Color.A > 0 && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}
