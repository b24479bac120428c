package board

import "math"

// Coordinate is a pixel position.
type Coordinate struct {
	X, Y float64
}

// Box is an axis-aligned rectangle from Origin to Terminus.
type Box struct {
	Origin   Coordinate
	Terminus Coordinate
}

// Width returns Terminus.X - Origin.X.
func (b Box) Width() float64 { return b.Terminus.X - b.Origin.X }

// Height returns Terminus.Y - Origin.Y.
func (b Box) Height() float64 { return b.Terminus.Y - b.Origin.Y }

// Contains reports whether (x, y) lies inside b. The terminus edges are
// exclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Origin.X && x < b.Terminus.X && y >= b.Origin.Y && y < b.Terminus.Y
}

// Inside reports whether b lies entirely within outer.
func (b Box) Inside(outer Box) bool {
	return b.Origin.X >= outer.Origin.X && b.Terminus.X <= outer.Terminus.X &&
		b.Origin.Y >= outer.Origin.Y && b.Terminus.Y <= outer.Terminus.Y
}

// Size is a surface size in pixels.
type Size struct {
	Width, Height float64
}

// Grow returns s enlarged by the absolute values of dw and dh.
func (s Size) Grow(dw, dh float64) Size {
	return Size{Width: s.Width + math.Abs(dw), Height: s.Height + math.Abs(dh)}
}
