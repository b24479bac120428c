package canvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

type segmentOp uint8

const (
	opMove segmentOp = iota
	opLine
	opArc
	opClose
)

// segment is one path element in device space.
type segment struct {
	op     segmentOp
	x, y   float64
	r      float64
	a0, a1 float64
}

// arcSteps is the number of line segments used per full turn when an arc is
// not a complete circle.
const arcSteps = 64

func rectSegments(x, y, w, h float64) []segment {
	return []segment{
		{op: opMove, x: x, y: y},
		{op: opLine, x: x + w, y: y},
		{op: opLine, x: x + w, y: y + h},
		{op: opLine, x: x, y: y + h},
		{op: opClose},
	}
}

// replay feeds segs to dc, offset by (dx, dy).
func replay(dc *gg.Context, segs []segment, dx, dy float64) {
	open := false
	for _, s := range segs {
		switch s.op {
		case opMove:
			dc.MoveTo(s.x+dx, s.y+dy)
			open = true
		case opLine:
			if open {
				dc.LineTo(s.x+dx, s.y+dy)
			} else {
				dc.MoveTo(s.x+dx, s.y+dy)
				open = true
			}
		case opArc:
			sweep := s.a1 - s.a0
			if math.Abs(sweep) >= 2*math.Pi {
				dc.DrawCircle(s.x+dx, s.y+dy, s.r)
				open = false
				continue
			}
			n := max(int(math.Ceil(math.Abs(sweep)/(2*math.Pi)*arcSteps)), 1)
			for i := 0; i <= n; i++ {
				a := s.a0 + sweep*float64(i)/float64(n)
				px := s.x + dx + s.r*math.Cos(a)
				py := s.y + dy + s.r*math.Sin(a)
				if i == 0 && !open {
					dc.MoveTo(px, py)
					open = true
					continue
				}
				dc.LineTo(px, py)
			}
		case opClose:
			if open {
				dc.ClosePath()
			}
			open = false
		}
	}
}

// rect is an axis-aligned rectangle.
type rect struct {
	x, y, w, h float64
}

func (r rect) normalize() rect {
	if r.w < 0 {
		r.x, r.w = r.x+r.w, -r.w
	}
	if r.h < 0 {
		r.y, r.h = r.y+r.h, -r.h
	}
	return r
}

func (r rect) intersect(o rect) rect {
	r, o = r.normalize(), o.normalize()
	x0 := math.Max(r.x, o.x)
	y0 := math.Max(r.y, o.y)
	x1 := math.Min(r.x+r.w, o.x+o.w)
	y1 := math.Min(r.y+r.h, o.y+o.h)
	return rect{x0, y0, math.Max(x1-x0, 0), math.Max(y1-y0, 0)}
}

// pixels returns the smallest pixel rectangle covering r.
func (r rect) pixels() image.Rectangle {
	r = r.normalize()
	return image.Rect(
		int(math.Floor(r.x)), int(math.Floor(r.y)),
		int(math.Ceil(r.x+r.w)), int(math.Ceil(r.y+r.h)),
	)
}

// bounds returns the bounding box of segs.
func bounds(segs []segment) rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	for _, s := range segs {
		switch s.op {
		case opMove, opLine:
			grow(s.x, s.y)
		case opArc:
			grow(s.x-s.r, s.y-s.r)
			grow(s.x+s.r, s.y+s.r)
		}
	}
	if math.IsInf(minX, 1) {
		return rect{}
	}
	return rect{minX, minY, maxX - minX, maxY - minY}
}
