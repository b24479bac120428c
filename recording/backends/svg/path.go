package svg

import (
	"math"
	"strings"
)

// pathBuilder accumulates SVG path data.
type pathBuilder struct {
	sb      strings.Builder
	current bool
}

func (p *pathBuilder) reset() {
	p.sb.Reset()
	p.current = false
}

func (p *pathBuilder) empty() bool { return p.sb.Len() == 0 }

func (p *pathBuilder) String() string { return strings.TrimSpace(p.sb.String()) }

func (p *pathBuilder) cmd(op string, vals ...float64) {
	p.sb.WriteString(op)
	for _, v := range vals {
		p.sb.WriteByte(' ')
		p.sb.WriteString(num(v))
	}
	p.sb.WriteByte(' ')
}

func (p *pathBuilder) moveTo(x, y float64) {
	p.cmd("M", x, y)
	p.current = true
}

func (p *pathBuilder) lineTo(x, y float64) {
	if !p.current {
		p.moveTo(x, y)
		return
	}
	p.cmd("L", x, y)
}

func (p *pathBuilder) close() {
	if p.current {
		p.cmd("Z")
	}
}

func (p *pathBuilder) rect(x, y, w, h float64) {
	p.moveTo(x, y)
	p.cmd("H", x+w)
	p.cmd("V", y+h)
	p.cmd("H", x)
	p.close()
}

// arc appends a clockwise arc. Sweeps of a full turn or more become a
// circle drawn as two half arcs.
func (p *pathBuilder) arc(cx, cy, r, start, end float64) {
	sx, sy := cx+r*math.Cos(start), cy+r*math.Sin(start)
	p.lineTo(sx, sy)

	sweep := end - start
	if sweep >= 2*math.Pi {
		mx, my := cx-r*math.Cos(start), cy-r*math.Sin(start)
		p.cmd("A", r, r, 0, 0, 1, mx, my)
		p.cmd("A", r, r, 0, 0, 1, sx, sy)
		return
	}
	if sweep <= 0 {
		return
	}
	large := 0.0
	if sweep > math.Pi {
		large = 1
	}
	p.cmd("A", r, r, 0, large, 1, cx+r*math.Cos(end), cy+r*math.Sin(end))
}
