package board

import (
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/runrig-coop/farm-flow-board/canvas"
	"github.com/runrig-coop/farm-flow-board/internal/cache"
	"github.com/runrig-coop/farm-flow-board/resource"
	"github.com/runrig-coop/farm-flow-board/style"
)

// Marker geometry as fractions of the grid unit.
const (
	markerRadius = 11.0 / 30.0
	markerGap    = 0.2
)

// locationLabelInset is the gap between location names and the grid.
const locationLabelInset = 6

// colorCacheSize bounds the parsed operation colors kept per renderer.
const colorCacheSize = 256

// markerFill is a parsed operation color. ok is false for colors that
// failed to parse.
type markerFill struct {
	color gg.RGBA
	ok    bool
}

// Renderer draws boards with one resolved style.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	style    style.Style
	dates    DateFormatter
	duration time.Duration
	colors   *cache.Cache[string, markerFill]
	active   *Transition
}

// NewRenderer creates a Renderer for st. The style must already be
// resolved; see style.Resolve.
func NewRenderer(st style.Style, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		style:    st,
		dates:    o.dates,
		duration: o.duration,
		colors:   cache.New[string, markerFill](colorCacheSize),
	}
}

// Style returns the renderer's style.
func (r *Renderer) Style() style.Style { return r.style }

// SetStyle replaces the renderer's style for subsequent draws.
func (r *Renderer) SetStyle(st style.Style) { r.style = st }

// SetHighlight moves the highlighted column and row. Pass -1 to clear one.
func (r *Renderer) SetHighlight(column, row int) {
	r.style.Highlight.Column = column
	r.style.Highlight.Row = row
}

// Layout computes the board that Draw would render on s.
func (r *Renderer) Layout(s canvas.Surface, values AxisValues, index Index) BoardProperties {
	return ComputeBoard(surfaceSize(s), values, index, &r.style)
}

// Draw renders one complete board at index onto s and returns its
// geometry. The surface may grow; see EnsureCapacity.
func (r *Renderer) Draw(s canvas.Surface, values AxisValues, tasks resource.TaskMatrix, index Index) BoardProperties {
	board := r.Layout(s, values, index)
	EnsureCapacity(s, board)
	drawBackground(s, board)
	drawGrid(s, board.Grid, &board.Highlight)
	r.labelAxisX(s, board.Grid, board.Axes.X)
	labelAxisY(s, board.Grid, board.Axes.Y)
	r.plotTasks(s, board, tasks)
	return board
}

// EnsureCapacity grows s to fit board when the board is taller than the
// surface by more than one grid unit, leaving half a unit of slack below
// it. It never shrinks s and reports whether it resized.
func EnsureCapacity(s canvas.Surface, board BoardProperties) bool {
	unit := board.Grid.Unit
	if board.Height-float64(s.Height()) <= unit {
		return false
	}
	h := int(math.Ceil(board.Height + 0.5*unit))
	Logger().Debug("board: growing surface", "from", s.Height(), "to", h)
	s.SetSize(s.Width(), h)
	return true
}

func surfaceSize(s canvas.Surface) Size {
	return Size{Width: float64(s.Width()), Height: float64(s.Height())}
}

func drawBackground(s canvas.Surface, board BoardProperties) {
	w, h := float64(s.Width()), float64(s.Height())
	s.Save()
	s.ClearRect(0, 0, w, h)
	s.SetFillStyle(board.Style.Fill)
	s.FillRect(0, 0, w, h)
	s.Restore()
}

// drawGrid fills the grid, outlines it, fills the highlight bands that lie
// within it and draws the interior gridlines. A nil highlight draws none.
func drawGrid(s canvas.Surface, grid GridProperties, hl *HighlightBox) {
	originX, originY := grid.Origin.X, grid.Origin.Y
	terminusX, terminusY := grid.Terminus.X, grid.Terminus.Y
	width, height := grid.Width(), grid.Height()

	s.Save()
	defer s.Restore()

	s.SetFillStyle(grid.Fill)
	s.FillRect(originX, originY, width, height)
	s.SetStrokeStyle(grid.Stroke)
	outline := grid.LineWidth / 2
	s.SetLineWidth(outline)
	s.StrokeRect(originX-outline/2, originY-outline/2, width+outline, height+outline)
	s.SetLineWidth(grid.LineWidth)

	if hl != nil {
		if hl.Row.Origin.Y >= originY && hl.Row.Terminus.Y <= terminusY {
			s.SetFillStyle(hl.Fill)
			s.FillRect(hl.Row.Origin.X, hl.Row.Origin.Y, width, grid.Unit)
		}
		if hl.Column.Origin.X >= originX && hl.Column.Terminus.X <= terminusX {
			s.SetFillStyle(hl.Fill)
			s.FillRect(hl.Column.Origin.X, hl.Column.Origin.Y, grid.Unit, height)
		}
	}

	for i := 1; i < grid.Rows; i++ {
		y := originY + float64(i)*grid.Unit
		s.BeginPath()
		s.MoveTo(originX, y)
		s.LineTo(terminusX, y)
		s.Stroke()
	}
	for i := 1; i < grid.Columns; i++ {
		x := originX + float64(i)*grid.Unit
		s.BeginPath()
		s.MoveTo(x, originY)
		s.LineTo(x, terminusY)
		s.Stroke()
	}
}

// labelAxisX draws day numerals over each column and month names over
// their spans, with rules between them.
func (r *Renderer) labelAxisX(s canvas.Surface, grid GridProperties, axis AxisProperties[time.Time]) {
	axisHeight := axis.Height()
	dateLineHeight := math.Floor(axisHeight * 5 / 9)
	dateFontSize := math.Floor(dateLineHeight * 5 / 9)
	dateBaseline := axisHeight - math.Floor(dateLineHeight/3)
	origin := axis.Origin
	span := float64(len(axis.Values)) * grid.Unit

	s.Save()
	defer s.Restore()

	s.SetFillStyle(axis.Color)
	s.SetFont(canvas.Font{Size: dateFontSize, Family: axis.FontFamily})
	s.SetTextAlign(canvas.AlignCenter)
	for i, d := range axis.Values {
		x := origin.X + float64(i)*grid.Unit + 0.5*grid.Unit
		s.FillText(r.dates.Day(d), x, dateBaseline)
	}

	s.SetStrokeStyle(grid.Stroke)
	s.StrokeRect(origin.X, 0, span, axisHeight)

	monthLineHeight := math.Floor(axisHeight * 3 / 9)
	monthFontSize := math.Floor(monthLineHeight * 2 / 3)
	monthBaseline := monthLineHeight - math.Floor(monthLineHeight/5)

	s.BeginPath()
	s.MoveTo(origin.X, monthLineHeight)
	s.LineTo(origin.X+span, monthLineHeight)
	s.Stroke()

	s.SetFont(canvas.Font{Size: monthFontSize, Family: axis.FontFamily})
	for i, month := range GroupMonths(axis.Values, r.dates.MonthName) {
		width := float64(month.Columns()) * grid.Unit
		x := origin.X + float64(month.StartCol)*grid.Unit
		if i != 0 {
			s.BeginPath()
			s.MoveTo(x, 0)
			s.LineTo(x, axisHeight)
			s.Stroke()
		}
		s.FillText(month.Name, x+0.5*width, monthBaseline)
	}
}

// labelAxisY right-aligns location names against the grid, three quarters
// of the way down each row.
func labelAxisY(s canvas.Surface, grid GridProperties, axis AxisProperties[resource.Location]) {
	s.Save()
	defer s.Restore()

	s.SetFillStyle(axis.Color)
	s.SetFont(canvas.Font{Size: grid.Unit * 0.65, Family: axis.FontFamily})
	s.SetTextAlign(canvas.AlignEnd)
	x := axis.Width() - locationLabelInset
	for i, loc := range axis.Values {
		y := axis.Origin.Y + float64(i+1)*grid.Unit - grid.Unit*0.25
		s.FillText(loc.Name, x, y)
	}
}

func (r *Renderer) plotTasks(s canvas.Surface, board BoardProperties, tasks resource.TaskMatrix) {
	for iy, loc := range board.Axes.Y.Values {
		row, ok := tasks.Row(loc.ID)
		if !ok {
			continue
		}
		for ix, date := range board.Axes.X.Values {
			if ops := row.On(date); len(ops) > 0 {
				r.plotCell(s, board.Grid, ops, ix, iy)
			}
		}
	}
}

// MarkerOffsets returns the horizontal offsets of k markers from their
// cell's center. The layout is symmetric about the center, neighbours sit
// one gap apart, and a single marker is centered.
func MarkerOffsets(k int, unit float64) []float64 {
	if k <= 0 {
		return nil
	}
	radius := unit * markerRadius
	gap := unit * markerGap
	total := 2*radius + float64(k-1)*gap
	offsets := make([]float64, k)
	for i := range offsets {
		offsets[i] = radius + float64(i)*gap - total/2
	}
	return offsets
}

func (r *Renderer) plotCell(s canvas.Surface, grid GridProperties, ops []resource.Operation, ix, iy int) {
	s.Save()
	defer s.Restore()

	cx := grid.Origin.X + (float64(ix)+0.5)*grid.Unit
	cy := grid.Origin.Y + (float64(iy)+0.5)*grid.Unit
	radius := grid.Unit * markerRadius
	shadow := canvas.Shadow{
		Color:   grid.Markers.ShadowColor,
		Blur:    grid.Markers.ShadowBlur,
		OffsetX: grid.Markers.ShadowOffsetX,
		OffsetY: grid.Markers.ShadowOffsetY,
	}

	for i, offset := range MarkerOffsets(len(ops), grid.Unit) {
		s.SetFillStyle(r.markerColor(ops[i], grid.Markers.Fill))
		s.BeginPath()
		s.Arc(cx+offset, cy, radius, 0, 2*math.Pi)
		s.SetShadow(shadow)
		s.Fill()
		s.SetShadow(canvas.NoShadow)
	}
}

// markerColor parses an operation's color, falling back to fallback when
// it is empty or unparseable. Parse results are cached, so a bad color is
// reported once.
func (r *Renderer) markerColor(op resource.Operation, fallback gg.RGBA) gg.RGBA {
	if op.Color == "" {
		return fallback
	}
	fill, created := r.colors.GetOrCreate(op.Color, func() markerFill {
		c, err := style.ParseColor(op.Color)
		return markerFill{color: c, ok: err == nil}
	})
	if !fill.ok {
		if created {
			Logger().Warn("board: bad operation color, using default", "operation", op.ID, "color", op.Color)
		}
		return fallback
	}
	return fill.color
}
