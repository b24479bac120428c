package board

import (
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/runrig-coop/farm-flow-board/resource"
	"github.com/runrig-coop/farm-flow-board/style"
)

// Index is an index window: the first visible date (X) and location (Y).
// Callers own it and carry it between renders.
type Index struct {
	X, Y int
}

// AxisValues holds the full date and location sequences a board windows
// over.
type AxisValues struct {
	X []time.Time
	Y []resource.Location
}

// GridProperties describes the cell grid.
type GridProperties struct {
	Box
	Unit      float64
	Rows      int
	Columns   int
	Fill      gg.RGBA
	Stroke    gg.RGBA
	LineWidth float64
	Markers   style.Markers
}

// AxisProperties describes one label band and the values labelled in it.
type AxisProperties[V any] struct {
	Box
	Values     []V
	Color      gg.RGBA
	FontFamily string
}

// Axes holds the date axis above the grid and the location axis to its
// left.
type Axes struct {
	X AxisProperties[time.Time]
	Y AxisProperties[resource.Location]
}

// HighlightBox holds the highlighted column and row bands. Either may lie
// outside the grid, in which case it is not drawn.
type HighlightBox struct {
	Column Box
	Row    Box
	Fill   gg.RGBA
}

// BoardStyle is the board-wide fill and stroke.
type BoardStyle struct {
	Fill   gg.RGBA
	Stroke gg.RGBA
}

// BoardProperties is the full geometry of one rendered board.
type BoardProperties struct {
	Width     float64
	Height    float64
	Grid      GridProperties
	Axes      Axes
	Highlight HighlightBox
	// Index is the index window that was requested.
	Index Index
	// Start is the index window actually shown after clamping.
	Start Index
	Style BoardStyle
}

// ComputeBoard lays out a board on a surface of the given size. It windows
// values.X over the width left of the location axis and values.Y over the
// height below the date axis, then derives every box from the resulting
// column and row counts.
//
// ComputeBoard is pure and does not validate st; degenerate sizes yield
// degenerate but finite geometry.
func ComputeBoard(size Size, values AxisValues, index Index, st *style.Style) BoardProperties {
	yAxisWidth := st.Axes.YAxisWidth
	xAxisHeight := st.Axes.XAxisHeight
	unit := st.Grid.Unit

	ix, iy := index.X, index.Y
	dates := FitToGrid(size.Width, yAxisWidth, values.X, unit, &ix)
	locations := FitToGrid(size.Height, xAxisHeight, values.Y, unit, &iy)

	columns := len(dates)
	rows := len(locations)
	gridWidth := float64(columns) * unit
	gridHeight := float64(rows) * unit
	boardWidth := yAxisWidth + gridWidth
	boardHeight := xAxisHeight + gridHeight

	hlColX := yAxisWidth + float64(st.Highlight.Column)*unit
	hlRowY := xAxisHeight + float64(st.Highlight.Row)*unit

	return BoardProperties{
		Width:  boardWidth,
		Height: boardHeight,
		Grid: GridProperties{
			Box: Box{
				Origin:   Coordinate{yAxisWidth, xAxisHeight},
				Terminus: Coordinate{boardWidth, boardHeight},
			},
			Unit:      unit,
			Rows:      rows,
			Columns:   columns,
			Fill:      st.Grid.Fill,
			Stroke:    st.Grid.Stroke,
			LineWidth: st.Grid.LineWidth,
			Markers:   st.Markers,
		},
		Axes: Axes{
			X: AxisProperties[time.Time]{
				Box: Box{
					Origin:   Coordinate{yAxisWidth, 0},
					Terminus: Coordinate{boardWidth, xAxisHeight},
				},
				Values:     dates,
				Color:      st.Font.Color,
				FontFamily: st.Font.Family,
			},
			Y: AxisProperties[resource.Location]{
				Box: Box{
					Origin:   Coordinate{0, xAxisHeight},
					Terminus: Coordinate{yAxisWidth, boardHeight},
				},
				Values:     locations,
				Color:      st.Font.Color,
				FontFamily: st.Font.Family,
			},
		},
		Highlight: HighlightBox{
			Column: Box{
				Origin:   Coordinate{hlColX, xAxisHeight},
				Terminus: Coordinate{hlColX + unit, boardHeight},
			},
			Row: Box{
				Origin:   Coordinate{yAxisWidth, hlRowY},
				Terminus: Coordinate{boardWidth, hlRowY + unit},
			},
			Fill: st.Highlight.Fill,
		},
		Index: index,
		Start: Index{
			X: WindowStart(size.Width, yAxisWidth, len(values.X), unit, &ix),
			Y: WindowStart(size.Height, xAxisHeight, len(values.Y), unit, &iy),
		},
		Style: BoardStyle{Fill: st.Fill, Stroke: st.Stroke},
	}
}

// CellAt maps a pixel to the visible grid cell under it.
func (b BoardProperties) CellAt(x, y float64) (col, row int, ok bool) {
	g := b.Grid
	if g.Unit <= 0 || !g.Contains(x, y) {
		return -1, -1, false
	}
	col = int(math.Floor((x - g.Origin.X) / g.Unit))
	row = int(math.Floor((y - g.Origin.Y) / g.Unit))
	if col < 0 || col >= g.Columns || row < 0 || row >= g.Rows {
		return -1, -1, false
	}
	return col, row, true
}

// IndexAt maps a pixel to the dataset indexes of the date and location
// under it.
func (b BoardProperties) IndexAt(x, y float64) (Index, bool) {
	col, row, ok := b.CellAt(x, y)
	if !ok {
		return Index{}, false
	}
	return Index{X: b.Start.X + col, Y: b.Start.Y + row}, true
}

// HighlightColumnVisible reports whether the highlighted column lies within
// the grid.
func (b BoardProperties) HighlightColumnVisible() bool {
	c := b.Highlight.Column
	return c.Origin.X >= b.Grid.Origin.X && c.Terminus.X <= b.Grid.Terminus.X
}

// HighlightRowVisible reports whether the highlighted row lies within the
// grid.
func (b BoardProperties) HighlightRowVisible() bool {
	r := b.Highlight.Row
	return r.Origin.Y >= b.Grid.Origin.Y && r.Terminus.Y <= b.Grid.Terminus.Y
}
