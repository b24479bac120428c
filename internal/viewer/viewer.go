// Package viewer drives an interactive board: it owns the raster surface,
// the index window, the highlighted cell and any pan in flight.
//
// A Viewer knows nothing about windows or input devices. A host calls Pan
// and Hover from its input handling and Tick once per display frame, then
// shows Surface.
package viewer

import (
	board "github.com/runrig-coop/farm-flow-board"
	"github.com/runrig-coop/farm-flow-board/canvas"
	"github.com/runrig-coop/farm-flow-board/frame"
	"github.com/runrig-coop/farm-flow-board/resource"
)

// Viewer is not safe for concurrent use.
type Viewer struct {
	r      *board.Renderer
	dc     *canvas.Context
	sched  *frame.Manual
	values board.AxisValues
	tasks  resource.TaskMatrix

	board board.BoardProperties
	tr    *board.Transition
	hover struct{ col, row int }
	dirty bool
}

// New creates a Viewer drawing onto a width x height raster surface and
// renders the board at index.
func New(r *board.Renderer, width, height int, values board.AxisValues, tasks resource.TaskMatrix, index board.Index, opts ...canvas.Option) *Viewer {
	v := &Viewer{
		r:      r,
		dc:     canvas.NewContext(width, height, opts...),
		sched:  frame.NewManual(frame.DefaultInterval),
		values: values,
		tasks:  tasks,
	}
	v.hover.col, v.hover.row = -1, -1
	v.draw(index)
	return v
}

// Surface returns the raster surface holding the current frame.
func (v *Viewer) Surface() *canvas.Context { return v.dc }

// Board returns the geometry of the last static render.
func (v *Viewer) Board() board.BoardProperties { return v.board }

// Index returns the index window currently shown.
func (v *Viewer) Index() board.Index { return v.board.Start }

// Busy reports whether a pan is in flight.
func (v *Viewer) Busy() bool { return v.tr != nil }

// Page returns how many columns and rows are visible.
func (v *Viewer) Page() (columns, rows int) {
	return v.board.Grid.Columns, v.board.Grid.Rows
}

// Pan starts an animated move of the index window by dx dates and dy
// locations, clamped to the data. A pan already in flight is finished
// first so the new one starts from its target. Pan reports whether the
// window moves.
func (v *Viewer) Pan(dx, dy int) (bool, error) {
	v.settle(true)
	from := v.board.Start
	to := v.clamp(board.Index{X: from.X + dx, Y: from.Y + dy})
	if to == from {
		return false, nil
	}
	tr, err := v.r.Translate(v.dc, v.sched, v.values, v.tasks, board.Translation{From: from, To: to})
	if err != nil {
		return false, err
	}
	v.tr = tr
	return true, nil
}

// Hover highlights the cell under (x, y), or clears the highlight when the
// point is outside the grid. It reports whether the highlight changed.
func (v *Viewer) Hover(x, y float64) bool {
	col, row, ok := v.board.CellAt(x, y)
	if !ok {
		col, row = -1, -1
	}
	if col == v.hover.col && row == v.hover.row {
		return false
	}
	v.hover.col, v.hover.row = col, row
	v.r.SetHighlight(col, row)
	v.dirty = true
	return true
}

// Resize changes the surface size and re-renders at the current index.
func (v *Viewer) Resize(width, height int) {
	if width == v.dc.Width() && height == v.dc.Height() {
		return
	}
	v.settle(true)
	v.dc.SetSize(width, height)
	v.dirty = true
}

// Tick advances any pan by one frame and applies pending redraws. It
// reports whether the surface changed.
func (v *Viewer) Tick() bool {
	changed := v.sched.Step() > 0
	v.settle(false)
	if v.dirty && v.tr == nil {
		v.draw(v.board.Start)
		changed = true
	}
	return changed
}

// settle collects a finished pan. With finish set, a pan still in flight
// is completed immediately.
func (v *Viewer) settle(finish bool) {
	if v.tr == nil {
		return
	}
	if finish {
		v.tr.Finish()
	}
	if !v.tr.State().Terminal() {
		return
	}
	if res, ok := v.tr.Result(); ok {
		v.board = res
	}
	v.tr = nil
}

func (v *Viewer) draw(index board.Index) {
	v.board = v.r.Draw(v.dc, v.values, v.tasks, index)
	v.dirty = false
}

func (v *Viewer) clamp(i board.Index) board.Index {
	maxX := max(len(v.values.X)-v.board.Grid.Columns, 0)
	maxY := max(len(v.values.Y)-v.board.Grid.Rows, 0)
	return board.Index{X: min(max(i.X, 0), maxX), Y: min(max(i.Y, 0), maxY)}
}
