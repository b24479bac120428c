package viewer

import (
	"fmt"
	"testing"
	"time"

	board "github.com/runrig-coop/farm-flow-board"
	"github.com/runrig-coop/farm-flow-board/resource"
	"github.com/runrig-coop/farm-flow-board/style"
)

func newTestViewer(t *testing.T, index board.Index) (*Viewer, *board.Renderer) {
	t.Helper()
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	locs := make([]resource.Location, 6)
	for i := range locs {
		locs[i] = resource.Location{ID: fmt.Sprintf("bed-%d", i), Name: fmt.Sprintf("Bed %d", i+1)}
	}
	values := board.AxisValues{X: resource.DateRange(start, start.AddDate(0, 0, 19)), Y: locs}
	tasks := resource.TaskMatrix{{ID: "bed-1", Dates: []resource.OperationsByDate{
		{Date: start.AddDate(0, 0, 2), Operations: []resource.Operation{{ID: "op", Color: "seagreen"}}},
	}}}
	r := board.NewRenderer(style.Default(false), board.WithDefaultDuration(50*time.Millisecond))
	// 10 columns by 4 rows.
	return New(r, 640, 220, values, tasks, index), r
}

func settle(t *testing.T, v *Viewer) {
	t.Helper()
	for i := 0; v.Busy(); i++ {
		if i > 100 {
			t.Fatal("pan did not finish")
		}
		v.Tick()
	}
}

func TestViewerInitialRender(t *testing.T) {
	v, _ := newTestViewer(t, board.Index{X: 3, Y: 1})
	if got := v.Index(); got != (board.Index{X: 3, Y: 1}) {
		t.Errorf("Index() = %+v, want {3 1}", got)
	}
	if cols, rows := v.Page(); cols != 10 || rows != 4 {
		t.Errorf("Page() = %d, %d; want 10, 4", cols, rows)
	}
	if v.Busy() {
		t.Error("Busy() before any pan")
	}
	if v.Surface().Depth() != 0 {
		t.Errorf("surface Depth() = %d, want 0", v.Surface().Depth())
	}
}

func TestViewerPan(t *testing.T) {
	tests := []struct {
		name   string
		start  board.Index
		dx, dy int
		want   board.Index
		moves  bool
	}{
		{"one column right", board.Index{}, 1, 0, board.Index{X: 1}, true},
		{"page down", board.Index{}, 0, 4, board.Index{Y: 2}, true},
		{"clamped at the last date", board.Index{X: 8}, 5, 0, board.Index{X: 10}, true},
		{"clamped at the first date", board.Index{X: 2}, -5, 0, board.Index{}, true},
		{"already at the edge", board.Index{}, -1, -1, board.Index{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestViewer(t, tt.start)
			moved, err := v.Pan(tt.dx, tt.dy)
			if err != nil {
				t.Fatal(err)
			}
			if moved != tt.moves || v.Busy() != tt.moves {
				t.Errorf("Pan() = %v, Busy() = %v; want %v", moved, v.Busy(), tt.moves)
			}
			settle(t, v)
			if got := v.Index(); got != tt.want {
				t.Errorf("Index() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestViewerPanWhileBusy(t *testing.T) {
	v, _ := newTestViewer(t, board.Index{})
	if _, err := v.Pan(2, 0); err != nil {
		t.Fatal(err)
	}
	v.Tick()
	if _, err := v.Pan(1, 1); err != nil {
		t.Fatal(err)
	}
	settle(t, v)
	if got := v.Index(); got != (board.Index{X: 3, Y: 1}) {
		t.Errorf("Index() = %+v, want {3 1}", got)
	}
}

func TestViewerHover(t *testing.T) {
	v, r := newTestViewer(t, board.Index{})

	if !v.Hover(330, 105) {
		t.Fatal("Hover() over a new cell reported no change")
	}
	if hl := r.Style().Highlight; hl.Column != 2 || hl.Row != 1 {
		t.Errorf("highlight = (%d, %d), want (2, 1)", hl.Column, hl.Row)
	}
	if v.Hover(335, 110) {
		t.Error("Hover() within the same cell reported a change")
	}
	if !v.Tick() {
		t.Error("Tick() did not redraw after a hover change")
	}
	if v.Tick() {
		t.Error("Tick() redrew with nothing pending")
	}

	if !v.Hover(10, 10) {
		t.Error("leaving the grid did not clear the highlight")
	}
	if hl := r.Style().Highlight; hl.Column != -1 || hl.Row != -1 {
		t.Errorf("highlight = (%d, %d), want cleared", hl.Column, hl.Row)
	}
}

func TestViewerResize(t *testing.T) {
	v, _ := newTestViewer(t, board.Index{})
	v.Resize(440, 300)
	v.Tick()
	if cols, rows := v.Page(); cols != 5 || rows != 6 {
		t.Errorf("Page() after resize = %d, %d; want 5, 6", cols, rows)
	}
	if w, h := v.Surface().Width(), v.Surface().Height(); w != 440 || h != 300 {
		t.Errorf("surface = %dx%d, want 440x300", w, h)
	}
}
