package board

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/runrig-coop/farm-flow-board/canvas"
	"github.com/runrig-coop/farm-flow-board/recording"
	"github.com/runrig-coop/farm-flow-board/style"
)

func drawRecorded(t *testing.T, r *Renderer, index Index) (*recording.Recorder, BoardProperties) {
	t.Helper()
	rec := recording.NewRecorder(640, 220)
	b := r.Draw(rec, testValues(), testTasks(), index)
	return rec, b
}

// filledRects returns the FillRect calls made while the fill style was c,
// following Save and Restore.
func filledRects(cmds []recording.Command, c gg.RGBA) []recording.Rect {
	var (
		cur   gg.RGBA
		stack []gg.RGBA
		out   []recording.Rect
	)
	for _, cmd := range cmds {
		switch v := cmd.(type) {
		case recording.SaveCommand:
			stack = append(stack, cur)
		case recording.RestoreCommand:
			if n := len(stack); n > 0 {
				cur, stack = stack[n-1], stack[:n-1]
			}
		case recording.SetFillStyleCommand:
			cur = v.Color
		case recording.FillRectCommand:
			if cur == c {
				out = append(out, v.Rect)
			}
		}
	}
	return out
}

func TestDrawBalancesState(t *testing.T) {
	rec, _ := drawRecorded(t, NewRenderer(testStyle()), Index{})
	if d := rec.Depth(); d != 0 {
		t.Errorf("Depth() = %d after Draw, want 0", d)
	}
	r := rec.FinishRecording()
	if s, rs := r.Count(recording.CmdSave), r.Count(recording.CmdRestore); s != rs || s == 0 {
		t.Errorf("Save/Restore = %d/%d, want equal and non-zero", s, rs)
	}
}

func TestDrawCommandCounts(t *testing.T) {
	rec, b := drawRecorded(t, NewRenderer(testStyle()), Index{})
	r := rec.FinishRecording()

	tests := []struct {
		typ  recording.CommandType
		want int
	}{
		// 3 row lines, 9 column lines and the month rule.
		{recording.CmdStroke, 13},
		{recording.CmdStrokeRect, 2},
		// 10 days, 1 month, 4 locations.
		{recording.CmdFillText, 15},
		// loc-0 on day 0 (one marker) and day 4 (two).
		{recording.CmdArc, 3},
		{recording.CmdFill, 3},
		{recording.CmdClearRect, 1},
	}
	for _, tt := range tests {
		if got := r.Count(tt.typ); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.typ, got, tt.want)
		}
	}
	if b.Grid.Columns != 10 || b.Grid.Rows != 4 {
		t.Errorf("grid = %d x %d, want 10 x 4", b.Grid.Columns, b.Grid.Rows)
	}
}

func TestDrawLabels(t *testing.T) {
	rec, _ := drawRecorded(t, NewRenderer(testStyle()), Index{})
	texts := ofType[recording.FillTextCommand](rec.Since(0))

	want := map[string]recording.FillTextCommand{
		"1":       {Text: "1", X: 260, Y: 49},
		"10":      {Text: "10", X: 620, Y: 49},
		"January": {Text: "January", X: 440, Y: 16},
		"Field 1": {Text: "Field 1", X: 234, Y: 90},
		"Field 4": {Text: "Field 4", X: 234, Y: 210},
	}
	found := 0
	for _, got := range texts {
		w, ok := want[got.Text]
		if !ok {
			continue
		}
		found++
		if got != w {
			t.Errorf("FillText %q at (%v, %v), want (%v, %v)", got.Text, got.X, got.Y, w.X, w.Y)
		}
	}
	if found != len(want) {
		t.Errorf("found %d of %d expected labels", found, len(want))
	}

	aligns := ofType[recording.SetTextAlignCommand](rec.Since(0))
	if len(aligns) != 2 || aligns[0].Align != canvas.AlignCenter || aligns[1].Align != canvas.AlignEnd {
		t.Errorf("text aligns = %+v, want center then end", aligns)
	}
}

func TestDrawMonthSeparators(t *testing.T) {
	// Jan 27 through Feb 5: two months, one separator.
	rec, _ := drawRecorded(t, NewRenderer(testStyle()), Index{X: 26})
	r := rec.FinishRecording()
	if got := r.Count(recording.CmdStroke); got != 14 {
		t.Errorf("Count(Stroke) = %d, want 14", got)
	}
	var months []string
	for _, ft := range ofType[recording.FillTextCommand](r.Commands()) {
		if ft.Y == 16 {
			months = append(months, ft.Text)
		}
	}
	if len(months) != 2 || months[0] != "January" || months[1] != "February" {
		t.Errorf("month labels = %v, want [January February]", months)
	}
}

func TestDrawHighlight(t *testing.T) {
	hlFill := gg.RGBA{R: 1, A: 1}
	tests := []struct {
		name     string
		col, row int
		want     []recording.Rect
	}{
		{"both", 2, 1, []recording.Rect{{X: 240, Y: 100, Width: 400, Height: 40}, {X: 320, Y: 60, Width: 40, Height: 160}}},
		{"cleared", -1, -1, nil},
		{"column past grid", 10, 3, []recording.Rect{{X: 240, Y: 180, Width: 400, Height: 40}}},
		{"row past grid", 0, 4, []recording.Rect{{X: 240, Y: 60, Width: 40, Height: 160}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testStyle()
			st.Highlight.Fill = hlFill
			r := NewRenderer(st)
			r.SetHighlight(tt.col, tt.row)
			rec, _ := drawRecorded(t, r, Index{})

			got := filledRects(rec.Since(0), hlFill)
			if len(got) != len(tt.want) {
				t.Fatalf("highlight rects = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rect %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMarkerOffsets(t *testing.T) {
	const unit = 40.0
	gap := unit * markerGap
	if got := MarkerOffsets(0, unit); got != nil {
		t.Errorf("MarkerOffsets(0) = %v, want nil", got)
	}
	if got := MarkerOffsets(1, unit); len(got) != 1 || math.Abs(got[0]) > 1e-9 {
		t.Errorf("MarkerOffsets(1) = %v, want [0]", got)
	}
	for k := 2; k <= 6; k++ {
		offsets := MarkerOffsets(k, unit)
		if len(offsets) != k {
			t.Fatalf("MarkerOffsets(%d) has %d entries", k, len(offsets))
		}
		for i := range offsets {
			if d := offsets[i] + offsets[k-1-i]; math.Abs(d) > 1e-9 {
				t.Errorf("k=%d: offsets %v not symmetric", k, offsets)
				break
			}
			if i > 0 && math.Abs(offsets[i]-offsets[i-1]-gap) > 1e-9 {
				t.Errorf("k=%d: spacing %v, want %v", k, offsets[i]-offsets[i-1], gap)
			}
		}
	}
}

func TestDrawMarkers(t *testing.T) {
	st := testStyle()
	rec, _ := drawRecorded(t, NewRenderer(st), Index{})
	cmds := rec.Since(0)

	var arcs []recording.ArcCommand
	for i, c := range cmds {
		arc, ok := c.(recording.ArcCommand)
		if !ok {
			continue
		}
		arcs = append(arcs, arc)
		if i < 2 || i+3 >= len(cmds) {
			t.Fatalf("arc at %d has no surrounding commands", i)
		}
		if _, ok := cmds[i-2].(recording.SetFillStyleCommand); !ok {
			t.Errorf("command before marker path = %v, want SetFillStyle", cmds[i-2].Type())
		}
		on, ok := cmds[i+1].(recording.SetShadowCommand)
		if !ok || !on.Shadow.Visible() {
			t.Errorf("marker %d: shadow not set before fill", len(arcs))
		}
		if _, ok := cmds[i+2].(recording.FillCommand); !ok {
			t.Errorf("marker %d: not filled", len(arcs))
		}
		off, ok := cmds[i+3].(recording.SetShadowCommand)
		if !ok || off.Shadow != canvas.NoShadow {
			t.Errorf("marker %d: shadow not reset after fill", len(arcs))
		}
	}

	radius := 40 * markerRadius
	want := []struct{ x, y float64 }{
		{260, 80},
		{416, 80},
		{424, 80},
	}
	if len(arcs) != len(want) {
		t.Fatalf("got %d markers, want %d", len(arcs), len(want))
	}
	for i, w := range want {
		a := arcs[i]
		if math.Abs(a.X-w.x) > 1e-9 || math.Abs(a.Y-w.y) > 1e-9 || math.Abs(a.Radius-radius) > 1e-9 {
			t.Errorf("marker %d = (%v, %v) r=%v, want (%v, %v) r=%v", i, a.X, a.Y, a.Radius, w.x, w.y, radius)
		}
		if a.End-a.Start != 2*math.Pi {
			t.Errorf("marker %d is not a full circle", i)
		}
	}
}

func TestMarkerColors(t *testing.T) {
	st := testStyle()
	r := NewRenderer(st)
	rec := recording.NewRecorder(640, 220)
	// loc-5 on Feb 3 holds a seeding, a harvest and an unparseable color.
	r.Draw(rec, testValues(), testTasks(), Index{X: 26, Y: 4})

	cmds := rec.Since(0)
	var fills []gg.RGBA
	for i, c := range cmds {
		if _, ok := c.(recording.ArcCommand); ok {
			fills = append(fills, cmds[i-2].(recording.SetFillStyleCommand).Color)
		}
	}
	seed, err := style.ParseColor(opSeed.Color)
	if err != nil {
		t.Fatal(err)
	}
	harvest, err := style.ParseColor(opHarvest.Color)
	if err != nil {
		t.Fatal(err)
	}
	want := []gg.RGBA{seed, harvest, st.Markers.Fill}
	if len(fills) != len(want) {
		t.Fatalf("marker fills = %v, want %v", fills, want)
	}
	for i := range want {
		if fills[i] != want[i] {
			t.Errorf("marker %d fill = %v, want %v", i, fills[i], want[i])
		}
	}
	if fill, ok := r.colors.Get(opWeed.Color); !ok || fill.ok {
		t.Errorf("%q not remembered as invalid", opWeed.Color)
	}
}

func TestEnsureCapacity(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		grow   bool
		want   int
	}{
		{"taller by more than a unit", 300, true, 320},
		{"taller by exactly a unit", 140, false, 100},
		{"shorter", 50, false, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recording.NewRecorder(400, 100)
			b := BoardProperties{Height: tt.height, Grid: GridProperties{Unit: 40}}
			if got := EnsureCapacity(rec, b); got != tt.grow {
				t.Errorf("EnsureCapacity() = %v, want %v", got, tt.grow)
			}
			if rec.Width() != 400 || rec.Height() != tt.want {
				t.Errorf("surface = %dx%d, want 400x%d", rec.Width(), rec.Height(), tt.want)
			}
		})
	}
}

func TestDrawOnContext(t *testing.T) {
	st := testStyle()
	dc := canvas.NewContext(640, 220)
	b := NewRenderer(st).Draw(dc, testValues(), testTasks(), Index{})
	if dc.Depth() != 0 {
		t.Errorf("Depth() = %d after Draw, want 0", dc.Depth())
	}
	if b.Grid.Columns != 10 {
		t.Errorf("Columns = %d, want 10", b.Grid.Columns)
	}
	img := dc.Image()
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 220 {
		t.Errorf("image bounds = %v, want 640x220", img.Bounds())
	}
}

func TestSetStyle(t *testing.T) {
	r := NewRenderer(testStyle())
	dark := testStyle()
	dark.Grid.Unit = 20
	r.SetStyle(dark)
	b := r.Layout(recording.NewRecorder(640, 220), testValues(), Index{})
	if b.Grid.Columns != 20 || b.Grid.Rows != 8 {
		t.Errorf("grid = %d x %d with unit 20, want 20 x 8", b.Grid.Columns, b.Grid.Rows)
	}
	if r.Style().Grid.Unit != 20 {
		t.Errorf("Style().Grid.Unit = %v, want 20", r.Style().Grid.Unit)
	}
}

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func sameColor(a, b color.NRGBA) bool {
	near := func(x, y uint8) bool { return x-y <= 1 || y-x <= 1 }
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

// countOff counts pixels in r whose color differs from c.
func countOff(img image.Image, r image.Rectangle, c color.NRGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !sameColor(nrgba(img, x, y), c) {
				n++
			}
		}
	}
	return n
}

func TestDrawLongLocationLabel(t *testing.T) {
	draw := func(name string) image.Image {
		values := testValues()
		values.Y[0].Name = name
		dc := canvas.NewContext(640, 220)
		NewRenderer(testStyle()).Draw(dc, values, testTasks(), Index{})
		return dc.Image()
	}
	bg := testStyle().Fill.Color().(color.NRGBA)
	band := image.Rect(0, 61, 234, 99)

	short := countOff(draw("Field 1"), band, bg)
	long := draw("Northeast Greenhouse Propagation Bench Block Number Seven")
	if n := countOff(long, band, bg); n <= short {
		t.Errorf("long label inked %d pixels, want more than the short label's %d", n, short)
	}
	if n := countOff(long, image.Rect(0, 61, 40, 99), bg); n == 0 {
		t.Error("long label not drawn up to the left edge")
	}
}
