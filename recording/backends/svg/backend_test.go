package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/runrig-coop/farm-flow-board/canvas"
	"github.com/runrig-coop/farm-flow-board/recording"
)

func render(t *testing.T, draw func(s canvas.Surface)) string {
	t.Helper()
	rec := recording.NewRecorder(120, 80)
	draw(rec)

	b, err := recording.NewBackend("svg")
	if err != nil {
		t.Fatalf("NewBackend(svg) error = %v", err)
	}
	if err := rec.FinishRecording().Render(b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	return buf.String()
}

func wellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return
			}
			t.Fatalf("document is not well-formed XML: %v\n%s", err, doc)
		}
	}
}

func TestRenderShapesAndText(t *testing.T) {
	doc := render(t, func(s canvas.Surface) {
		s.SetFillStyle(gg.RGBA{R: 1, A: 0.5})
		s.FillRect(10, 10, 20, 20)
		s.SetTextAlign(canvas.AlignCenter)
		s.SetFont(canvas.Font{Size: 12, Family: "Go"})
		s.FillText("Mar & Apr", 50, 40)
	})
	wellFormed(t, doc)

	for _, want := range []string{
		`width="120"`,
		"M 10 10 H 30 V 30 H 10 Z",
		"fill:rgb(255,0,0)",
		"fill-opacity:0.5",
		"text-anchor:middle",
		"Mar &amp; Apr",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestClipGroupClosesOnRestore(t *testing.T) {
	doc := render(t, func(s canvas.Surface) {
		s.Save()
		s.BeginPath()
		s.MoveTo(0, 0)
		s.LineTo(50, 0)
		s.LineTo(50, 50)
		s.LineTo(0, 50)
		s.Clip()
		s.Translate(-10, 0)
		s.FillRect(0, 0, 100, 100)
		s.Restore()
		s.FillRect(0, 0, 5, 5)
	})
	wellFormed(t, doc)

	if !strings.Contains(doc, `clip-path="url(#clip1)"`) {
		t.Errorf("missing clip group:\n%s", doc)
	}
	// The translated rect starts at -10; the one after Restore at 0.
	if !strings.Contains(doc, "M -10 0 H 90") || !strings.Contains(doc, "M 0 0 H 5") {
		t.Errorf("translation not applied or not restored:\n%s", doc)
	}
	if i, j := strings.Index(doc, "</g>"), strings.Index(doc, "M 0 0 H 5"); i < 0 || i > j {
		t.Errorf("clip group not closed before later drawing:\n%s", doc)
	}
}

func TestFullClearDiscardsBody(t *testing.T) {
	doc := render(t, func(s canvas.Surface) {
		s.FillRect(1, 1, 2, 2)
		s.ClearRect(0, 0, 120, 80)
		s.FillRect(3, 3, 4, 4)
	})
	if strings.Contains(doc, "M 1 1") {
		t.Errorf("content before full ClearRect survived:\n%s", doc)
	}
	if !strings.Contains(doc, "M 3 3") {
		t.Errorf("content after ClearRect missing:\n%s", doc)
	}
}

func TestShadowedCircle(t *testing.T) {
	doc := render(t, func(s canvas.Surface) {
		s.SetShadow(canvas.Shadow{Color: gg.RGBA{A: 0.5}, Blur: 3, OffsetX: -3, OffsetY: 1.5})
		s.BeginPath()
		s.Arc(40, 40, 10, 0, 2*math.Pi)
		s.Fill()
	})
	wellFormed(t, doc)
	if strings.Count(doc, "<path") != 2 {
		t.Errorf("want shadow and shape paths:\n%s", doc)
	}
	if !strings.Contains(doc, "translate(-3,1.5)") {
		t.Errorf("shadow offset missing:\n%s", doc)
	}
	if !strings.Contains(doc, "A 10 10 0 0 1 30 40") {
		t.Errorf("circle arc missing:\n%s", doc)
	}
}

func TestLifecycleErrors(t *testing.T) {
	b := NewBackend()
	if err := b.End(); err == nil {
		t.Error("End() before Begin error = nil")
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo() before End error = nil")
	}
	if err := b.Begin(0, 0); err == nil {
		t.Error("Begin(0, 0) error = nil")
	}
}
