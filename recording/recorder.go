package recording

import (
	"reflect"

	"github.com/gogpu/gg"

	"github.com/runrig-coop/farm-flow-board/canvas"
)

// Recorder is a canvas.Surface that records every call as a Command.
// It tracks only its size and save depth; no pixels are produced.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height  int
	startW, startH int
	depth          int
	commands       []Command
}

var _ canvas.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for a surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		startW:   width,
		startH:   height,
		commands: make([]Command, 0, 256),
	}
}

// FinishRecording returns an immutable Recording of everything recorded so
// far. The Recorder remains usable; later commands are not included.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{width: r.startW, height: r.startH, commands: cmds}
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Since returns the commands recorded after the first n.
func (r *Recorder) Since(n int) []Command {
	if n < 0 {
		n = 0
	}
	if n > len(r.commands) {
		return nil
	}
	return r.commands[n:]
}

// Reset drops all recorded commands. The current size becomes the size a
// later Recording starts from.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.startW, r.startH = r.width, r.height
	r.depth = 0
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return r.depth }

func (r *Recorder) record(c Command) { r.commands = append(r.commands, c) }

// Width returns the current surface width.
func (r *Recorder) Width() int { return r.width }

// Height returns the current surface height.
func (r *Recorder) Height() int { return r.height }

// SetSize records a resize.
func (r *Recorder) SetSize(w, h int) {
	r.width, r.height = w, h
	r.record(SetSizeCommand{Width: w, Height: h})
}

// Save records a state push.
func (r *Recorder) Save() {
	r.depth++
	r.record(SaveCommand{})
}

// Restore records a state pop. Unbalanced restores are recorded but do not
// drive the depth negative.
func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.record(RestoreCommand{})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(ClearRectCommand{Rect: Rect{x, y, w, h}})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.record(FillRectCommand{Rect: Rect{x, y, w, h}})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.record(StrokeRectCommand{Rect: Rect{x, y, w, h}})
}

func (r *Recorder) BeginPath()          { r.record(BeginPathCommand{}) }
func (r *Recorder) MoveTo(x, y float64) { r.record(MoveToCommand{X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { r.record(LineToCommand{X: x, Y: y}) }
func (r *Recorder) ClosePath()          { r.record(ClosePathCommand{}) }
func (r *Recorder) Fill()               { r.record(FillCommand{}) }
func (r *Recorder) Stroke()             { r.record(StrokeCommand{}) }
func (r *Recorder) Clip()               { r.record(ClipCommand{}) }

func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.record(ArcCommand{X: x, Y: y, Radius: radius, Start: start, End: end})
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.record(FillTextCommand{Text: s, X: x, Y: y})
}

func (r *Recorder) SetFillStyle(c gg.RGBA)   { r.record(SetFillStyleCommand{Color: c}) }
func (r *Recorder) SetStrokeStyle(c gg.RGBA) { r.record(SetStrokeStyleCommand{Color: c}) }
func (r *Recorder) SetLineWidth(w float64)   { r.record(SetLineWidthCommand{Width: w}) }
func (r *Recorder) SetFont(f canvas.Font)    { r.record(SetFontCommand{Font: f}) }

func (r *Recorder) SetTextAlign(a canvas.TextAlign) {
	r.record(SetTextAlignCommand{Align: a})
}

func (r *Recorder) SetShadow(s canvas.Shadow) { r.record(SetShadowCommand{Shadow: s}) }

func (r *Recorder) Translate(x, y float64) { r.record(TranslateCommand{X: x, Y: y}) }
func (r *Recorder) ResetTransform()        { r.record(ResetTransformCommand{}) }

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the surface width the recording starts from.
func (r *Recording) Width() int { return r.width }

// Height returns the surface height the recording starts from.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Types returns the type of each command in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Equal reports whether two recordings hold identical command streams.
func (r *Recording) Equal(other *Recording) bool {
	if r == nil || other == nil {
		return r == other
	}
	return EqualCommands(r.commands, other.commands)
}

// EqualCommands reports whether a and b are identical command streams.
func EqualCommands(a, b []Command) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Playback replays the commands onto s in order. The surface is resized
// to the recording's starting size first if it differs.
func (r *Recording) Playback(s canvas.Surface) {
	if s.Width() != r.width || s.Height() != r.height {
		s.SetSize(r.width, r.height)
	}
	for _, c := range r.commands {
		c.Apply(s)
	}
}
