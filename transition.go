package board

import (
	"errors"
	"math"
	"sync/atomic"
	"time"

	"github.com/runrig-coop/farm-flow-board/canvas"
	"github.com/runrig-coop/farm-flow-board/frame"
	"github.com/runrig-coop/farm-flow-board/resource"
)

// DefaultDuration is the pan duration used when none is configured.
const DefaultDuration = 512 * time.Millisecond

// ErrNilScheduler is returned by Translate when no scheduler is given.
var ErrNilScheduler = errors.New("board: nil frame scheduler")

// State is the lifecycle state of a Transition.
type State int32

const (
	Initializing State = iota
	Animating
	Completed
	Cancelled
)

var stateNames = [...]string{
	Initializing: "Initializing",
	Animating:    "Animating",
	Completed:    "Completed",
	Cancelled:    "Cancelled",
}

func (s State) String() string {
	if int(s) >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Terminal reports whether no further frames will be drawn.
func (s State) Terminal() bool { return s == Completed || s == Cancelled }

// Deltas describes a pan: index deltas and the matching pixel deltas.
type Deltas struct {
	X, Y          int
	Width, Height float64
}

// Cycle describes one animation frame.
type Cycle struct {
	TranslateX float64
	TranslateY float64
	Timestamp  time.Duration
	Progress   float64
	Easing     float64
}

// AllHook runs once before the first frame or after the final render.
type AllHook func(s canvas.Surface, board BoardProperties, d Deltas)

// EachHook runs around every animation frame.
type EachHook func(s canvas.Surface, board BoardProperties, d Deltas, c Cycle)

// Translation configures a pan. Hooks receive the virtual board spanning
// both windows.
type Translation struct {
	From, To Index
	// Duration defaults to the renderer's default duration.
	Duration time.Duration

	// BeforeAll runs after setup, before the first frame is requested.
	BeforeAll AllHook
	// BeforeEach runs once the frame's offsets are known, before drawing.
	BeforeEach EachHook
	// AfterEach runs after every frame except the last.
	AfterEach EachHook
	// AfterAll runs after the final static render. It does not run when
	// the transition is cancelled.
	AfterAll AllHook
}

// Transition is an in-flight pan started by Renderer.Translate.
//
// Frames run on the scheduler's goroutine. Cancel and Finish must be called
// from that goroutine too, or while the scheduler is not running; State and
// Done may be used from anywhere.
type Transition struct {
	r      *Renderer
	s      canvas.Surface
	sched  frame.Scheduler
	values AxisValues
	tasks  resource.TaskMatrix
	cfg    Translation

	duration time.Duration
	from     BoardProperties
	board    BoardProperties
	deltas   Deltas
	final    BoardProperties

	handle  frame.Handle
	started bool
	start   time.Duration
	state   atomic.Int32
	done    chan struct{}
}

// Translate starts an animated pan of s from t.From to t.To and returns
// its Transition. Any transition already running on r is cancelled first.
//
// Translate lays out the virtual board spanning both windows once, runs
// BeforeAll, and requests the first frame. Each frame paints the moving
// region at its eased offset; the last one is followed by a static Draw at
// t.To, so the final surface matches a direct render exactly.
func (r *Renderer) Translate(s canvas.Surface, sched frame.Scheduler, values AxisValues, tasks resource.TaskMatrix, t Translation) (*Transition, error) {
	if sched == nil {
		return nil, ErrNilScheduler
	}
	if prev := r.active; prev != nil && !prev.State().Terminal() {
		Logger().Debug("board: transition superseded", "target", prev.cfg.To, "by", t.To)
		prev.Cancel()
	}

	tr := &Transition{
		r:        r,
		s:        s,
		sched:    sched,
		values:   values,
		tasks:    tasks,
		cfg:      t,
		duration: t.Duration,
		done:     make(chan struct{}),
	}
	if tr.duration <= 0 {
		tr.duration = r.duration
	}
	tr.setup()
	r.active = tr

	if t.BeforeAll != nil {
		t.BeforeAll(s, tr.board, tr.deltas)
	}
	// BeforeAll may have cancelled or superseded us.
	if tr.State() != Initializing {
		return tr, nil
	}
	tr.state.Store(int32(Animating))
	tr.handle = sched.RequestFrame(tr.animate)
	Logger().Debug("board: transition started", "from", t.From, "to", t.To, "duration", tr.duration)
	return tr, nil
}

// Active returns the renderer's in-flight transition, or nil.
func (r *Renderer) Active() *Transition {
	if r.active != nil && r.active.State().Terminal() {
		return nil
	}
	return r.active
}

// setup computes the board at From and the virtual board covering both
// windows, on a surface enlarged by the pan's pixel deltas.
func (tr *Transition) setup() {
	t := tr.cfg
	size := surfaceSize(tr.s)
	tr.from = ComputeBoard(size, tr.values, t.From, &tr.r.style)

	dx, dy := t.To.X-t.From.X, t.To.Y-t.From.Y
	unit := tr.from.Grid.Unit
	tr.deltas = Deltas{X: dx, Y: dy, Width: float64(dx) * unit, Height: float64(dy) * unit}

	virtual := size.Grow(tr.deltas.Width, tr.deltas.Height)
	index := Index{X: min(t.To.X, t.From.X), Y: min(t.To.Y, t.From.Y)}
	tr.board = ComputeBoard(virtual, tr.values, index, &tr.r.style)
}

// State returns the transition's current state.
func (tr *Transition) State() State { return State(tr.state.Load()) }

// Done returns a channel that is closed when the transition completes or
// is cancelled.
func (tr *Transition) Done() <-chan struct{} { return tr.done }

// Target returns the destination index window.
func (tr *Transition) Target() Index { return tr.cfg.To }

// Deltas returns the pan's index and pixel deltas.
func (tr *Transition) Deltas() Deltas { return tr.deltas }

// Board returns the virtual board spanning both windows.
func (tr *Transition) Board() BoardProperties { return tr.board }

// Result returns the board drawn by the final static render. It reports
// false until the transition has completed.
func (tr *Transition) Result() (BoardProperties, bool) {
	if tr.State() != Completed {
		return BoardProperties{}, false
	}
	return tr.final, true
}

// Cancel stops the transition, leaving the surface as last drawn. AfterAll
// is not run. Cancelling a finished transition does nothing.
func (tr *Transition) Cancel() {
	if tr.State().Terminal() {
		return
	}
	if tr.handle != 0 {
		tr.sched.Cancel(tr.handle)
		tr.handle = 0
	}
	tr.state.Store(int32(Cancelled))
	tr.release()
	Logger().Debug("board: transition cancelled", "target", tr.cfg.To)
}

// Finish skips the remaining frames and completes the transition now.
func (tr *Transition) Finish() {
	if tr.State().Terminal() {
		return
	}
	tr.complete()
}

func (tr *Transition) release() {
	if tr.r.active == tr {
		tr.r.active = nil
	}
	close(tr.done)
}

func (tr *Transition) animate(ts time.Duration) {
	tr.handle = 0
	if tr.State() != Animating {
		return
	}
	if !tr.started {
		tr.started = true
		tr.start = ts
	}

	progress := 1.0
	if tr.deltas.X != 0 || tr.deltas.Y != 0 {
		progress = math.Min(float64(ts-tr.start)/float64(tr.duration), 1)
	}
	easing := EaseInOutQuad(progress)
	cycle := tr.drawFrame(ts, progress, easing)

	if progress < 1 {
		if tr.cfg.AfterEach != nil {
			tr.cfg.AfterEach(tr.s, tr.board, tr.deltas, cycle)
		}
		if tr.State() == Animating {
			tr.handle = tr.sched.RequestFrame(tr.animate)
		}
		return
	}
	tr.complete()
}

// drawFrame paints one animation frame. The clip starts as the grid at
// From and widens to take in whichever label bands are moving.
func (tr *Transition) drawFrame(ts time.Duration, progress, easing float64) Cycle {
	s, from, board, d := tr.s, tr.from, tr.board, tr.deltas

	clipOrigin := from.Grid.Origin
	clipTerminus := from.Grid.Terminus
	clipW, clipH := from.Grid.Width(), from.Grid.Height()

	cycle := Cycle{Timestamp: ts, Progress: progress, Easing: easing}
	if d.X != 0 {
		cycle.TranslateX = -axisEasing(d.X, easing) * d.Width
		clipH = from.Height
		clipOrigin.Y = 0
	}
	if d.Y != 0 {
		cycle.TranslateY = -axisEasing(d.Y, easing) * d.Height
		clipW = from.Width
		clipOrigin.X = 0
	}

	if tr.cfg.BeforeEach != nil {
		tr.cfg.BeforeEach(s, board, d, cycle)
	}

	s.Save()
	s.SetFillStyle(from.Style.Fill)
	s.FillRect(clipOrigin.X, clipOrigin.Y, clipW, clipH)

	s.Save()
	s.BeginPath()
	s.MoveTo(clipOrigin.X, clipOrigin.Y)
	s.LineTo(clipTerminus.X, clipOrigin.Y)
	s.LineTo(clipTerminus.X, clipTerminus.Y)
	s.LineTo(clipOrigin.X, clipTerminus.Y)
	s.Clip()

	s.Translate(cycle.TranslateX, cycle.TranslateY)
	if d.X != 0 {
		tr.r.labelAxisX(s, board.Grid, board.Axes.X)
	}
	if d.Y != 0 {
		labelAxisY(s, board.Grid, board.Axes.Y)
	}
	drawGrid(s, board.Grid, nil)
	tr.r.plotTasks(s, board, tr.tasks)

	s.ResetTransform()
	s.Restore()
	s.Restore()
	return cycle
}

// complete renders the exact board at To and runs AfterAll.
func (tr *Transition) complete() {
	if tr.handle != 0 {
		tr.sched.Cancel(tr.handle)
		tr.handle = 0
	}
	tr.final = tr.r.Draw(tr.s, tr.values, tr.tasks, tr.cfg.To)
	tr.state.Store(int32(Completed))
	tr.release()
	Logger().Debug("board: transition completed", "target", tr.cfg.To)

	if tr.cfg.AfterAll != nil {
		tr.cfg.AfterAll(tr.s, tr.board, tr.deltas)
	}
}
