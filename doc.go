// Package board renders a farm flow board: a calendar grid with one column
// per date and one row per location, task markers in its cells, and
// animated pans between windows of a larger dataset.
//
// # Overview
//
// The package is organized leaf first:
//
//   - FitToGrid selects the contiguous slice of a sequence that fits in a
//     pixel extent, anchored near a requested start index.
//   - ComputeBoard derives every box of a board (grid, axes, highlight)
//     from a surface size, the full date and location sequences, an index
//     window and a resolved style.Style. It is pure.
//   - Renderer.Draw paints one board snapshot onto a canvas.Surface.
//   - Renderer.Translate animates a pan between two index windows using a
//     frame.Scheduler and finishes with an exact static render.
//
// # Quick Start
//
//	st := style.Default(false)
//	r := board.NewRenderer(st)
//	cc := canvas.NewContext(1200, 600)
//
//	values := board.AxisValues{X: dataset.Dates(), Y: dataset.Locations}
//	props := r.Draw(cc, values, dataset.Matrix(), board.Index{})
//	cc.SavePNG("board.png")
//
// # Panning
//
//	sched := frame.NewTicker(frame.WithFPS(60), frame.ExitWhenIdle())
//	tr, err := r.Translate(cc, sched, values, tasks, board.Translation{
//	    From: props.Index,
//	    To:   board.Index{X: props.Index.X + 7},
//	})
//	go sched.Run(ctx)
//	<-tr.Done()
//
// A Renderer keeps at most one transition in flight: starting another
// cancels the previous one.
//
// # Logging
//
// The package is silent by default. SetLogger enables structured logging
// for board and its sub-packages.
package board
