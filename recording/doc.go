// Package recording captures drawing on a canvas.Surface as typed
// commands.
//
// A Recorder implements canvas.Surface. Instead of rasterizing it appends
// one Command per call, so the exact sequence of drawing operations a board
// render produced can be inspected, compared and replayed:
//
//	rec := recording.NewRecorder(800, 600)
//	renderer.Draw(rec, values, tasks, index)
//	r := rec.FinishRecording()
//
//	// Replay onto any surface.
//	r.Playback(ctx)
//
//	// Or export through a registered backend.
//	b, _ := recording.NewBackend("svg")
//	r.Render(b)
//	b.WriteTo(w)
//
// # Backends
//
// Output backends register themselves by name from init, following the
// database/sql driver pattern. Import them for side effects:
//
//	import _ "github.com/runrig-coop/farm-flow-board/recording/backends/raster"
//	import _ "github.com/runrig-coop/farm-flow-board/recording/backends/svg"
package recording
