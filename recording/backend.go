package recording

import (
	"io"

	"github.com/runrig-coop/farm-flow-board/canvas"
)

// Backend is an output target that a Recording can be rendered into.
// It is a canvas.Surface with a lifecycle and an encoded output.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accept every Surface call between Begin and End
//  3. Manage its own state stack for Save/Restore
type Backend interface {
	canvas.Surface

	// Begin prepares the backend for drawing at the given size.
	Begin(width, height int) error

	// End finalizes the output. WriteTo is valid only after End.
	End() error

	// WriteTo writes the encoded output to w.
	WriteTo(w io.Writer) (int64, error)
}

// Render replays the recording into b between Begin and End.
func (r *Recording) Render(b Backend) error {
	if err := b.Begin(r.width, r.height); err != nil {
		return err
	}
	r.Playback(b)
	return b.End()
}

// Export renders the recording with the named backend and writes its
// output to w.
func (r *Recording) Export(name string, w io.Writer) error {
	b, err := NewBackend(name)
	if err != nil {
		return err
	}
	if err := r.Render(b); err != nil {
		return err
	}
	_, err = b.WriteTo(w)
	return err
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// CountingWriter wraps w and reports the bytes written through it with
// the returned function. Backends use it to implement WriteTo.
func CountingWriter(w io.Writer) (io.Writer, func() int64) {
	cw := &countingWriter{w: w}
	return cw, func() int64 { return cw.n }
}
