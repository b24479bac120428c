// Package raster provides the PNG backend for the recording system.
// It replays recordings onto a canvas.Context, which rasterizes through
// gg.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/runrig-coop/farm-flow-board/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	r.Render(backend)
//	backend.SavePNG("board.png")
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/runrig-coop/farm-flow-board/canvas"
	"github.com/runrig-coop/farm-flow-board/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	}, "png")
}

// Backend renders recordings to pixels. The embedded Context is nil until
// Begin is called.
type Backend struct {
	*canvas.Context
	opts []canvas.Option
}

var _ recording.Backend = (*Backend)(nil)

// NewBackend creates a new raster backend. The options are passed to the
// canvas.Context created by Begin.
func NewBackend(opts ...canvas.Option) *Backend {
	return &Backend{opts: opts}
}

// Begin allocates a surface of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: begin: %w: %dx%d", canvas.ErrInvalidDimensions, width, height)
	}
	b.Context = canvas.NewContext(width, height, b.opts...)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.Context == nil {
		return fmt.Errorf("raster: End called before Begin")
	}
	return nil
}

// WriteTo writes the rendered image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.Context == nil {
		return 0, fmt.Errorf("raster: WriteTo called before Begin")
	}
	cw, written := recording.CountingWriter(w)
	err := b.EncodePNG(cw)
	return written(), err
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.Context == nil {
		return nil
	}
	return b.Context.Image()
}
