// Package canvas defines the drawing surface the board renders onto and
// provides a raster implementation backed by gg.
//
// # Surface
//
// Surface is a small immediate-mode 2D API in the style of an HTML canvas
// context: rectangles, paths, arcs, text, a translate-only transform,
// clipping and a Save/Restore stack that covers every piece of drawing
// state (styles, font, text alignment, shadow, transform and clip).
//
// The board packages only ever talk to a Surface, so the same drawing code
// feeds the raster Context, the command Recorder in package recording, and
// the SVG backend.
//
// # Context
//
// Context implements Surface on top of a gg.Context:
//
//	cc := canvas.NewContext(1200, 600)
//	cc.SetFillStyle(gg.Hex("#fcfcfc"))
//	cc.FillRect(0, 0, 1200, 600)
//	_ = cc.SavePNG("board.png")
//
// gg's own Push/Pop covers only transform, clip and mask, so Context keeps
// the remaining state on its own stack and feeds gg device-space coordinates.
//
// Context is not safe for concurrent use.
package canvas
