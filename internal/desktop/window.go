// Package desktop shows a viewer in a native window.
package desktop

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/runrig-coop/farm-flow-board/internal/logging"
	"github.com/runrig-coop/farm-flow-board/internal/viewer"
)

// Run opens a resizable window showing v and blocks until it closes.
//
// Arrow keys pan by one cell, or by a page with Shift held. The cell under
// the pointer is highlighted. Escape closes the window.
func Run(v *viewer.Viewer, title string) error {
	dc := v.Surface()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(dc.Width(), dc.Height())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(&game{v: v})
}

type game struct {
	v     *viewer.Viewer
	rgba  *image.RGBA
	frame *ebiten.Image
	stale bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dx, dy := 0, 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
			cols, rows := g.v.Page()
			dx, dy = dx*max(cols, 1), dy*max(rows, 1)
		}
		if _, err := g.v.Pan(dx, dy); err != nil {
			return err
		}
	}

	x, y := ebiten.CursorPosition()
	g.v.Hover(float64(x), float64(y))

	if g.v.Tick() {
		g.stale = true
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	dc := g.v.Surface()
	w, h := dc.Width(), dc.Height()
	if g.frame == nil || g.rgba.Bounds().Dx() != w || g.rgba.Bounds().Dy() != h {
		g.rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
		g.stale = true
	}
	if g.stale {
		draw.Draw(g.rgba, g.rgba.Bounds(), dc.Image(), image.Point{}, draw.Src)
		g.frame.WritePixels(g.rgba.Pix)
		g.stale = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dc := g.v.Surface()
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != dc.Width() || outsideHeight != dc.Height()) {
		logging.Logger().Debug("desktop: window resized", "width", outsideWidth, "height", outsideHeight)
		g.v.Resize(outsideWidth, outsideHeight)
	}
	return dc.Width(), dc.Height()
}
