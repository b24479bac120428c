package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// clipTarget is a draw.Image over a gg pixmap whose bounds are cut down to
// a clip rectangle. Glyph rasterizers clip to Bounds, so text drawn through
// it is trimmed at the clip edge instead of being dropped.
type clipTarget struct {
	pm     *gg.Pixmap
	bounds image.Rectangle
}

func newClipTarget(pm *gg.Pixmap, clip rect) *clipTarget {
	return &clipTarget{pm: pm, bounds: clip.pixels().Intersect(pm.Bounds())}
}

func (t *clipTarget) ColorModel() color.Model { return color.NRGBAModel }

func (t *clipTarget) Bounds() image.Rectangle { return t.bounds }

func (t *clipTarget) At(x, y int) color.Color { return t.pm.At(x, y) }

// Set stores c unpremultiplied, the pixmap's layout.
func (t *clipTarget) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(t.bounds) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	t.pm.SetPixel(x, y, gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	})
}
