package style

import "github.com/gogpu/gg"

// Style is a fully resolved board style. Every field is populated.
type Style struct {
	Fill      gg.RGBA
	Stroke    gg.RGBA
	IsDark    bool
	Font      Font
	Grid      Grid
	Axes      Axes
	Highlight Highlight
	Markers   Markers
}

// Font is the label font.
type Font struct {
	Color  gg.RGBA
	Family string
}

// Grid styles the cell grid.
type Grid struct {
	// Unit is the edge length of one square cell in pixels.
	Unit        float64
	YAxisWidth  float64
	XAxisHeight float64
	LineWidth   float64
	Fill        gg.RGBA
	Stroke      gg.RGBA
}

// Axes holds the label band sizes that the layout reserves beside the grid.
type Axes struct {
	// YAxisWidth is the width of the location label column.
	YAxisWidth float64
	// XAxisHeight is the height of the date label row.
	XAxisHeight float64
}

// Highlight selects a grid column and row to emphasize. Negative or
// out-of-window indexes are valid and simply not drawn.
type Highlight struct {
	Column int
	Row    int
	Fill   gg.RGBA
}

// Markers styles task markers.
type Markers struct {
	ShadowColor   gg.RGBA
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64
	// Fill is used for operations that carry no usable color.
	Fill gg.RGBA
}
