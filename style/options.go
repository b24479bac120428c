package style

// Options is a partial style. Nil fields are filled in by Resolve.
type Options struct {
	Fill      *string           `yaml:"fill,omitempty" toml:"fill,omitempty"`
	Stroke    *string           `yaml:"stroke,omitempty" toml:"stroke,omitempty"`
	IsDark    *bool             `yaml:"isDark,omitempty" toml:"isDark,omitempty"`
	Font      *FontOptions      `yaml:"font,omitempty" toml:"font,omitempty"`
	Grid      *GridOptions      `yaml:"grid,omitempty" toml:"grid,omitempty"`
	Axes      *AxesOptions      `yaml:"axes,omitempty" toml:"axes,omitempty"`
	Highlight *HighlightOptions `yaml:"highlight,omitempty" toml:"highlight,omitempty"`
	Markers   *MarkerOptions    `yaml:"markers,omitempty" toml:"markers,omitempty"`
}

// FontOptions is a partial Font.
type FontOptions struct {
	Color      *string `yaml:"color,omitempty" toml:"color,omitempty"`
	FontFamily *string `yaml:"fontFamily,omitempty" toml:"fontFamily,omitempty"`
}

// GridOptions is a partial Grid.
type GridOptions struct {
	Unit        *float64 `yaml:"unit,omitempty" toml:"unit,omitempty"`
	YAxisWidth  *float64 `yaml:"yAxisWidth,omitempty" toml:"yAxisWidth,omitempty"`
	XAxisHeight *float64 `yaml:"xAxisHeight,omitempty" toml:"xAxisHeight,omitempty"`
	LineWidth   *float64 `yaml:"lineWidth,omitempty" toml:"lineWidth,omitempty"`
	Fill        *string  `yaml:"fill,omitempty" toml:"fill,omitempty"`
	Stroke      *string  `yaml:"stroke,omitempty" toml:"stroke,omitempty"`
}

// AxesOptions is a partial Axes.
type AxesOptions struct {
	YAxisWidth  *float64 `yaml:"yAxisWidth,omitempty" toml:"yAxisWidth,omitempty"`
	XAxisHeight *float64 `yaml:"xAxisHeight,omitempty" toml:"xAxisHeight,omitempty"`
}

// HighlightOptions is a partial Highlight.
type HighlightOptions struct {
	Column *int    `yaml:"column,omitempty" toml:"column,omitempty"`
	Row    *int    `yaml:"row,omitempty" toml:"row,omitempty"`
	Fill   *string `yaml:"fill,omitempty" toml:"fill,omitempty"`
}

// MarkerOptions is a partial Markers.
type MarkerOptions struct {
	ShadowColor   *string  `yaml:"shadowColor,omitempty" toml:"shadowColor,omitempty"`
	ShadowBlur    *float64 `yaml:"shadowBlur,omitempty" toml:"shadowBlur,omitempty"`
	ShadowOffsetX *float64 `yaml:"shadowOffsetX,omitempty" toml:"shadowOffsetX,omitempty"`
	ShadowOffsetY *float64 `yaml:"shadowOffsetY,omitempty" toml:"shadowOffsetY,omitempty"`
	Fill          *string  `yaml:"fill,omitempty" toml:"fill,omitempty"`
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Merge returns o with every non-nil field of over applied on top, nested
// groups merged field by field. Neither argument is modified.
func (o Options) Merge(over Options) Options {
	out := o
	out.Fill = pick(o.Fill, over.Fill)
	out.Stroke = pick(o.Stroke, over.Stroke)
	out.IsDark = pick(o.IsDark, over.IsDark)

	if over.Font != nil {
		f := FontOptions{}
		if o.Font != nil {
			f = *o.Font
		}
		f.Color = pick(f.Color, over.Font.Color)
		f.FontFamily = pick(f.FontFamily, over.Font.FontFamily)
		out.Font = &f
	}
	if over.Grid != nil {
		g := GridOptions{}
		if o.Grid != nil {
			g = *o.Grid
		}
		g.Unit = pick(g.Unit, over.Grid.Unit)
		g.YAxisWidth = pick(g.YAxisWidth, over.Grid.YAxisWidth)
		g.XAxisHeight = pick(g.XAxisHeight, over.Grid.XAxisHeight)
		g.LineWidth = pick(g.LineWidth, over.Grid.LineWidth)
		g.Fill = pick(g.Fill, over.Grid.Fill)
		g.Stroke = pick(g.Stroke, over.Grid.Stroke)
		out.Grid = &g
	}
	if over.Axes != nil {
		a := AxesOptions{}
		if o.Axes != nil {
			a = *o.Axes
		}
		a.YAxisWidth = pick(a.YAxisWidth, over.Axes.YAxisWidth)
		a.XAxisHeight = pick(a.XAxisHeight, over.Axes.XAxisHeight)
		out.Axes = &a
	}
	if over.Highlight != nil {
		h := HighlightOptions{}
		if o.Highlight != nil {
			h = *o.Highlight
		}
		h.Column = pick(h.Column, over.Highlight.Column)
		h.Row = pick(h.Row, over.Highlight.Row)
		h.Fill = pick(h.Fill, over.Highlight.Fill)
		out.Highlight = &h
	}
	if over.Markers != nil {
		m := MarkerOptions{}
		if o.Markers != nil {
			m = *o.Markers
		}
		m.ShadowColor = pick(m.ShadowColor, over.Markers.ShadowColor)
		m.ShadowBlur = pick(m.ShadowBlur, over.Markers.ShadowBlur)
		m.ShadowOffsetX = pick(m.ShadowOffsetX, over.Markers.ShadowOffsetX)
		m.ShadowOffsetY = pick(m.ShadowOffsetY, over.Markers.ShadowOffsetY)
		m.Fill = pick(m.Fill, over.Markers.Fill)
		out.Markers = &m
	}
	return out
}

func pick[T any](base, over *T) *T {
	if over != nil {
		return over
	}
	return base
}
