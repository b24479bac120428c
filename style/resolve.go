package style

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrInvalidStyle reports a style value that cannot be resolved.
var ErrInvalidStyle = errors.New("style: invalid style")

// Built-in defaults applied by Resolve.
const (
	DefaultUnit          = 40
	DefaultYAxisWidth    = 240
	DefaultXAxisHeight   = 60
	DefaultLineWidth     = 1.5
	DefaultShadowBlur    = 3
	DefaultShadowOffsetX = -3
	DefaultShadowOffsetY = 1.5
)

// Default returns the resolved default style for the given mode.
func Default(dark bool) Style {
	st, err := Resolve(Options{IsDark: &dark}, DefaultTheme())
	if err != nil {
		panic(fmt.Sprintf("style: default style does not resolve: %v", err))
	}
	return st
}

// Resolve fills every field missing from opts with a default drawn from
// theme, or a built-in fallback when the theme lacks the variable. A nil
// theme uses only the built-in fallbacks.
func Resolve(opts Options, theme Theme) (Style, error) {
	r := resolver{theme: theme}
	if opts.IsDark != nil {
		r.dark = *opts.IsDark
	}

	st := Style{IsDark: r.dark}
	st.Fill = r.color(opts.Fill, VarBackground, "#fcfcfc", "#181818")
	st.Stroke = r.color(opts.Stroke, VarAccentStroke, "rgba(0, 189, 126, 0.3)", "rgba(0, 189, 126, 0.3)")

	var font FontOptions
	if opts.Font != nil {
		font = *opts.Font
	}
	st.Font.Color = r.color(font.Color, VarText, "rgba(60, 60, 60, 0.66)", "rgba(235, 235, 235, 0.64)")
	st.Font.Family = r.text(font.FontFamily, VarFontFamily, DefaultFontFamily)

	var axes AxesOptions
	if opts.Axes != nil {
		axes = *opts.Axes
	}
	st.Axes.YAxisWidth = number(axes.YAxisWidth, DefaultYAxisWidth)
	st.Axes.XAxisHeight = number(axes.XAxisHeight, DefaultXAxisHeight)

	var grid GridOptions
	if opts.Grid != nil {
		grid = *opts.Grid
	}
	st.Grid.Unit = number(grid.Unit, DefaultUnit)
	st.Grid.YAxisWidth = number(grid.YAxisWidth, DefaultYAxisWidth)
	st.Grid.XAxisHeight = number(grid.XAxisHeight, DefaultXAxisHeight)
	st.Grid.LineWidth = number(grid.LineWidth, DefaultLineWidth)
	st.Grid.Fill = r.color(grid.Fill, VarBackgroundSoft, "#f4f4f4", "#222222")
	st.Grid.Stroke = r.color(grid.Stroke, VarAccentStroke, "rgba(0, 189, 126, 0.3)", "rgba(0, 189, 126, 0.3)")

	var hl HighlightOptions
	if opts.Highlight != nil {
		hl = *opts.Highlight
	}
	st.Highlight.Column = -1
	if hl.Column != nil {
		st.Highlight.Column = *hl.Column
	}
	st.Highlight.Row = -1
	if hl.Row != nil {
		st.Highlight.Row = *hl.Row
	}
	st.Highlight.Fill = r.color(hl.Fill, VarBackgroundMute, "#eaeaea", "#323232")

	var mk MarkerOptions
	if opts.Markers != nil {
		mk = *opts.Markers
	}
	st.Markers.ShadowColor = r.color(mk.ShadowColor, VarBoxShadow3, "#48484877", "#28282855")
	st.Markers.ShadowBlur = number(mk.ShadowBlur, DefaultShadowBlur)
	st.Markers.ShadowOffsetX = number(mk.ShadowOffsetX, DefaultShadowOffsetX)
	st.Markers.ShadowOffsetY = number(mk.ShadowOffsetY, DefaultShadowOffsetY)
	st.Markers.Fill = r.color(mk.Fill, "", "tomato", "tomato")

	if r.err != nil {
		return Style{}, r.err
	}
	if err := Validate(st); err != nil {
		return Style{}, err
	}
	return st, nil
}

// Validate reports sizes a board cannot be laid out with.
func Validate(st Style) error {
	switch {
	case st.Grid.Unit <= 0:
		return fmt.Errorf("%w: grid unit must be positive, got %g", ErrInvalidStyle, st.Grid.Unit)
	case st.Grid.LineWidth < 0:
		return fmt.Errorf("%w: negative line width %g", ErrInvalidStyle, st.Grid.LineWidth)
	case st.Axes.YAxisWidth < 0 || st.Axes.XAxisHeight < 0:
		return fmt.Errorf("%w: negative axis size %gx%g", ErrInvalidStyle, st.Axes.YAxisWidth, st.Axes.XAxisHeight)
	case st.Markers.ShadowBlur < 0:
		return fmt.Errorf("%w: negative shadow blur %g", ErrInvalidStyle, st.Markers.ShadowBlur)
	}
	return nil
}

type resolver struct {
	theme Theme
	dark  bool
	err   error
}

func (r *resolver) lookup(name string) (string, bool) {
	if r.theme == nil || name == "" {
		return "", false
	}
	v, ok := r.theme.Lookup(name, r.dark)
	return v, ok && v != ""
}

func (r *resolver) text(v *string, name, fallback string) string {
	if v != nil {
		return *v
	}
	if tv, ok := r.lookup(name); ok {
		return tv
	}
	return fallback
}

func (r *resolver) color(v *string, name, light, dark string) gg.RGBA {
	fallback := light
	if r.dark {
		fallback = dark
	}
	s := r.text(v, name, fallback)
	c, err := ParseColor(s)
	if err != nil && r.err == nil {
		r.err = err
	}
	return c
}

func number(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

// Options converts a resolved style back to fully populated Options.
func (st Style) Options() Options {
	return Options{
		Fill:   String(FormatColor(st.Fill)),
		Stroke: String(FormatColor(st.Stroke)),
		IsDark: Bool(st.IsDark),
		Font: &FontOptions{
			Color:      String(FormatColor(st.Font.Color)),
			FontFamily: String(st.Font.Family),
		},
		Grid: &GridOptions{
			Unit:        Float(st.Grid.Unit),
			YAxisWidth:  Float(st.Grid.YAxisWidth),
			XAxisHeight: Float(st.Grid.XAxisHeight),
			LineWidth:   Float(st.Grid.LineWidth),
			Fill:        String(FormatColor(st.Grid.Fill)),
			Stroke:      String(FormatColor(st.Grid.Stroke)),
		},
		Axes: &AxesOptions{
			YAxisWidth:  Float(st.Axes.YAxisWidth),
			XAxisHeight: Float(st.Axes.XAxisHeight),
		},
		Highlight: &HighlightOptions{
			Column: Int(st.Highlight.Column),
			Row:    Int(st.Highlight.Row),
			Fill:   String(FormatColor(st.Highlight.Fill)),
		},
		Markers: &MarkerOptions{
			ShadowColor:   String(FormatColor(st.Markers.ShadowColor)),
			ShadowBlur:    Float(st.Markers.ShadowBlur),
			ShadowOffsetX: Float(st.Markers.ShadowOffsetX),
			ShadowOffsetY: Float(st.Markers.ShadowOffsetY),
			Fill:          String(FormatColor(st.Markers.Fill)),
		},
	}
}
