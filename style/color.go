package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

var namedColors = map[string]string{
	"transparent": "#00000000",
	"black":       "#000000",
	"white":       "#ffffff",
	"red":         "#ff0000",
	"green":       "#008000",
	"blue":        "#0000ff",
	"gray":        "#808080",
	"grey":        "#808080",
	"tomato":      "#ff6347",
	"orange":      "#ffa500",
	"gold":        "#ffd700",
	"seagreen":    "#2e8b57",
	"steelblue":   "#4682b4",
	"purple":      "#800080",
}

// ParseColor parses a CSS-like color: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(r, g, b), rgba(r, g, b, a) or one of a small set of color names.
func ParseColor(s string) (gg.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if named, ok := namedColors[v]; ok {
		v = named
	}
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(s, v[1:])
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunc(s, v[len("rgba("):len(v)-1], 4)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunc(s, v[len("rgb("):len(v)-1], 3)
	}
	return gg.RGBA{}, fmt.Errorf("%w: unrecognized color %q", ErrInvalidStyle, s)
}

func parseHex(orig, hex string) (gg.RGBA, error) {
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidStyle, orig)
	}
	if _, err := strconv.ParseUint(hex, 16, 64); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidStyle, orig)
	}
	return gg.Hex(hex), nil
}

func parseFunc(orig, args string, n int) (gg.RGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return gg.RGBA{}, fmt.Errorf("%w: color %q wants %d components", ErrInvalidStyle, orig, n)
	}
	var c [4]float64
	c[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalidStyle, orig, err)
		}
		if i < 3 {
			f /= 255
		}
		c[i] = math.Max(0, math.Min(1, f))
	}
	return gg.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

// FormatColor renders c as #rrggbbaa.
func FormatColor(c gg.RGBA) string {
	b := func(f float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}
