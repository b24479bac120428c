package style

// Color variable names consulted by Resolve.
const (
	VarBackground     = "--color-background"
	VarBackgroundSoft = "--color-background-soft"
	VarBackgroundMute = "--color-background-mute"
	VarBoxShadow3     = "--color-box-shadow-3"
	VarText           = "--color-text"
	VarAccentStroke   = "--ff-c-green-transparent-2"
	VarFontFamily     = "--ff-font-family"
)

// DefaultFontFamily is the label font stack used when the theme has none.
const DefaultFontFamily = "Inter, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, " +
	"Ubuntu, Cantarell, 'Fira Sans', 'Droid Sans', 'Helvetica Neue', sans-serif"

// Theme looks up named style variables such as "--color-text".
type Theme interface {
	// Lookup returns the variable's value for the requested mode.
	Lookup(name string, dark bool) (string, bool)
}

// MapTheme is a Theme backed by two maps. Dark values take precedence in
// dark mode; anything missing falls back to the light map.
type MapTheme struct {
	Light map[string]string `yaml:"light" toml:"light"`
	Dark  map[string]string `yaml:"dark" toml:"dark"`
}

// Lookup implements Theme.
func (t MapTheme) Lookup(name string, dark bool) (string, bool) {
	if dark {
		if v, ok := t.Dark[name]; ok {
			return v, true
		}
	}
	v, ok := t.Light[name]
	return v, ok
}

// Names returns the variable names defined in either mode.
func (t MapTheme) Names() []string {
	seen := make(map[string]bool, len(t.Light)+len(t.Dark))
	var names []string
	for _, m := range []map[string]string{t.Light, t.Dark} {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	return names
}

// DefaultTheme returns the built-in color variable table.
func DefaultTheme() MapTheme {
	return MapTheme{
		Light: map[string]string{
			"--color-background":           "#ffffff",
			"--color-background-soft":      "#f8f8f8",
			"--color-background-mute":      "#f2f2f2",
			"--color-border":               "rgba(60, 60, 60, 0.12)",
			"--color-border-hover":         "rgba(60, 60, 60, 0.29)",
			"--color-box-shadow-1":         "#484848b8",
			"--color-box-shadow-2":         "#48484878",
			"--color-box-shadow-3":         "#48484848",
			"--color-box-shadow-inverse-1": "#282828d8",
			"--color-box-shadow-inverse-2": "#282828a8",
			"--color-box-shadow-inverse-3": "#28282858",
			"--color-heading":              "#2c3e50",
			"--color-text":                 "rgba(60, 60, 60, 0.66)",
		},
		Dark: map[string]string{
			"--color-background":           "#181818",
			"--color-background-soft":      "#222222",
			"--color-background-mute":      "#323232",
			"--color-border":               "rgba(84, 84, 84, 0.48)",
			"--color-border-hover":         "rgba(84, 84, 84, 0.65)",
			"--color-box-shadow-1":         "#282828d8",
			"--color-box-shadow-2":         "#282828a8",
			"--color-box-shadow-3":         "#28282858",
			"--color-box-shadow-inverse-1": "#484848b8",
			"--color-box-shadow-inverse-2": "#48484878",
			"--color-box-shadow-inverse-3": "#48484848",
			"--color-heading":              "#ffffff",
			"--color-text":                 "rgba(235, 235, 235, 0.64)",
		},
	}
}
