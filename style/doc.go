// Package style resolves board styling.
//
// The board renderer consumes a fully populated Style and never applies
// defaults itself. Partial user configuration is expressed as Options, whose
// nil fields mean "use the default", and is turned into a Style exactly once
// by Resolve:
//
//	st, err := style.Resolve(style.Options{IsDark: style.Bool(true)}, style.DefaultTheme())
//
// Defaults come from a Theme, a lookup of named color variables for light
// and dark mode, followed by built-in light/dark fallbacks for variables the
// theme does not define.
//
// Options can be loaded from YAML or TOML files with Load.
package style
