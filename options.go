package board

import "time"

// Option configures a Renderer during creation.
//
// Example:
//
//	r := board.NewRenderer(st, board.WithDateFormatter(board.LocalizedDates{
//	    Names: frenchMonths,
//	    Tag:   language.French,
//	}))
type Option func(*rendererOptions)

type rendererOptions struct {
	dates    DateFormatter
	duration time.Duration
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		dates:    EnglishDates(),
		duration: DefaultDuration,
	}
}

// WithDateFormatter sets the formatter for month names and day numerals.
// A nil formatter is ignored.
func WithDateFormatter(f DateFormatter) Option {
	return func(o *rendererOptions) {
		if f != nil {
			o.dates = f
		}
	}
}

// WithDefaultDuration sets the duration used by translations that do not
// specify one. Non-positive values are ignored.
func WithDefaultDuration(d time.Duration) Option {
	return func(o *rendererOptions) {
		if d > 0 {
			o.duration = d
		}
	}
}
