package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	board "github.com/runrig-coop/farm-flow-board"
	"github.com/runrig-coop/farm-flow-board/resource"
	"github.com/runrig-coop/farm-flow-board/style"
)

// Config holds the flags shared by every command.
type Config struct {
	Debug     bool
	Data      string
	Style     string
	Theme     string
	Dark      bool
	Width     int
	Height    int
	Index     string
	Highlight string
}

// Inputs is everything a command needs to draw.
type Inputs struct {
	Dataset *resource.Dataset
	Values  board.AxisValues
	Tasks   resource.TaskMatrix
	Style   style.Style
	Index   board.Index
}

var errNoData = errors.New("no dataset given; use --data")

// Load reads the dataset and resolves the style.
func (c *Config) Load() (*Inputs, error) {
	if c.Data == "" {
		return nil, errNoData
	}
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", c.Width, c.Height)
	}
	ds, err := resource.Load(c.Data)
	if err != nil {
		return nil, fmt.Errorf("loading data: %w", err)
	}
	st, err := c.ResolveStyle()
	if err != nil {
		return nil, err
	}
	x, y, err := parsePair(c.Index)
	if err != nil {
		return nil, fmt.Errorf("--index: %w", err)
	}
	return &Inputs{
		Dataset: ds,
		Values:  board.AxisValues{X: ds.Dates(), Y: ds.Locations},
		Tasks:   ds.Matrix(),
		Style:   st,
		Index:   board.Index{X: x, Y: y},
	}, nil
}

// ResolveStyle merges the style file, theme and flags into a Style.
func (c *Config) ResolveStyle() (style.Style, error) {
	var opts style.Options
	if c.Style != "" {
		o, err := style.Load(c.Style)
		if err != nil {
			return style.Style{}, fmt.Errorf("loading style: %w", err)
		}
		opts = o
	}

	theme := style.DefaultTheme()
	if c.Theme != "" {
		t, err := style.LoadTheme(c.Theme)
		if err != nil {
			return style.Style{}, fmt.Errorf("loading theme: %w", err)
		}
		theme = t
	}

	var flags style.Options
	if c.Dark {
		flags.IsDark = style.Bool(true)
	}
	if c.Highlight != "" {
		col, row, err := parsePair(c.Highlight)
		if err != nil {
			return style.Style{}, fmt.Errorf("--highlight: %w", err)
		}
		flags.Highlight = &style.HighlightOptions{Column: style.Int(col), Row: style.Int(row)}
	}

	st, err := style.Resolve(opts.Merge(flags), theme)
	if err != nil {
		return style.Style{}, fmt.Errorf("resolving style: %w", err)
	}
	return st, nil
}

// parsePair parses "a,b" into two integers.
func parsePair(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not of the form a,b", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
