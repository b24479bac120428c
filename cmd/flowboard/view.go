package main

import (
	"github.com/spf13/cobra"

	board "github.com/runrig-coop/farm-flow-board"
	"github.com/runrig-coop/farm-flow-board/internal/desktop"
	"github.com/runrig-coop/farm-flow-board/internal/viewer"
)

func viewCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse a board in a window",
		Long: `view opens an interactive window. Arrow keys pan by one cell, or by a
page with Shift held; the cell under the pointer is highlighted; Escape
quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := cfg.Load()
			if err != nil {
				return err
			}
			r := board.NewRenderer(in.Style)
			v := viewer.New(r, cfg.Width, cfg.Height, in.Values, in.Tasks, in.Index)
			title := "flowboard"
			if name := in.Dataset.Board.Name; name != "" {
				title += ": " + name
			}
			return desktop.Run(v, title)
		},
	}
}
