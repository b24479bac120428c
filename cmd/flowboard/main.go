// Command flowboard renders farm-operations calendar boards.
//
// Usage:
//
//	flowboard render --data farm.yaml -o board.png
//	flowboard render --data farm.yaml --style board.toml -o board.svg --watch
//	flowboard pan --data farm.yaml --to 14,0 --out-dir frames/
//	flowboard view --data farm.yaml
//	flowboard styles --dark --format toml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	board "github.com/runrig-coop/farm-flow-board"
	_ "github.com/runrig-coop/farm-flow-board/recording/backends/raster"
	_ "github.com/runrig-coop/farm-flow-board/recording/backends/svg"
)

var version = "dev"

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "flowboard",
		Short: "Farm-operations calendar boards",
		Long: `flowboard draws a calendar grid of locations against dates, with a
marker for every operation planned on a location on a day.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cfg.Debug)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	flags.StringVar(&cfg.Data, "data", "", "Farm plan dataset (YAML)")
	flags.StringVar(&cfg.Style, "style", "", "Style overrides (YAML or TOML)")
	flags.StringVar(&cfg.Theme, "theme", "", "Theme variable tables (YAML or TOML)")
	flags.BoolVar(&cfg.Dark, "dark", false, "Use the dark color scheme")
	flags.IntVar(&cfg.Width, "width", 1280, "Surface width in pixels")
	flags.IntVar(&cfg.Height, "height", 720, "Surface height in pixels")
	flags.StringVar(&cfg.Index, "index", "0,0", "First visible date and location, as x,y")
	flags.StringVar(&cfg.Highlight, "highlight", "", "Highlighted column and row, as col,row")

	rootCmd.AddCommand(renderCmd(&cfg), panCmd(&cfg), viewCmd(&cfg), stylesCmd(&cfg))

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	board.SetLogger(logger)
}
