package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	board "github.com/runrig-coop/farm-flow-board"
	"github.com/runrig-coop/farm-flow-board/recording"
)

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

func renderCmd(cfg *Config) *cobra.Command {
	var (
		output string
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a board to an image file",
		Example: `  # Render to PNG
  flowboard render --data farm.yaml -o board.png

  # Render to SVG, starting at the 15th day, and re-render on changes
  flowboard render --data farm.yaml --index 14,0 -o board.svg --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := renderOnce(cfg, output); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndRender(cmd.Context(), cfg, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "board.png", "Output file; its extension picks the backend")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render when the data, style or theme file changes")
	return cmd
}

func renderOnce(cfg *Config, output string) error {
	name, err := recording.BackendFor(output)
	if err != nil {
		return fmt.Errorf("%s: %w (registered: %v)", output, err, recording.Backends())
	}
	in, err := cfg.Load()
	if err != nil {
		return err
	}

	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	b := board.NewRenderer(in.Style).Draw(rec, in.Values, in.Tasks, in.Index)

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := rec.FinishRecording().Export(name, f); err != nil {
		f.Close()
		return fmt.Errorf("exporting %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	slog.Info("rendered board",
		"output", output,
		"backend", name,
		"columns", b.Grid.Columns,
		"rows", b.Grid.Rows,
		"start", b.Start,
		"operations", in.Tasks.Count())
	return nil
}

// watchAndRender re-renders whenever one of the input files changes, until
// interrupted. Render errors are logged and watching continues.
func watchAndRender(ctx context.Context, cfg *Config, output string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace files on save, so watch the directories.
	targets := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range []string{cfg.Data, cfg.Style, cfg.Theme} {
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		targets[p] = true
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	slog.Info("watching for changes", "files", len(targets))

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				slog.Debug("input changed", "file", ev.Name, "op", ev.Op)
				fire = time.After(watchDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "err", err)
		case <-fire:
			fire = nil
			if err := renderOnce(cfg, output); err != nil {
				slog.Error("render failed", "err", err)
			}
		}
	}
}
