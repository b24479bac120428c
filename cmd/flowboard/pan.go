package main

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	board "github.com/runrig-coop/farm-flow-board"
	"github.com/runrig-coop/farm-flow-board/canvas"
	"github.com/runrig-coop/farm-flow-board/frame"
)

type panOptions struct {
	To       string
	OutDir   string
	FPS      int
	Duration time.Duration
	Realtime bool
	Workers  int
}

func panCmd(cfg *Config) *cobra.Command {
	var opts panOptions
	cmd := &cobra.Command{
		Use:   "pan",
		Short: "Animate a pan between two index windows into PNG frames",
		Example: `  # Pan two weeks forward at 30 frames per second
  flowboard pan --data farm.yaml --to 14,0 --fps 30 --out-dir frames/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPan(cmd.Context(), cfg, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.To, "to", "", "Target index window, as x,y")
	f.StringVar(&opts.OutDir, "out-dir", "frames", "Directory for the numbered frames")
	f.IntVar(&opts.FPS, "fps", 60, "Frames per second")
	f.DurationVar(&opts.Duration, "duration", board.DefaultDuration, "Pan duration")
	f.BoolVar(&opts.Realtime, "realtime", false, "Pace frames by the wall clock instead of stepping")
	f.IntVar(&opts.Workers, "workers", runtime.GOMAXPROCS(0), "Concurrent PNG encoders")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

type snapshot struct {
	n   int
	img *image.RGBA
}

func runPan(ctx context.Context, cfg *Config, opts panOptions) error {
	if opts.FPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", opts.FPS)
	}
	in, err := cfg.Load()
	if err != nil {
		return err
	}
	tx, ty, err := parsePair(opts.To)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return err
	}

	var (
		sched frame.Scheduler
		run   func(context.Context) error
	)
	if opts.Realtime {
		t := frame.NewTicker(frame.WithFPS(opts.FPS), frame.ExitWhenIdle())
		sched, run = t, t.Run
	} else {
		m := frame.NewManual(time.Second / time.Duration(opts.FPS))
		sched, run = m, func(context.Context) error {
			m.Run(0)
			return nil
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	frames := make(chan snapshot, max(opts.Workers, 1))

	dc := canvas.NewContext(cfg.Width, cfg.Height)
	n := 0
	capture := func() {
		s := snapshot{n: n, img: cloneRGBA(dc.Image())}
		n++
		select {
		case frames <- s:
		case <-ctx.Done():
		}
	}

	r := board.NewRenderer(in.Style, board.WithDefaultDuration(opts.Duration))
	from := r.Draw(dc, in.Values, in.Tasks, in.Index).Start
	capture()

	if _, err := r.Translate(dc, sched, in.Values, in.Tasks, board.Translation{
		From: from,
		To:   board.Index{X: tx, Y: ty},
		AfterEach: func(canvas.Surface, board.BoardProperties, board.Deltas, board.Cycle) {
			capture()
		},
		AfterAll: func(canvas.Surface, board.BoardProperties, board.Deltas) {
			capture()
		},
	}); err != nil {
		return err
	}

	g.Go(func() error {
		defer close(frames)
		return run(ctx)
	})
	for range max(opts.Workers, 1) {
		g.Go(func() error {
			for s := range frames {
				path := filepath.Join(opts.OutDir, fmt.Sprintf("frame-%04d.png", s.n))
				if err := writePNG(path, s.img); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("pan written", "frames", n, "dir", opts.OutDir, "from", from, "to", opts.To)
	return nil
}

func cloneRGBA(src image.Image) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
