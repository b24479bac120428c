package board

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/runrig-coop/farm-flow-board/internal/logging"
)

// SetLogger configures the logger for board, its sub-packages, and the gg
// rasterizer underneath canvas. By default nothing is logged. Pass nil to
// restore silence.
//
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: transition lifecycle, surface growth, font fallback
//   - [slog.LevelWarn]: unparseable marker colors, rejected resizes
//
// Example:
//
//	board.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	return logging.Logger()
}
