package frame

import (
	"context"
	"time"

	"github.com/runrig-coop/farm-flow-board/internal/logging"
)

// Ticker is a Scheduler paced by a wall-clock ticker. Frames run serially
// on the goroutine calling Run.
type Ticker struct {
	q        queue
	interval time.Duration
	epoch    time.Time
	idleExit bool
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithFPS sets the frame rate. Non-positive values are ignored.
func WithFPS(fps int) TickerOption {
	return func(t *Ticker) {
		if fps > 0 {
			t.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithInterval sets the frame interval directly.
func WithInterval(d time.Duration) TickerOption {
	return func(t *Ticker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// ExitWhenIdle makes Run return once a tick finds no frames pending.
func ExitWhenIdle() TickerOption {
	return func(t *Ticker) { t.idleExit = true }
}

// NewTicker returns a Ticker running at 60 frames per second unless
// configured otherwise.
func NewTicker(opts ...TickerOption) *Ticker {
	t := &Ticker{interval: DefaultInterval}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Interval returns the frame interval.
func (t *Ticker) Interval() time.Duration { return t.interval }

// RequestFrame implements Scheduler.
func (t *Ticker) RequestFrame(cb Callback) Handle { return t.q.request(cb) }

// Cancel implements Scheduler.
func (t *Ticker) Cancel(h Handle) { t.q.cancel(h) }

// Pending reports the number of frames waiting to run.
func (t *Ticker) Pending() int { return t.q.len() }

// Run delivers frames until ctx is done, or until the queue drains when
// the Ticker was built with ExitWhenIdle. Timestamps are measured from the
// first call to Run.
func (t *Ticker) Run(ctx context.Context) error {
	if t.epoch.IsZero() {
		t.epoch = time.Now()
	}
	log := logging.Logger()
	log.Debug("frame: ticker started", "interval", t.interval)

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("frame: ticker stopped", "err", ctx.Err())
			return ctx.Err()
		case now := <-tick.C:
			if t.idleExit && t.q.len() == 0 {
				log.Debug("frame: ticker idle")
				return nil
			}
			t.q.run(now.Sub(t.epoch))
		}
	}
}
