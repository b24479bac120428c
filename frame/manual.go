package frame

import "time"

// DefaultInterval is one frame at 60 frames per second.
const DefaultInterval = time.Second / 60

// Manual is a Scheduler stepped by its owner. It is safe for concurrent
// RequestFrame and Cancel calls, but frames run on the stepping goroutine.
type Manual struct {
	q        queue
	interval time.Duration
	now      time.Duration
}

// NewManual returns a Manual scheduler whose Step advances time by
// interval. A non-positive interval uses DefaultInterval.
func NewManual(interval time.Duration) *Manual {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Manual{interval: interval}
}

// RequestFrame implements Scheduler.
func (m *Manual) RequestFrame(cb Callback) Handle { return m.q.request(cb) }

// Cancel implements Scheduler.
func (m *Manual) Cancel(h Handle) { m.q.cancel(h) }

// Pending reports the number of frames waiting to run.
func (m *Manual) Pending() int { return m.q.len() }

// Now returns the timestamp of the most recent frame.
func (m *Manual) Now() time.Duration { return m.now }

// Step advances the clock by one interval and runs the pending frames.
// It returns the number of callbacks invoked.
func (m *Manual) Step() int {
	return m.StepTo(m.now + m.interval)
}

// StepTo runs the pending frames at timestamp ts. Timestamps earlier than
// the current one are raised to it so time never runs backwards.
func (m *Manual) StepTo(ts time.Duration) int {
	if ts > m.now {
		m.now = ts
	}
	return m.q.run(m.now)
}

// Run steps until no frames are pending or limit steps have run, and
// returns the number of steps taken. A non-positive limit means no limit.
func (m *Manual) Run(limit int) int {
	steps := 0
	for m.Pending() > 0 && (limit <= 0 || steps < limit) {
		m.Step()
		steps++
	}
	return steps
}
