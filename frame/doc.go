// Package frame schedules animation frames.
//
// A Scheduler hands out one callback invocation per requested frame, the
// way a display refresh loop does. Callbacks receive a monotonic timestamp
// measured from the scheduler's own epoch.
//
// Manual steps frames explicitly and is deterministic, for tests and for
// offline rendering. Ticker paces frames on a wall-clock interval.
package frame
