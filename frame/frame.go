package frame

import (
	"sync"
	"time"
)

// Callback is invoked once for a requested frame.
type Callback func(timestamp time.Duration)

// Handle identifies a requested frame. The zero Handle is never issued.
type Handle uint64

// Scheduler requests and cancels frames.
type Scheduler interface {
	// RequestFrame schedules cb for the next frame.
	RequestFrame(cb Callback) Handle
	// Cancel drops a pending frame. Unknown or spent handles are ignored.
	Cancel(h Handle)
}

// queue is the pending frame set shared by the schedulers.
type queue struct {
	mu      sync.Mutex
	last    Handle
	order   []Handle
	pending map[Handle]Callback
}

func (q *queue) request(cb Callback) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[Handle]Callback)
	}
	q.last++
	q.pending[q.last] = cb
	q.order = append(q.order, q.last)
	return q.last
}

func (q *queue) cancel(h Handle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, h)
}

// take detaches the handles queued so far. Frames requested while they run
// wait for the next frame.
func (q *queue) take() []Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	taken := q.order
	q.order = nil
	return taken
}

// claim removes and returns h's callback if it is still pending.
func (q *queue) claim(h Handle) (Callback, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	cb, ok := q.pending[h]
	if ok {
		delete(q.pending, h)
	}
	return cb, ok
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// run invokes every live frame taken from the queue and reports how many ran.
func (q *queue) run(ts time.Duration) int {
	n := 0
	for _, h := range q.take() {
		if cb, ok := q.claim(h); ok {
			cb(ts)
			n++
		}
	}
	return n
}
