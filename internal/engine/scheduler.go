package engine

import (
	"sort"
	"time"
)

// Handle identifies a requested frame so it can be cancelled.
type Handle uint64

// Scheduler invokes a callback once, before the next repaint of its host.
type Scheduler interface {
	Request(cb func(now time.Time)) Handle
	Cancel(h Handle)
}

// FrameQueue is a Scheduler for hosts that own their loop: callbacks wait
// until the host calls Flush at its repaint cadence. Callbacks requested
// during a Flush run on the next one.
type FrameQueue struct {
	next    Handle
	pending map[Handle]func(time.Time)
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[Handle]func(time.Time))}
}

func (q *FrameQueue) Request(cb func(now time.Time)) Handle {
	q.next++
	q.pending[q.next] = cb
	return q.next
}

func (q *FrameQueue) Cancel(h Handle) {
	delete(q.pending, h)
}

func (q *FrameQueue) Pending() int { return len(q.pending) }

// Flush runs every callback pending at call time, oldest first, and returns
// how many ran.
func (q *FrameQueue) Flush(now time.Time) int {
	if len(q.pending) == 0 {
		return 0
	}
	handles := make([]Handle, 0, len(q.pending))
	for h := range q.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	ran := 0
	for _, h := range handles {
		cb, ok := q.pending[h]
		if !ok {
			continue // cancelled by an earlier callback
		}
		delete(q.pending, h)
		cb(now)
		ran++
	}
	return ran
}
