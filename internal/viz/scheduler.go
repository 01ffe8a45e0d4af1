package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/databg/internal/engine"
)

// FrameMsg is delivered once per tick.
type FrameMsg time.Time

// TickScheduler paces an engine.FrameQueue with tea.Tick. At most one tick
// is in flight, and none while the queue is empty, so a stopped engine costs
// nothing.
type TickScheduler struct {
	*engine.FrameQueue
	Interval time.Duration

	ticking bool
}

func NewTickScheduler(interval time.Duration) *TickScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickScheduler{FrameQueue: engine.NewFrameQueue(), Interval: interval}
}

// Next returns the command for the next tick, or nil when a tick is already
// pending or no frame has been requested.
func (s *TickScheduler) Next() tea.Cmd {
	if s.ticking || s.Pending() == 0 {
		return nil
	}
	s.ticking = true
	return tea.Tick(s.Interval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Fire runs the frames due at now and schedules the following tick.
func (s *TickScheduler) Fire(now time.Time) tea.Cmd {
	s.ticking = false
	s.Flush(now)
	return s.Next()
}
