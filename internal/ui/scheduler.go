package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

// frameScheduler turns the loop's next-frame requests into tea.Tick commands
// so every tick runs on the Update goroutine alongside store mutation.
type frameScheduler struct {
	interval time.Duration
	pending  func()
	waiting  bool
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &frameScheduler{interval: interval}
}

// RequestNextTick implements reconcile.Scheduler.
func (s *frameScheduler) RequestNextTick(fn func()) {
	s.pending = fn
}

// next returns the command that delivers the next frame, or nil when nothing
// is pending or a frame is already on its way.
func (s *frameScheduler) next() tea.Cmd {
	if s.pending == nil || s.waiting {
		return nil
	}
	s.waiting = true
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fire runs the pending callback, which may request another frame.
func (s *frameScheduler) fire() {
	s.waiting = false
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn()
	}
}
