// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input routing and tick delivery.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// TickMsg is sent to trigger a game tick. Gen identifies the schedule that
// produced it so ticks from a cancelled schedule can be dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// TeaScheduler implements engine.Scheduler on top of tea.Tick. Every timer is
// a one-shot command; the scheduler re-arms it after each delivered tick.
// Commands produced by Every are collected and handed to Bubble Tea through
// Flush, so all callbacks run on the program's update goroutine.
type TeaScheduler struct {
	gen      uint64
	fn       func()
	interval time.Duration
	pending  tea.Cmd
}

// NewTeaScheduler creates an idle scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{}
}

// Every arms fn to run every interval until the returned Cancel is called.
// It replaces any previous schedule.
func (s *TeaScheduler) Every(interval time.Duration, fn func()) engine.Cancel {
	s.gen++
	gen := s.gen
	s.fn = fn
	s.interval = interval
	s.pending = s.tickCmd(gen)

	return func() {
		if s.gen != gen {
			return
		}
		s.gen++
		s.fn = nil
		s.pending = nil
	}
}

// Fire handles a tick message. Stale ticks are ignored. It returns the next
// command to run, if any.
func (s *TeaScheduler) Fire(msg TickMsg) tea.Cmd {
	if msg.Gen != s.gen || s.fn == nil {
		return s.Flush()
	}

	gen := s.gen
	s.fn()
	// The callback may have cancelled or replaced the schedule
	if s.gen == gen && s.fn != nil {
		s.pending = s.tickCmd(gen)
	}
	return s.Flush()
}

// Flush returns and clears the pending tick command.
func (s *TeaScheduler) Flush() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

// Armed reports the current period and whether a schedule is live.
func (s *TeaScheduler) Armed() (time.Duration, bool) {
	return s.interval, s.fn != nil
}

func (s *TeaScheduler) tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

var _ engine.Scheduler = (*TeaScheduler)(nil)
