package engine

import "time"

// Cancel stops a scheduled callback. After Cancel returns the callback is
// never invoked again for that schedule. Calling it twice is harmless.
type Cancel func()

// Scheduler invokes a callback every interval until cancelled.
// Implementations must deliver callbacks on the same logical thread that
// calls Every and Cancel, so ticks never overlap input handling.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Cancel
}

// Manual is a Scheduler driven by hand. Tests use it to step ticks without
// wall-clock timers.
type Manual struct {
	gen      uint64
	fn       func()
	interval time.Duration
	armed    bool

	Scheduled int // Number of Every calls
	Cancelled int // Number of effective Cancel calls
}

// Every arms the scheduler, replacing any previous schedule.
func (m *Manual) Every(interval time.Duration, fn func()) Cancel {
	m.gen++
	gen := m.gen
	m.fn = fn
	m.interval = interval
	m.armed = true
	m.Scheduled++

	return func() {
		if m.gen != gen || !m.armed {
			return
		}
		m.armed = false
		m.fn = nil
		m.interval = 0
		m.Cancelled++
	}
}

// Fire invokes the armed callback once. It reports false if nothing is armed.
func (m *Manual) Fire() bool {
	if !m.armed || m.fn == nil {
		return false
	}
	m.fn()
	return true
}

// Armed reports whether a callback is scheduled, and at which interval.
func (m *Manual) Armed() (time.Duration, bool) {
	return m.interval, m.armed
}
