package input

import "github.com/vovakirdan/tui-snake/internal/core"

// Swipe tracks one pointer gesture from press to release.
type Swipe struct {
	threshold int
	startX    int
	startY    int
	active    bool
}

// NewSwipe creates a gesture tracker. A negative threshold is treated as zero.
func NewSwipe(threshold int) *Swipe {
	return &Swipe{threshold: max(threshold, 0)}
}

// Begin records the start point of a gesture.
func (s *Swipe) Begin(x, y int) {
	s.startX, s.startY = x, y
	s.active = true
}

// End finishes the gesture and returns the direction it describes, or
// ActionNone when no gesture was started or it was too short.
func (s *Swipe) End(x, y int) core.Action {
	if !s.active {
		return core.ActionNone
	}
	s.active = false
	return Gesture(x-s.startX, y-s.startY, s.threshold)
}

// Active reports whether a gesture is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// Gesture classifies a displacement by its dominant axis. Y grows downward.
// Equal magnitudes count as vertical. A displacement whose dominant component
// is below threshold is ignored.
func Gesture(dx, dy, threshold int) core.Action {
	ax, ay := core.Abs(dx), core.Abs(dy)
	if max(ax, ay) < threshold || (ax == 0 && ay == 0) {
		return core.ActionNone
	}

	if ax > ay {
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	}
	if dy > 0 {
		return core.ActionDown
	}
	return core.ActionUp
}
