package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Router maps raw input events to actions. It holds the in-flight swipe, so
// each session needs its own Router.
type Router struct {
	keys  KeyMap
	swipe *Swipe
}

// NewRouter builds a router from the input section of the config.
func NewRouter(cfg config.InputConfig) *Router {
	return &Router{
		keys:  NewKeyMap(cfg.Keys),
		swipe: NewSwipe(cfg.SwipeThreshold),
	}
}

// Keys returns the active bindings, for help rendering.
func (r *Router) Keys() KeyMap {
	return r.keys
}

// Key maps a key press to an action. Unbound keys yield ActionNone.
func (r *Router) Key(k fmt.Stringer) core.Action {
	switch {
	case key.Matches(k, r.keys.Quit):
		return core.ActionQuit
	case key.Matches(k, r.keys.Up):
		return core.ActionUp
	case key.Matches(k, r.keys.Down):
		return core.ActionDown
	case key.Matches(k, r.keys.Left):
		return core.ActionLeft
	case key.Matches(k, r.keys.Right):
		return core.ActionRight
	case key.Matches(k, r.keys.Start):
		return core.ActionStart
	case key.Matches(k, r.keys.Pause):
		return core.ActionPause
	case key.Matches(k, r.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// TouchStart begins a swipe at the given point.
func (r *Router) TouchStart(x, y int) {
	r.swipe.Begin(x, y)
}

// TouchEnd completes a swipe and returns the requested turn, if any.
func (r *Router) TouchEnd(x, y int) core.Action {
	return r.swipe.End(x, y)
}
