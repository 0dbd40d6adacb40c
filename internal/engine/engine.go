// Package engine wires the snake state machine to a scheduler, a renderer and
// score persistence. It is the single place where commands and ticks meet.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Renderer draws a frame. It is called once after every state change.
type Renderer interface {
	Draw(snap snake.Snapshot)
}

// RunResult summarizes a finished run.
type RunResult struct {
	Score    int
	Length   int
	Ticks    uint64
	Duration time.Duration
}

// RunRecorder stores finished runs. Recording is best-effort.
type RunRecorder interface {
	RecordRun(run RunResult)
}

// Engine owns a game and keeps its tick schedule in step with its phase and
// score.
type Engine struct {
	game     *snake.Game
	sched    Scheduler
	renderer Renderer
	recorder RunRecorder
	logger   *log.Logger
	now      func() time.Time

	cancel   Cancel
	interval time.Duration // Armed tick period; 0 when stopped
	started  time.Time     // Wall-clock start of the current run
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRecorder stores every finished run.
func WithRecorder(r RunRecorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock overrides the wall clock used for run durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine. Nothing is scheduled until the game starts.
func New(game *snake.Game, sched Scheduler, renderer Renderer, opts ...Option) *Engine {
	e := &Engine{
		game:     game,
		sched:    sched,
		renderer: renderer,
		logger:   log.New(io.Discard),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Game returns the underlying state machine.
func (e *Engine) Game() *snake.Game {
	return e.game
}

// Interval returns the armed tick period, or 0 when no tick is scheduled.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Dispatch applies one command and then reconciles the schedule and redraws.
// Quit and None are ignored; leaving the program is the platform's business.
func (e *Engine) Dispatch(a core.Action) {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		d, _ := snake.DirectionFor(a)
		if !e.game.SetNextDirection(d) {
			e.logger.Debug("turn rejected", "request", d, "committed", e.game.Direction())
			return
		}
	case core.ActionStart:
		before := e.game.Phase()
		e.game.Start()
		if before != snake.PhaseRunning && before != snake.PhasePaused {
			e.started = e.now()
		}
	case core.ActionPause:
		e.game.TogglePause()
	case core.ActionRestart:
		e.game.Restart()
	default:
		return
	}

	e.logger.Debug("command", "action", a, "phase", e.game.Phase())
	e.reconcile()
	e.Redraw()
}

// tick is the scheduler callback.
func (e *Engine) tick() {
	res := e.game.Advance()
	if !res.Moved && !res.Died {
		return
	}

	if res.Died {
		e.finishRun(res)
	}
	e.reconcile()
	e.Redraw()
}

// finishRun logs and records a run that just ended in death.
func (e *Engine) finishRun(res snake.StepResult) {
	run := RunResult{
		Score:    e.game.Score(),
		Length:   e.game.Length(),
		Ticks:    e.game.Ticks(),
		Duration: e.now().Sub(e.started),
	}
	e.logger.Info("game over",
		"score", run.Score,
		"length", run.Length,
		"best", e.game.Best(),
		"new_best", res.NewBest,
		"duration", run.Duration.Round(time.Millisecond),
	)
	e.logger.Debug("final state", "state", e.game.DebugState())
	if e.recorder != nil {
		e.recorder.RecordRun(run)
	}
}

// reconcile makes the armed schedule match the game. Only a Running game
// ticks, at the period its score calls for. Any pending tick is cancelled
// before a new one is armed.
func (e *Engine) reconcile() {
	want := time.Duration(0)
	if e.game.Phase() == snake.PhaseRunning {
		want = e.game.TickInterval()
	}
	if want == e.interval {
		return
	}

	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.interval = want
	if want > 0 {
		e.logger.Debug("schedule", "interval", want)
		e.cancel = e.sched.Every(want, e.tick)
	}
}

// Redraw hands the current snapshot to the renderer.
func (e *Engine) Redraw() {
	if e.renderer != nil {
		e.renderer.Draw(e.game.Snapshot())
	}
}

// Stop cancels any pending tick. The engine can be reused afterwards; the next
// command that needs ticking re-arms the scheduler.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.interval = 0
}
