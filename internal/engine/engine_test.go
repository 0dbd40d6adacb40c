package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type countingRenderer struct {
	frames []snake.Snapshot
}

func (r *countingRenderer) Draw(s snake.Snapshot) { r.frames = append(r.frames, s) }

func (r *countingRenderer) last() snake.Snapshot { return r.frames[len(r.frames)-1] }

type memRecorder struct {
	runs []RunResult
}

func (m *memRecorder) RecordRun(run RunResult) { m.runs = append(m.runs, run) }

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *Manual, *countingRenderer) {
	t.Helper()
	g := snake.New(config.DefaultSnakeConfig(), snake.WithSeed(3))
	sched := &Manual{}
	r := &countingRenderer{}
	return New(g, sched, r, opts...), sched, r
}

func TestIdleDoesNotTick(t *testing.T) {
	_, sched, _ := newTestEngine(t)

	if _, armed := sched.Armed(); armed {
		t.Error("a fresh engine should not schedule ticks")
	}
	if sched.Fire() {
		t.Error("Fire() should do nothing while idle")
	}
}

func TestStartArmsAtScoreInterval(t *testing.T) {
	e, sched, r := newTestEngine(t)
	e.Dispatch(core.ActionStart)

	interval, armed := sched.Armed()
	if !armed || interval != 111*time.Millisecond {
		t.Errorf("Armed() = %v, %v, expected 111ms armed", interval, armed)
	}
	if e.Interval() != interval {
		t.Errorf("Interval() = %v, expected %v", e.Interval(), interval)
	}
	if len(r.frames) != 1 || r.last().Phase != snake.PhaseRunning {
		t.Errorf("expected one running frame, got %d", len(r.frames))
	}
}

func TestTickAdvancesAndRedraws(t *testing.T) {
	e, sched, r := newTestEngine(t)
	e.Dispatch(core.ActionStart)
	head := e.Game().Snapshot().Head()

	if !sched.Fire() {
		t.Fatal("Fire() should tick a running game")
	}

	if got := r.last().Head(); got != head.Add(core.Cell{X: 1}) {
		t.Errorf("head after tick = %v, expected %v", got, head.Add(core.Cell{X: 1}))
	}
	if len(r.frames) != 2 {
		t.Errorf("frames = %d, expected 2 (start + tick)", len(r.frames))
	}
}

func TestPauseCancelsAndResumeRearms(t *testing.T) {
	e, sched, _ := newTestEngine(t)
	e.Dispatch(core.ActionStart)

	e.Dispatch(core.ActionPause)
	if _, armed := sched.Armed(); armed {
		t.Error("pause should cancel the schedule")
	}
	if sched.Cancelled != 1 {
		t.Errorf("Cancelled = %d, expected 1", sched.Cancelled)
	}
	head := e.Game().Snapshot().Head()
	if sched.Fire() {
		t.Error("no tick should fire while paused")
	}
	if e.Game().Snapshot().Head() != head {
		t.Error("the snake moved while paused")
	}

	e.Dispatch(core.ActionPause)
	if _, armed := sched.Armed(); !armed {
		t.Error("resume should re-arm the schedule")
	}
	if sched.Scheduled != 2 {
		t.Errorf("Scheduled = %d, expected 2", sched.Scheduled)
	}
}

func TestRestartStopsTicking(t *testing.T) {
	e, sched, r := newTestEngine(t)
	e.Dispatch(core.ActionStart)
	sched.Fire()

	e.Dispatch(core.ActionRestart)

	if _, armed := sched.Armed(); armed {
		t.Error("restart should cancel the schedule")
	}
	if r.last().Phase != snake.PhaseIdle {
		t.Errorf("phase after restart = %s", r.last().Phase)
	}
	if e.Interval() != 0 {
		t.Errorf("Interval() = %v, expected 0", e.Interval())
	}
}

func TestRejectedTurnDoesNotRedraw(t *testing.T) {
	e, _, r := newTestEngine(t)
	e.Dispatch(core.ActionStart)
	frames := len(r.frames)

	e.Dispatch(core.ActionLeft) // opposite of the initial right

	if len(r.frames) != frames {
		t.Error("a rejected turn changes nothing and should not redraw")
	}
	if e.Game().NextDirection() != snake.DirRight {
		t.Errorf("NextDirection() = %s, expected right", e.Game().NextDirection())
	}

	e.Dispatch(core.ActionUp)
	if e.Game().NextDirection() != snake.DirUp {
		t.Errorf("NextDirection() = %s, expected up", e.Game().NextDirection())
	}
}

func TestIgnoresQuitAndNone(t *testing.T) {
	e, sched, r := newTestEngine(t)
	e.Dispatch(core.ActionQuit)
	e.Dispatch(core.ActionNone)

	if len(r.frames) != 0 || sched.Scheduled != 0 {
		t.Error("quit and none should not touch the game")
	}
}

// scriptedSource feeds math/rand a fixed sequence so Intn(n) returns each
// scripted value in turn (for values below n).
type scriptedSource struct {
	values []int64
	pos    int
}

func (s *scriptedSource) Int63() int64 {
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos]
	s.pos++
	return v << 32 // Int31 takes the high bits
}

func (s *scriptedSource) Seed(int64) {}

func TestSpeedBandRebuildsSchedule(t *testing.T) {
	// Food always appears two cells ahead on the snake's row
	src := &scriptedSource{values: []int64{11, 9, 13, 9, 15, 9, 17, 9, 1, 9, 3, 9}}
	g := snake.New(config.DefaultSnakeConfig(), snake.WithRand(rand.New(src)))
	sched := &Manual{}
	e := New(g, sched, &countingRenderer{})

	e.Dispatch(core.ActionStart)
	for range 8 {
		sched.Fire()
	}
	if g.Score() != 4 {
		t.Fatalf("score = %d after 8 ticks, expected 4", g.Score())
	}
	if interval, _ := sched.Armed(); interval != 111*time.Millisecond || sched.Scheduled != 1 {
		t.Errorf("Armed() = %v with %d schedules, expected 111ms once", interval, sched.Scheduled)
	}

	// Fifth food crosses into the next band
	sched.Fire()
	sched.Fire()
	if g.Score() != 5 {
		t.Fatalf("score = %d, expected 5", g.Score())
	}
	interval, armed := sched.Armed()
	if !armed || interval != 90*time.Millisecond {
		t.Errorf("Armed() = %v, %v, expected 90ms", interval, armed)
	}
	if sched.Scheduled != 2 || sched.Cancelled != 1 {
		t.Errorf("Scheduled=%d Cancelled=%d, expected the old timer cancelled before the new one",
			sched.Scheduled, sched.Cancelled)
	}
	if g.Length() != 8 {
		t.Errorf("length = %d, expected 8", g.Length())
	}
}

func TestDeathStopsTickingAndRecordsRun(t *testing.T) {
	rec := &memRecorder{}
	clock := time.Unix(1000, 0)
	src := &scriptedSource{values: []int64{11, 9, 13, 9, 0, 0}}
	g := snake.New(config.DefaultSnakeConfig(), snake.WithRand(rand.New(src)))
	sched := &Manual{}
	r := &countingRenderer{}
	e := New(g, sched, r, WithRecorder(rec), WithClock(func() time.Time { return clock }))

	e.Dispatch(core.ActionStart)
	clock = clock.Add(3 * time.Second)

	// Two meals grow the snake to five, long enough to bite itself
	for range 4 {
		sched.Fire()
	}
	if g.Length() != 5 {
		t.Fatalf("length = %d, expected 5", g.Length())
	}

	e.Dispatch(core.ActionUp)
	sched.Fire()
	e.Dispatch(core.ActionLeft)
	sched.Fire()
	e.Dispatch(core.ActionDown)
	sched.Fire()

	if r.last().Phase != snake.PhaseDead {
		t.Fatalf("phase = %s, expected dead", r.last().Phase)
	}
	if _, armed := sched.Armed(); armed {
		t.Error("death should cancel the schedule")
	}
	if sched.Fire() {
		t.Error("no tick should fire after death")
	}
	if len(rec.runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(rec.runs))
	}
	run := rec.runs[0]
	if run.Duration != 3*time.Second {
		t.Errorf("Duration = %v, expected 3s", run.Duration)
	}
	if run.Score != 2 || run.Length != 5 || run.Ticks != 7 {
		t.Errorf("run = %+v, expected score 2, length 5, 7 ticks", run)
	}

	// Start from dead begins a fresh run and ticks again
	e.Dispatch(core.ActionStart)
	if _, armed := sched.Armed(); !armed {
		t.Error("start after death should re-arm")
	}
	if g.Score() != 0 || g.Length() != 3 {
		t.Errorf("fresh run has score %d, length %d", g.Score(), g.Length())
	}
}

func TestStopCancels(t *testing.T) {
	e, sched, _ := newTestEngine(t)
	e.Dispatch(core.ActionStart)
	e.Stop()

	if _, armed := sched.Armed(); armed {
		t.Error("Stop() should cancel")
	}
	if e.Interval() != 0 {
		t.Error("Stop() should clear the interval")
	}
}

func TestManualCancelIsIdempotentAndScoped(t *testing.T) {
	m := &Manual{}
	calls := 0
	cancel1 := m.Every(time.Second, func() { calls++ })
	cancel2 := m.Every(2*time.Second, func() { calls += 10 })

	// Cancelling a replaced schedule must not disarm the current one
	cancel1()
	if interval, armed := m.Armed(); !armed || interval != 2*time.Second {
		t.Errorf("Armed() = %v, %v after stale cancel", interval, armed)
	}

	m.Fire()
	if calls != 10 {
		t.Errorf("calls = %d, expected 10", calls)
	}

	cancel2()
	cancel2()
	if m.Cancelled != 1 {
		t.Errorf("Cancelled = %d, expected 1", m.Cancelled)
	}
	if m.Fire() {
		t.Error("Fire() after cancel should do nothing")
	}
}
