// Package snake implements the toroidal snake game as a pure state machine.
// It knows nothing about timers, terminals or storage: the engine drives
// Advance once per tick and the platform renders Snapshots.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ID is the identifier scores are stored under.
const ID = "snake"

// Phase is the lifecycle state of a game session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseDead
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// BestStore persists the best score. Both calls are best-effort: a store that
// cannot reach its backend returns 0 from LoadBest and drops SaveBest.
type BestStore interface {
	LoadBest() int
	SaveBest(score int)
}

// StepResult describes what a single Advance did.
type StepResult struct {
	Moved   bool // The snake took a step (false when not running or on death)
	Ate     bool // The new head landed on food
	Died    bool // The new head hit the body; the game is now Dead
	NewBest bool // Died with a score above the previous best
}

// Game implements the snake state machine.
type Game struct {
	grid        int
	startLength int
	speed       config.SpeedConfig
	rng         *rand.Rand
	best        BestStore
	tick        uint64

	// Snake state
	snake   []core.Cell // Head at index 0
	dir     Direction   // Direction committed on the last tick
	nextDir Direction   // Latest accepted request, committed on the next tick

	food    core.Cell
	hasFood bool

	score     int
	bestScore int
	newBest   bool // The last death beat the previous best

	// Lifecycle flags; dead implies !running && !paused
	running bool
	paused  bool
	dead    bool
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithSeed seeds the food RNG for deterministic play.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG used for food placement.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithBestStore injects best-score persistence.
func WithBestStore(store BestStore) Option {
	return func(g *Game) {
		if store != nil {
			g.best = store
		}
	}
}

// New creates a game in the Idle phase. The best score is read once here.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	g := &Game{
		grid:        cfg.Grid.Size,
		startLength: cfg.Grid.StartLength,
		speed:       cfg.Speed,
		best:        &MemoryBest{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.bestScore = max(0, g.best.LoadBest())
	g.Restart()
	return g
}

// Start begins ticking. From Dead it first restarts, so the new run never
// inherits the dead snake. While Running or Paused it does nothing.
func (g *Game) Start() {
	if g.running && !g.dead {
		return
	}
	if g.dead {
		g.Restart()
	}
	g.running = true
	g.paused = false
	g.dead = false
}

// TogglePause flips pause while a game is running. No-op otherwise.
func (g *Game) TogglePause() {
	if !g.running || g.dead {
		return
	}
	g.paused = !g.paused
}

// Restart returns to Idle with a fresh snake, direction, food and score.
// The best score survives.
func (g *Game) Restart() {
	g.tick = 0
	g.score = 0
	g.running = false
	g.paused = false
	g.dead = false
	g.newBest = false
	g.initSnake()
	g.spawnFood()
}

// initSnake lays the starting body out horizontally from the grid centre,
// head rightmost, moving right. A body longer than half the grid continues
// across the left edge.
func (g *Game) initSnake() {
	center := g.grid / 2
	body := make([]core.Cell, g.startLength)
	for i := range body {
		body[i] = core.Cell{X: ((center-i)%g.grid + g.grid) % g.grid, Y: center}
	}
	g.snake = body
	g.dir = DirRight
	g.nextDir = DirRight
}

// SetNextDirection queues a turn for the next tick. A request opposite to the
// committed direction is ignored and reported as false. Several accepted
// requests within one tick overwrite each other; only the last one applies.
func (g *Game) SetNextDirection(d Direction) bool {
	if IsOpposite(g.dir, d) {
		return false
	}
	g.nextDir = d
	return true
}

// Advance runs one tick. It only acts in the Running phase.
func (g *Game) Advance() StepResult {
	if g.Phase() != PhaseRunning || len(g.snake) == 0 {
		return StepResult{}
	}
	g.tick++

	// Commit the queued direction before any geometry reads it
	g.dir = g.nextDir
	candidate := g.snake[0].Add(Vector(g.dir)).Wrap(g.grid)

	// Self collision scans the pre-move body, tail included
	if g.isSnakeAt(candidate) {
		return g.die()
	}

	next := make([]core.Cell, 0, len(g.snake)+1)
	next = append(next, candidate)
	next = append(next, g.snake...)

	if g.hasFood && candidate == g.food {
		g.snake = next
		g.score++
		g.spawnFood()
		return StepResult{Moved: true, Ate: true}
	}

	g.snake = next[:len(next)-1]
	return StepResult{Moved: true}
}

// die moves to Dead. The body is left exactly as it was before the fatal step.
func (g *Game) die() StepResult {
	g.running = false
	g.paused = false
	g.dead = true

	res := StepResult{Died: true}
	if g.score > g.bestScore {
		g.bestScore = g.score
		g.best.SaveBest(g.bestScore)
		g.newBest = true
		res.NewBest = true
	}
	return res
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(p core.Cell) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Phase derives the lifecycle phase from the flags.
func (g *Game) Phase() Phase {
	switch {
	case g.dead:
		return PhaseDead
	case g.running && g.paused:
		return PhasePaused
	case g.running:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// TickInterval returns the tick period for the current score.
func (g *Game) TickInterval() time.Duration {
	return g.speed.Interval(g.score)
}

// Speed returns moves per second for the current score.
func (g *Game) Speed() int {
	return g.speed.Speed(g.score)
}

// Score returns the score of the current run.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best score seen by this game, including the loaded value.
func (g *Game) Best() int {
	return g.bestScore
}

// Length returns the number of cells in the snake.
func (g *Game) Length() int {
	return len(g.snake)
}

// Ticks returns how many moves the current run has made.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// GridSize returns the side length of the board.
func (g *Game) GridSize() int {
	return g.grid
}

// Direction returns the committed direction.
func (g *Game) Direction() Direction {
	return g.dir
}

// NextDirection returns the queued direction.
func (g *Game) NextDirection() Direction {
	return g.nextDir
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	head := core.Cell{}
	if len(g.snake) > 0 {
		head = g.snake[0]
	}
	return fmt.Sprintf("phase=%s tick=%d score=%d best=%d len=%d head=%v dir=%s next=%s food=%v",
		g.Phase(), g.tick, g.score, g.bestScore, len(g.snake), head, g.dir, g.nextDir, g.food)
}
