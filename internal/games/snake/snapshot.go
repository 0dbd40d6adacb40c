package snake

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures everything the renderer needs for one frame.
// It owns its slices; later ticks never mutate a snapshot already handed out.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	GridSize int
	Snake    []core.Cell // Head first
	Dir      Direction
	NextDir  Direction
	Food     core.Cell
	HasFood  bool
	Score    int
	Best     int
	NewBest  bool          // Dead with a score that beat the previous best
	Speed    int           // Moves per second at the current score
	Interval time.Duration // Tick period at the current score
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.Phase(),
		GridSize: g.grid,
		Snake:    slices.Clone(g.snake),
		Dir:      g.dir,
		NextDir:  g.nextDir,
		Food:     g.food,
		HasFood:  g.hasFood,
		Score:    g.score,
		Best:     g.bestScore,
		NewBest:  g.newBest,
		Speed:    g.Speed(),
		Interval: g.TickInterval(),
	}
}

// Head returns the head cell, or the zero cell for an empty body.
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{}
	}
	return s.Snake[0]
}
