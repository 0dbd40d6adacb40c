package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// spawnFood places food on a uniformly random cell not covered by the snake.
// It samples the whole grid and rejects hits on the body. A crowded board can
// make that slow, so after a bounded number of misses it picks among the free
// cells directly. A full board leaves the game without food.
func (g *Game) spawnFood() {
	cells := g.grid * g.grid
	if len(g.snake) >= cells {
		g.hasFood = false
		return
	}

	for range cells * 4 {
		p := core.Cell{X: g.rng.Intn(g.grid), Y: g.rng.Intn(g.grid)}
		if !g.isSnakeAt(p) {
			g.food = p
			g.hasFood = true
			return
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		g.hasFood = false
		return
	}
	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}

// freeCells collects every cell the snake does not occupy.
func (g *Game) freeCells() []core.Cell {
	occupied := make(map[core.Cell]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	free := make([]core.Cell, 0, g.grid*g.grid-len(occupied))
	for y := 0; y < g.grid; y++ {
		for x := 0; x < g.grid; x++ {
			p := core.Cell{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

// Food returns the food cell and whether there is any food on the board.
func (g *Game) Food() (core.Cell, bool) {
	return g.food, g.hasFood
}
