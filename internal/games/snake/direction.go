package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step for a direction. Screen y grows downwards.
func Vector(d Direction) core.Cell {
	switch d {
	case DirUp:
		return core.Cell{X: 0, Y: -1}
	case DirDown:
		return core.Cell{X: 0, Y: 1}
	case DirLeft:
		return core.Cell{X: -1, Y: 0}
	default:
		return core.Cell{X: 1, Y: 0}
	}
}

// IsOpposite checks if two directions point in opposite ways along the same axis.
func IsOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// DirectionFor converts a turn action into a direction.
// The boolean is false for actions that are not turns.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
