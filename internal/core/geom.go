// Package core provides fundamental types and utilities for the snake platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell is an integer grid coordinate. Cells are plain values with no identity.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Wrap folds both axes back onto a size×size toroidal grid.
func (c Cell) Wrap(size int) Cell {
	return Cell{X: Wrap(c.X, size), Y: Wrap(c.Y, size)}
}

// InBounds reports whether the cell lies on a size×size grid.
func (c Cell) InBounds(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Wrap maps a single axis coordinate onto [0, size).
// A step past the low edge lands on the last index and a step past the high
// edge lands on zero. Both boundaries are checked explicitly: coordinates only
// ever move by one cell per tick, so no general modulo is needed.
func Wrap(n, size int) int {
	if n < 0 {
		return size - 1
	}
	if n >= size {
		return 0
	}
	return n
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
