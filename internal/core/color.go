package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the snake board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

// Semantic aliases so renderers talk about what they draw, not which ANSI code.
const (
	ColorSnakeHead = ColorBrightGreen
	ColorSnakeBody = ColorGreen
	ColorFood      = ColorRed
	ColorBorder    = ColorGray
	ColorHUD       = ColorCyan
	ColorOverlay   = ColorBrightWhite
	ColorDeadSnake = ColorYellow
)
