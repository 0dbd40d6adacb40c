package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // HUD line plus separator
	cellWidth = 2 // Terminal cells are roughly twice as tall as wide
)

// BoardSize returns the screen area, in characters, needed to draw a grid of
// the given size including HUD and border.
func BoardSize(grid int) (w, h int) {
	return grid*cellWidth + 2, grid + 2 + hudHeight
}

// Draw renders a snapshot into the screen buffer.
func Draw(dst *core.Screen, s Snapshot) {
	dst.Clear()
	renderHUD(dst, s)

	needW, needH := BoardSize(s.GridSize)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	board := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, s.GridSize+2)
	dst.DrawBox(board, core.ColorBorder)

	plot := func(c core.Cell, r rune, color core.Color) {
		x := board.X + 1 + c.X*cellWidth
		y := board.Y + 1 + c.Y
		for i := range cellWidth {
			dst.SetColored(x+i, y, r, color)
		}
	}

	if s.HasFood {
		plot(s.Food, '●', core.ColorFood)
	}

	// Tail first so the head wins if anything overlaps
	for i := len(s.Snake) - 1; i >= 0; i-- {
		switch {
		case s.Phase == PhaseDead:
			plot(s.Snake[i], '▒', core.ColorDeadSnake)
		case i == 0:
			plot(s.Snake[i], '█', core.ColorSnakeHead)
		default:
			plot(s.Snake[i], '▓', core.ColorSnakeBody)
		}
	}

	switch s.Phase {
	case PhaseIdle:
		renderOverlay(dst, "SNAKE", "Press Enter to start")
	case PhasePaused:
		renderOverlay(dst, "Paused", "Press Space to continue")
	case PhaseDead:
		title := fmt.Sprintf("Game Over - Score %d", s.Score)
		if s.NewBest {
			title = fmt.Sprintf("New Best - Score %d", s.Score)
		}
		renderOverlay(dst, title, "Enter: play again  R: reset")
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d  Speed: %d", s.Score, s.Best, s.Speed)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorBorder)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorOverlay)
}
