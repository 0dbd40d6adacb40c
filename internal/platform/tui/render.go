package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// screenRenderer implements engine.Renderer. It draws each snapshot into a
// screen buffer once and keeps the styled frame for View.
type screenRenderer struct {
	screen *core.Screen
	last   snake.Snapshot
	drawn  bool
	frame  string
}

func newScreenRenderer(w, h int) *screenRenderer {
	return &screenRenderer{screen: core.NewScreen(w, h)}
}

// Draw renders a snapshot and caches the result.
func (r *screenRenderer) Draw(s snake.Snapshot) {
	r.last = s
	r.drawn = true
	snake.Draw(r.screen, s)
	r.frame = RenderScreen(r.screen)
}

// Resize changes the buffer size and redraws the last snapshot.
func (r *screenRenderer) Resize(w, h int) {
	r.screen.Resize(w, h)
	if r.drawn {
		r.Draw(r.last)
	}
}

// Frame returns the last rendered frame.
func (r *screenRenderer) Frame() string {
	return r.frame
}

// Plain returns the last frame without styling.
func (r *screenRenderer) Plain() string {
	return r.screen.String()
}
