package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/input"
)

const helpHeight = 1 // Rows reserved under the board for the help bar

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configure a game model.
type Options struct {
	Config   config.SnakeConfig
	Runtime  core.RuntimeConfig
	Best     snake.BestStore    // nil keeps the best score in memory
	Recorder engine.RunRecorder // nil discards finished runs
	Logger   *log.Logger        // nil discards logs

	// ScreenshotDir receives ctrl+s dumps. Empty means ~/.arcade/screenshots.
	ScreenshotDir string
	NoScreenshots bool
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	engine   *engine.Engine
	sched    *TeaScheduler
	router   *input.Router
	renderer *screenRenderer
	help     help.Model
	logger   *log.Logger
	shotDir  string
	noShots  bool
	quitting bool
}

// NewModel creates a game, its engine and the tea scheduler that drives it.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameOpts := []snake.Option{}
	if opts.Runtime.Seed != 0 {
		gameOpts = append(gameOpts, snake.WithSeed(opts.Runtime.Seed))
	}
	if opts.Best != nil {
		gameOpts = append(gameOpts, snake.WithBestStore(opts.Best))
	}
	game := snake.New(opts.Config, gameOpts...)

	sched := NewTeaScheduler()
	renderer := newScreenRenderer(opts.Runtime.ScreenW, opts.Runtime.ScreenH-helpHeight)

	engineOpts := []engine.Option{engine.WithLogger(logger)}
	if opts.Recorder != nil {
		engineOpts = append(engineOpts, engine.WithRecorder(opts.Recorder))
	}
	eng := engine.New(game, sched, renderer, engineOpts...)
	eng.Redraw()

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		engine:   eng,
		sched:    sched,
		router:   input.NewRouter(opts.Config.Input),
		renderer: renderer,
		help:     h,
		logger:   logger,
		shotDir:  opts.ScreenshotDir,
		noShots:  opts.NoScreenshots,
	}
}

// Engine exposes the session engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Init does nothing; the game waits in Idle for a start command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, m.sched.Fire(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" && !m.noShots {
		m.saveScreenshot()
		return m, nil
	}

	action := m.router.Key(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.engine.Stop()
		return m, tea.Quit
	}

	m.engine.Dispatch(action)
	return m, m.sched.Flush()
}

// handleMouse turns a press-drag-release into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.router.TouchStart(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if action := m.router.TouchEnd(msg.X, msg.Y); action.IsDirection() {
			m.engine.Dispatch(action)
		}
	}
	return m, m.sched.Flush()
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot", "err", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", snake.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Plain()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the cached frame and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Frame() + "\n" + helpStyle.Render(m.help.View(m.router.Keys()))
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drag to swipe
	)

	_, err := p.Run()
	model.engine.Stop()
	return err
}
