package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Turn
  Mouse drag       - Swipe to turn
  Enter            - Start (or play again after game over)
  Space/P          - Pause
  R                - Reset
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log ./snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Logger:  logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable, best score kept in memory", "err", err)
	} else {
		defer store.Close()
		keeper := store.Best(snake.ID, logger)
		opts.Best = keeper
		opts.Recorder = keeper
	}

	logger.Debug("starting", "grid", cfg.Grid.Size, "screen", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH))
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogger returns a file logger when path is set. The alt screen owns the
// terminal, so without a file nothing is logged.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "snake",
	})
	return logger, func() { f.Close() }, nil
}
