// Package config provides YAML-based configuration loading for the snake game:
// grid geometry, the score-driven speed curve and input bindings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
	Input InputConfig `yaml:"input"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size        int `yaml:"size"`         // Cells per side of the square toroidal grid
	StartLength int `yaml:"start_length"` // Snake length after a restart
}

// SpeedConfig defines how tick rate scales with score.
type SpeedConfig struct {
	Base          int `yaml:"base"`            // Moves per second at score 0
	Step          int `yaml:"step"`            // Moves per second added per band
	Every         int `yaml:"every"`           // Score points per band
	MinIntervalMS int `yaml:"min_interval_ms"` // Fastest allowed tick
}

// InputConfig defines key bindings and swipe sensitivity.
type InputConfig struct {
	SwipeThreshold int        `yaml:"swipe_threshold"` // Minimum dominant-axis drag, in cells
	Keys           KeyBinding `yaml:"keys"`
}

// KeyBinding lists the key names (as Bubble Tea reports them) for each command.
// An empty list keeps the default binding.
type KeyBinding struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Start   []string `yaml:"start"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// MinInterval returns the tick floor as a duration.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Size < 4:
		return fmt.Errorf("%w: grid.size must be at least 4, got %d", ErrInvalidConfig, c.Grid.Size)
	case c.Grid.StartLength < 1 || c.Grid.StartLength > c.Grid.Size:
		return fmt.Errorf("%w: grid.start_length must be in 1..%d, got %d",
			ErrInvalidConfig, c.Grid.Size, c.Grid.StartLength)
	case c.Speed.Base < 1:
		return fmt.Errorf("%w: speed.base must be at least 1, got %d", ErrInvalidConfig, c.Speed.Base)
	case c.Speed.Step < 0:
		return fmt.Errorf("%w: speed.step must not be negative, got %d", ErrInvalidConfig, c.Speed.Step)
	case c.Speed.Every < 1:
		return fmt.Errorf("%w: speed.every must be at least 1, got %d", ErrInvalidConfig, c.Speed.Every)
	case c.Speed.MinIntervalMS < 0:
		return fmt.Errorf("%w: speed.min_interval_ms must not be negative, got %d",
			ErrInvalidConfig, c.Speed.MinIntervalMS)
	case c.Input.SwipeThreshold < 0:
		return fmt.Errorf("%w: input.swipe_threshold must not be negative, got %d",
			ErrInvalidConfig, c.Input.SwipeThreshold)
	}
	return nil
}
