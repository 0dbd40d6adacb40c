package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
// It mirrors defaults/snake.yaml and is the fallback if the embedded file is unusable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:        18,
			StartLength: 3,
		},
		Speed: SpeedConfig{
			Base:          9,
			Step:          2,
			Every:         5,
			MinIntervalMS: 55,
		},
		Input: InputConfig{
			SwipeThreshold: 14,
			Keys: KeyBinding{
				Up:      []string{"up", "w", "k"},
				Down:    []string{"down", "s", "j"},
				Left:    []string{"left", "a", "h"},
				Right:   []string{"right", "d", "l"},
				Pause:   []string{" ", "p"},
				Start:   []string{"enter"},
				Restart: []string{"r"},
				Quit:    []string{"q", "ctrl+c"},
			},
		},
	}
}
