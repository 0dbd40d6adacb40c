// snake is a terminal snake game on a wrap-around board.
//
// Usage:
//
//	snake                    - Play (same as 'snake play')
//	snake play               - Play in this terminal
//	snake scores             - Show the best runs
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible food placement
//	--db <path>      - Set database path (default: ~/.arcade/snake.db)
//	--config <path>  - Load a custom YAML config
//	--log <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic, in your terminal",
	Long: `Snake on a wrap-around board. Eat food to grow; every few points the
snake speeds up. Running into yourself ends the run.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the best runs
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/snake.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
