package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs. In a terminal this opens a scrollable
table; when piped, or with --plain, it prints the top 10.

Examples:
  snake scores
  snake scores --plain
  snake scores | head`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing instead of the table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, snake.ID, width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(snake.ID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	rows := tui.ScoreRows(scores)
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Length", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "----", "----")
	for _, r := range rows {
		fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", r[0], r[1], r[2], r[3], r[4])
	}

	fmt.Println()
	if best, err := store.BestScore(snake.ID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
