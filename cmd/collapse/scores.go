package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromatic-collapse/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show top runs and the high score",
	Long: `Display the best runs recorded in the scores database.

Examples:
  collapse scores
  collapse scores --limit 25
  collapse scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs and reset the high score")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		if err := store.ResetHighScore(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Chromatic Collapse")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'collapse play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-10s  %-12s  %s\n", "Rank", "Score", "Stage", "Result", "Difficulty", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-10s  %-12s  %s\n", "----", "-----", "-----", "------", "----------", "------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-9s  %-10s  %-12s  %s\n",
			i+1, r.Score, r.Stage, r.Outcome, r.Difficulty, truncate(r.Player, 12), dateStr)
	}

	fmt.Println()
	if best, err := store.LoadHighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Clears: %d  Average: %.0f  Furthest stage: %d\n",
			stats.Runs, stats.Clears, stats.AvgScore, stats.BestStage)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
