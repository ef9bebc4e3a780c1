package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromatic-collapse/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse runs in an interactive table",
	Long: `Open the scoreboard: top runs and recent runs in a scrollable table.

Controls:
  Up/Down/j/k  - Scroll
  Tab          - Switch between top and recent runs
  Esc/B        - Close
  Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) {
	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	rc := runtimeConfig()
	if _, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
