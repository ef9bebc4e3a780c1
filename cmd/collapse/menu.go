package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromatic-collapse/internal/config"
	"github.com/vovakirdan/chromatic-collapse/internal/game"
	"github.com/vovakirdan/chromatic-collapse/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher menu",
	Long: `Start the interactive launcher.

Pick a difficulty with Left/Right on the Play entry, open the scoreboard,
and return to the launcher after each run.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change difficulty
  Enter/Space    - Select
  Tab            - Scoreboard
  Q              - Quit

Examples:
  collapse menu
  collapse menu --difficulty hard
  collapse menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	base, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, rc, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rc = menuResult.Config
		preset = menuResult.Difficulty

		switch menuResult.Choice {
		case tui.ChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		case tui.ChoicePlay:
			cfg := base
			config.ApplyPreset(&cfg, preset)
			runErr := tui.Run(game.New(cfg), store, rc, tui.ModelOptions{
				Player:     playerName(),
				Difficulty: string(preset),
			})
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}

		default:
			return
		}
	}
}
