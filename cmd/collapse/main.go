// collapse is a terminal tile-matching puzzle: drag across matching tiles
// to clear them before the rising rows reach the top.
//
// Usage:
//
//	collapse play            - Play a run
//	collapse menu            - Launcher with difficulty picker and scoreboard
//	collapse stages          - Show the stage table of the effective config
//	collapse scores          - Show top runs and the high score
//	collapse board           - Browse runs in an interactive table
//	collapse serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--db <path>            - Set database path (default: ~/.collapse/scores.db)
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chromatic-collapse/internal/config"
	"github.com/vovakirdan/chromatic-collapse/internal/core"
	"github.com/vovakirdan/chromatic-collapse/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "collapse",
	Short: "Chromatic Collapse - a tile-matching puzzle for your terminal",
	Long: `Chromatic Collapse is a terminal puzzle game. Drag across three or
more adjacent tiles of one color to clear them. New rows rise from the
bottom on a timer; if a row rises while the top row is occupied, the run
is over. Reach each stage's target score to advance.

Available commands:
  play     - Play a run directly
  menu     - Launcher with difficulty picker and scoreboard
  stages   - Show the stage table
  scores   - View top runs
  board    - Browse runs interactively
  serve    - Start SSH server for remote play

Examples:
  collapse play
  collapse play --difficulty hard
  collapse stages --config ./my-stages.yaml
  collapse serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.collapse/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the config from the search path and applies the
// difficulty preset.
func loadGameConfig() (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, "", err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// runtimeConfig returns a runtime config sized to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil with a warning so the
// game still works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
