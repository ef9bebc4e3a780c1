package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromatic-collapse/internal/game"
	"github.com/vovakirdan/chromatic-collapse/internal/platform/tui"
)

var (
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Chromatic Collapse.

Controls:
  Mouse drag       - Chain matching tiles (release to clear)
  Arrows/hjkl      - Move the keyboard cursor
  Space            - Start/finish a keyboard chain
  Enter            - Start run / next stage
  P                - Pause
  R                - Restart (after the run ends)
  B/Esc            - Back to title
  ?                - Toggle full key help
  Ctrl+S           - Save a screenshot to ~/.collapse/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Rows rise 1.5x slower, one row less prefilled
  normal - Stage table as configured
  hard   - Rows rise 30% faster

Examples:
  collapse play
  collapse play --difficulty easy
  collapse play --config ./my-stages.yaml
  collapse play --log-file /tmp/collapse.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()

	runErr := tui.Run(game.New(cfg), store, runtimeConfig(), tui.ModelOptions{
		Player:     playerName(),
		Difficulty: string(preset),
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a file logger, or nil when path is empty. The terminal
// belongs to the TUI, so logs never go to stderr during play.
func openLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "collapse",
		Level:           lvl,
	})
	return logger, func() { f.Close() }, nil
}

// playerName returns the local user name recorded with each run.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
