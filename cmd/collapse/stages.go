package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
	"github.com/vovakirdan/chromatic-collapse/internal/platform/tui"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Show the stage table",
	Long: `Shows the stages of the effective configuration after the
difficulty preset has been applied.

Examples:
  collapse stages
  collapse stages --difficulty hard
  collapse stages --config ./my-stages.yaml`,
	Args: cobra.NoArgs,
	Run:  runStages,
}

var (
	stageHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	stageDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runStages(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(stageHeaderStyle.Render(fmt.Sprintf("Stages (%s)", preset)))
	fmt.Println(stageDimStyle.Render(fmt.Sprintf("Board %dx%d, chains of %d or more clear",
		cfg.Board.Cols, cfg.Board.Rows, cfg.Rules.MinChain)))
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range cfg.Stages {
		if w := lipgloss.Width(s.Name); w > maxNameLen {
			maxNameLen = w
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-7s  %-14s  %-6s  %s\n", "#", maxNameLen, "Name", "Target", "Colors", "Rise", "Rows")
	fmt.Printf("  %-3s  %-*s  %-7s  %-14s  %-6s  %s\n", "-", maxNameLen, "----", "------", "------", "----", "----")

	for i, s := range cfg.Stages {
		fmt.Printf("  %-3d  %-*s  %-7d  %s  %-6s  %d\n",
			i+1, maxNameLen, s.Name, s.Target, paletteStrip(s.Colors), s.RiseInterval, s.PrefillRows)
	}

	fmt.Println()
	fmt.Printf("A chain of %d scores %d, a chain of %d scores %d.\n",
		cfg.Rules.MinChain, cfg.Rules.Points(cfg.Rules.MinChain),
		cfg.Rules.MinChain+2, cfg.Rules.Points(cfg.Rules.MinChain+2))
}

// paletteStrip renders one coloured block per tile colour, padded to a
// fixed visible width.
func paletteStrip(n int) string {
	strip := ""
	for i := range n {
		strip += tui.TileStyle(core.TileColor(i)).Render("██")
	}
	label := " " + strconv.Itoa(n)
	pad := 14 - lipgloss.Width(strip) - len(label)
	if pad < 0 {
		pad = 0
	}
	return strip + label + fmt.Sprintf("%*s", pad, "")
}
