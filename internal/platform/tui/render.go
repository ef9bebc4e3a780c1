package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

// ansiCodes holds the 256-colour code for every screen colour.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

// colorStyles maps core.Color to lipgloss styles. Highlighted tile colours
// are drawn bold so a chain stands out on terminals with a 16-colour palette.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	for t := core.TileColor(0); t < core.PaletteSize; t++ {
		styles[t.Highlight()] = styles[t.Highlight()].Bold(true)
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// TileStyle returns the style used to draw tiles of the given colour.
func TileStyle(c core.TileColor) lipgloss.Style {
	return styleFor(c.Screen())
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is emitted as runs of one colour; trailing blank cells are
// written unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		end := lastVisible(s, y)

		for x := 0; x < end; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < end && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
		sb.WriteString(strings.Repeat(" ", s.Width()-end))
	}
	return sb.String()
}

// lastVisible returns one past the last non-space cell of row y.
func lastVisible(s *core.Screen, y int) int {
	for x := s.Width(); x > 0; x-- {
		if s.GetCell(x-1, y).Rune != ' ' {
			return x
		}
	}
	return 0
}
