// Package tui provides the Bubble Tea integration for Chromatic Collapse.
// It handles the terminal UI loop, mouse and key mapping, particles and the
// launcher, scoreboard and SSH front ends.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time a frame was scheduled for. The game
// is stepped with this time, so every deadline compares against it.
type TickMsg time.Time

// tickInterval returns the frame period for a tick rate, falling back to
// 60 frames per second for non-positive rates.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
