// Package selection tracks the in-progress drag chain.
//
// The tracker only enforces chain shape (single color, edge adjacency, no
// revisits, one-step backtracking). Whether a drag may start at all, and what
// happens to a finished chain, is decided by the game.
package selection

import (
	"slices"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

// MinChain is the shortest chain that clears.
const MinChain = 3

// noColor marks an idle tracker.
const noColor core.TileColor = -1

// Tracker is the idle/dragging state machine behind a drag gesture.
type Tracker struct {
	chain    []core.Cell
	color    core.TileColor
	dragging bool
}

// New returns an idle tracker.
func New() *Tracker {
	return &Tracker{color: noColor}
}

// Begin starts a chain at cell and locks its color.
func (t *Tracker) Begin(cell core.Cell, color core.TileColor) {
	t.chain = append(t.chain[:0], cell)
	t.color = color
	t.dragging = true
}

// Extend offers the next cell of the drag. It returns true when the chain
// changed (grew or backtracked).
func (t *Tracker) Extend(cell core.Cell, color core.TileColor) bool {
	if !t.dragging || len(t.chain) == 0 {
		return false
	}
	if color != t.color {
		return false
	}

	// Retracing onto the previous cell undoes the last step.
	if n := len(t.chain); n >= 2 && t.chain[n-2] == cell {
		t.chain = t.chain[:n-1]
		return true
	}

	if t.Contains(cell) {
		return false
	}
	if !t.chain[len(t.chain)-1].Adjacent(cell) {
		return false
	}

	t.chain = append(t.chain, cell)
	return true
}

// End finishes the drag and returns the chain with its color. The tracker
// returns to idle. Calling End while idle returns nil.
func (t *Tracker) End() ([]core.Cell, core.TileColor) {
	if !t.dragging {
		return nil, noColor
	}
	chain := slices.Clone(t.chain)
	color := t.color
	t.Cancel()
	return chain, color
}

// Cancel drops the chain without reporting it.
func (t *Tracker) Cancel() {
	t.chain = t.chain[:0]
	t.color = noColor
	t.dragging = false
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Chain returns a copy of the current chain.
func (t *Tracker) Chain() []core.Cell {
	return slices.Clone(t.chain)
}

// Len returns the current chain length.
func (t *Tracker) Len() int {
	return len(t.chain)
}

// Color returns the locked color, or -1 when idle.
func (t *Tracker) Color() core.TileColor {
	return t.color
}

// Contains reports whether cell is part of the chain.
func (t *Tracker) Contains(cell core.Cell) bool {
	return slices.Contains(t.chain, cell)
}

// Shift moves every chain cell by dr rows so the chain stays on its tiles
// when the board scrolls underneath it.
func (t *Tracker) Shift(dr int) {
	for i := range t.chain {
		t.chain[i] = t.chain[i].Offset(dr, 0)
	}
}
