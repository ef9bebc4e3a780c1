package game

import "github.com/vovakirdan/chromatic-collapse/internal/core"

const (
	cellWidth   = 3  // Two glyphs plus a gap
	hudLines    = 3  // Title, stage line, target bar
	footerLines = 2  // Rise bar, best score
	minHUDWidth = 36 // Widest HUD line
)

// gridLayout places the board and HUD on screen and maps screen positions
// back to board cells.
type gridLayout struct {
	rows, cols int
	box        core.Rect // Board frame
	hudX, hudW int
	originX    int // Screen column of cell (0, 0)
	originY    int // Screen row of cell (0, 0)
	minW, minH int
}

func newGridLayout(w, h, rows, cols int) gridLayout {
	boxW := cols*cellWidth + 3
	boxH := rows + 2
	hudW := max(boxW, minHUDWidth)

	l := gridLayout{
		rows: rows,
		cols: cols,
		hudW: hudW,
		minW: hudW,
		minH: hudLines + boxH + footerLines,
	}

	top := max((h-l.minH)/2, 0)
	l.hudX = max((w-hudW)/2, 0)
	l.box = core.NewRect(max((w-boxW)/2, 0), top+hudLines, boxW, boxH)
	l.originX = l.box.X + 2
	l.originY = l.box.Y + 1
	return l
}

// cellPos returns the screen position of a cell's left glyph.
func (l gridLayout) cellPos(c core.Cell) (x, y int) {
	return l.originX + c.Col*cellWidth, l.originY + c.Row
}

// cellAt maps a screen position to a board cell. The gap to the right of a
// tile counts as part of that tile.
func (l gridLayout) cellAt(x, y int) (core.Cell, bool) {
	dx := x - l.originX
	dy := y - l.originY
	if dx < 0 || dy < 0 {
		return core.Cell{}, false
	}
	c := core.At(dy, dx/cellWidth)
	if c.Row >= l.rows || c.Col >= l.cols {
		return core.Cell{}, false
	}
	return c, true
}

func (l gridLayout) top() int {
	return l.box.Y - hudLines
}
