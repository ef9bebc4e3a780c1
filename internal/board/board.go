// Package board implements the tile grid: population, rising rows and
// per-column gravity compaction.
package board

import (
	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

// Empty marks a cell with no tile.
const Empty core.TileColor = -1

// Default grid dimensions.
const (
	DefaultRows = 10
	DefaultCols = 8
)

// Source is the randomness the board needs. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Board is a fixed-size grid of palette indices. Row 0 is the top (loss
// boundary) and row Rows()-1 is where new rows enter.
type Board struct {
	rows  int
	cols  int
	cells [][]core.TileColor
	rng   Source
}

// New creates an empty board.
func New(rows, cols int, rng Source) *Board {
	b := &Board{rows: rows, cols: cols, rng: rng}
	b.cells = make([][]core.TileColor, rows)
	for r := range b.cells {
		b.cells[r] = make([]core.TileColor, cols)
	}
	b.Reset()
	return b
}

// FromRows builds a board from literal rows, mainly for tests.
// Every row must have the same length.
func FromRows(rng Source, rows ...[]core.TileColor) *Board {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	b := New(len(rows), cols, rng)
	for r, row := range rows {
		copy(b.cells[r], row)
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether the cell lies on the grid.
func (b *Board) InBounds(c core.Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Get returns the tile at c, or Empty when c is off the grid.
func (b *Board) Get(c core.Cell) core.TileColor {
	if !b.InBounds(c) {
		return Empty
	}
	return b.cells[c.Row][c.Col]
}

// Set places a tile. Off-grid cells are ignored.
func (b *Board) Set(c core.Cell, v core.TileColor) {
	if !b.InBounds(c) {
		return
	}
	b.cells[c.Row][c.Col] = v
}

// Reset empties every cell.
func (b *Board) Reset() {
	for r := range b.cells {
		fillRow(b.cells[r], Empty)
	}
}

// Initialize empties the board and fills the bottom prefillRows rows with
// uniformly random colors in [0, colorCount).
func (b *Board) Initialize(colorCount, prefillRows int) {
	colorCount = clampColors(colorCount)
	prefillRows = core.Clamp(prefillRows, 0, b.rows)

	for r := range b.cells {
		if r >= b.rows-prefillRows {
			b.randomRow(b.cells[r], colorCount)
		} else {
			fillRow(b.cells[r], Empty)
		}
	}
}

// RiseOneRow shifts every row up by one, dropping the top row, and fills
// the bottom row with fresh random colors. The shift is unconditional;
// callers check IsTopRowOccupied first.
func (b *Board) RiseOneRow(colorCount int) {
	if b.rows == 0 {
		return
	}
	top := b.cells[0]
	copy(b.cells, b.cells[1:])
	// Reuse the discarded top row as the new bottom row.
	b.cells[b.rows-1] = top
	b.randomRow(top, clampColors(colorCount))
}

// IsTopRowOccupied reports whether any cell in row 0 holds a tile.
func (b *Board) IsTopRowOccupied() bool {
	if b.rows == 0 {
		return false
	}
	for _, v := range b.cells[0] {
		if v != Empty {
			return true
		}
	}
	return false
}

// CompactColumn moves the column's tiles to the bottom, preserving their
// relative order, and empties the vacated cells above them.
func (b *Board) CompactColumn(col int) {
	if col < 0 || col >= b.cols {
		return
	}
	write := b.rows - 1
	for r := b.rows - 1; r >= 0; r-- {
		v := b.cells[r][col]
		if v == Empty {
			continue
		}
		b.cells[write][col] = v
		write--
	}
	for r := write; r >= 0; r-- {
		b.cells[r][col] = Empty
	}
}

// Collapse compacts every column independently.
func (b *Board) Collapse() {
	for c := 0; c < b.cols; c++ {
		b.CompactColumn(c)
	}
}

// Clear empties the given cells.
func (b *Board) Clear(cells []core.Cell) {
	for _, c := range cells {
		b.Set(c, Empty)
	}
}

// CountFilled returns the number of occupied cells.
func (b *Board) CountFilled() int {
	n := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// HighestFilledRow returns the smallest row index holding a tile, or Rows()
// when the board is empty.
func (b *Board) HighestFilledRow() int {
	for r, row := range b.cells {
		for _, v := range row {
			if v != Empty {
				return r
			}
		}
	}
	return b.rows
}

// Snapshot returns a deep copy of the grid.
func (b *Board) Snapshot() [][]core.TileColor {
	out := make([][]core.TileColor, b.rows)
	for r, row := range b.cells {
		out[r] = append([]core.TileColor(nil), row...)
	}
	return out
}

// Column returns a copy of one column, top to bottom.
func (b *Board) Column(col int) []core.TileColor {
	out := make([]core.TileColor, b.rows)
	for r := range b.cells {
		out[r] = b.Get(core.At(r, col))
	}
	return out
}

func (b *Board) randomRow(row []core.TileColor, colorCount int) {
	for c := range row {
		row[c] = core.TileColor(b.rng.IntN(colorCount))
	}
}

func fillRow(row []core.TileColor, v core.TileColor) {
	for c := range row {
		row[c] = v
	}
}

// clampColors keeps generated indices inside the palette.
func clampColors(n int) int {
	return core.Clamp(n, 1, core.PaletteSize)
}
