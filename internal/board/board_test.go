package board

import (
	"testing"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

const (
	R = core.TileRed
	Y = core.TileYellow
	G = core.TileGreen
	B = core.TileBlue
	P = core.TilePurple
	E = Empty
)

func TestInitializePrefill(t *testing.T) {
	b := New(DefaultRows, DefaultCols, NewRand(7))
	b.Initialize(4, 3)

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			v := b.Get(core.At(r, c))
			if r < b.Rows()-3 {
				if v != Empty {
					t.Errorf("cell (%d,%d) = %d, expected empty above prefill", r, c, v)
				}
				continue
			}
			if v < 0 || v >= 4 {
				t.Errorf("cell (%d,%d) = %d, expected color in [0,4)", r, c, v)
			}
		}
	}

	if b.CountFilled() != 3*DefaultCols {
		t.Errorf("CountFilled() = %d, expected %d", b.CountFilled(), 3*DefaultCols)
	}
}

func TestInitializeClampsInputs(t *testing.T) {
	b := New(4, 3, &Cycle{Values: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}})
	b.Initialize(99, 10)

	if b.CountFilled() != 12 {
		t.Errorf("prefill beyond board height should fill every row, got %d cells", b.CountFilled())
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 3; c++ {
			if v := b.Get(core.At(r, c)); v < 0 || v >= core.PaletteSize {
				t.Errorf("cell (%d,%d) = %d, out of palette range", r, c, v)
			}
		}
	}
}

func TestDeterministicBoard(t *testing.T) {
	b1 := New(DefaultRows, DefaultCols, NewRand(12345))
	b1.Initialize(5, 3)
	b2 := New(DefaultRows, DefaultCols, NewRand(12345))
	b2.Initialize(5, 3)

	s1, s2 := b1.Snapshot(), b2.Snapshot()
	for r := range s1 {
		for c := range s1[r] {
			if s1[r][c] != s2[r][c] {
				t.Fatalf("same seed produced different boards at (%d,%d)", r, c)
			}
		}
	}
}

func TestRiseOneRow(t *testing.T) {
	b := FromRows(&Cycle{Values: []int{3}},
		[]core.TileColor{E, E, E},
		[]core.TileColor{E, R, E},
		[]core.TileColor{G, Y, B},
	)

	b.RiseOneRow(4)

	expected := [][]core.TileColor{
		{E, R, E},
		{G, Y, B},
		{B, B, B},
	}
	assertBoard(t, b, expected)
}

func TestRiseOneRowDropsTopRow(t *testing.T) {
	b := FromRows(&Cycle{Values: []int{0}},
		[]core.TileColor{P, P},
		[]core.TileColor{G, G},
	)

	b.RiseOneRow(2)

	assertBoard(t, b, [][]core.TileColor{
		{G, G},
		{R, R},
	})
}

func TestIsTopRowOccupied(t *testing.T) {
	tests := []struct {
		name     string
		top      []core.TileColor
		expected bool
	}{
		{"empty", []core.TileColor{E, E, E}, false},
		{"one tile", []core.TileColor{E, G, E}, true},
		{"full", []core.TileColor{R, G, B}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := FromRows(nil, tc.top, []core.TileColor{R, R, R})
			if got := b.IsTopRowOccupied(); got != tc.expected {
				t.Errorf("IsTopRowOccupied() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClearedBoardTopRowEmpty(t *testing.T) {
	b := New(DefaultRows, DefaultCols, NewRand(1))
	b.Initialize(5, DefaultRows)
	b.Reset()

	if b.IsTopRowOccupied() {
		t.Error("a fully cleared board should not report an occupied top row")
	}
	if b.HighestFilledRow() != DefaultRows {
		t.Errorf("HighestFilledRow() = %d, expected %d", b.HighestFilledRow(), DefaultRows)
	}
}

func TestCompactColumn(t *testing.T) {
	tests := []struct {
		name     string
		column   []core.TileColor
		expected []core.TileColor
	}{
		{"already compact", []core.TileColor{E, E, R, G}, []core.TileColor{E, E, R, G}},
		{"gap at bottom", []core.TileColor{R, G, E, E}, []core.TileColor{E, E, R, G}},
		{"interleaved gaps", []core.TileColor{R, E, G, E, B}, []core.TileColor{E, E, R, G, B}},
		{"all empty", []core.TileColor{E, E, E}, []core.TileColor{E, E, E}},
		{"full", []core.TileColor{P, Y, P}, []core.TileColor{P, Y, P}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := make([][]core.TileColor, len(tc.column))
			for r, v := range tc.column {
				rows[r] = []core.TileColor{v, B}
			}
			b := FromRows(nil, rows...)

			b.CompactColumn(0)

			got := b.Column(0)
			for r := range tc.expected {
				if got[r] != tc.expected[r] {
					t.Fatalf("CompactColumn(%v) = %v, expected %v", tc.column, got, tc.expected)
				}
			}
			// Neighbouring column untouched
			for r, v := range b.Column(1) {
				if v != B {
					t.Errorf("column 1 row %d changed to %d", r, v)
				}
			}
		})
	}
}

func TestCompactColumnPreservesMultisetAndOrder(t *testing.T) {
	rng := NewRand(99)
	for trial := 0; trial < 200; trial++ {
		col := make([]core.TileColor, DefaultRows)
		var want []core.TileColor
		for r := range col {
			if rng.IntN(2) == 0 {
				col[r] = Empty
				continue
			}
			col[r] = core.TileColor(rng.IntN(core.PaletteSize))
			want = append(want, col[r])
		}

		rows := make([][]core.TileColor, DefaultRows)
		for r := range rows {
			rows[r] = []core.TileColor{col[r]}
		}
		b := FromRows(nil, rows...)
		b.CompactColumn(0)
		got := b.Column(0)

		emptyCount := DefaultRows - len(want)
		for r := 0; r < emptyCount; r++ {
			if got[r] != Empty {
				t.Fatalf("trial %d: row %d should be empty after compaction, got %v", trial, r, got)
			}
		}
		for i, v := range want {
			if got[emptyCount+i] != v {
				t.Fatalf("trial %d: order not preserved: input %v, got %v", trial, col, got)
			}
		}
	}
}

func TestCollapseAllColumns(t *testing.T) {
	b := FromRows(nil,
		[]core.TileColor{R, E, G},
		[]core.TileColor{E, Y, E},
		[]core.TileColor{E, E, B},
	)

	b.Collapse()

	assertBoard(t, b, [][]core.TileColor{
		{E, E, E},
		{E, E, G},
		{R, Y, B},
	})
}

func TestGetSetOutOfBounds(t *testing.T) {
	b := New(2, 2, nil)
	b.Set(core.At(5, 5), R)
	if b.Get(core.At(5, 5)) != Empty {
		t.Error("off-grid Get should return Empty")
	}
	if b.Get(core.At(-1, 0)) != Empty {
		t.Error("negative row should return Empty")
	}
}

func TestCycleSource(t *testing.T) {
	c := &Cycle{Values: []int{1, 7}}
	got := []int{c.IntN(4), c.IntN(4), c.IntN(4)}
	expected := []int{1, 3, 1}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("IntN sequence = %v, expected %v", got, expected)
			break
		}
	}
}

func assertBoard(t *testing.T, b *Board, expected [][]core.TileColor) {
	t.Helper()
	got := b.Snapshot()
	for r := range expected {
		for c := range expected[r] {
			if got[r][c] != expected[r][c] {
				t.Fatalf("board mismatch at (%d,%d):\n got %v\nwant %v", r, c, got, expected)
			}
		}
	}
}
