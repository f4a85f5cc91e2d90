package domain

import "strings"

// Board maps every cell to its current candidate set. It is a value type:
// assigning or passing a Board copies all 81 sets, which is what gives each
// search branch an independent snapshot. A consistent board never holds an
// empty candidate set; a board whose sets are all singletons is solved.
type Board struct {
	cells [81]Candidates
}

// NewBoard returns a board with every cell fully open (all digits possible).
func NewBoard() Board {
	var b Board
	for i := range b.cells {
		b.cells[i] = AllDigits
	}
	return b
}

// FromValues builds a board from a value grid, 0 meaning unassigned.
func FromValues(g [9][9]uint8) Board {
	b := NewBoard()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				b.cells[CellAt(r, c)] = Only(v)
			}
		}
	}
	return b
}

// At returns the candidate set of cell c.
func (b *Board) At(c Cell) Candidates { return b.cells[c] }

// SetCandidates replaces the candidate set of cell c.
func (b *Board) SetCandidates(c Cell, d Candidates) { b.cells[c] = d }

// Assign collapses cell c to the single digit v.
func (b *Board) Assign(c Cell, v uint8) { b.cells[c] = Only(v) }

// Solved reports whether every cell is assigned.
func (b *Board) Solved() bool {
	for _, d := range b.cells {
		if !d.Single() {
			return false
		}
	}
	return true
}

// Values returns the board as a value grid, 0 for unassigned cells.
func (b *Board) Values() [9][9]uint8 {
	var g [9][9]uint8
	for i, d := range b.cells {
		if d.Single() {
			g[i/9][i%9] = d.Value()
		}
	}
	return g
}

// String renders the board as nine rows of digits, "." for any cell that is
// not yet assigned.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			d := b.cells[CellAt(r, c)]
			if d.Single() {
				sb.WriteByte('0' + d.Value())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
