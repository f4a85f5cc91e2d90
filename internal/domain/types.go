package domain

import (
	"fmt"
	"math/bits"
	"strings"
)

// Candidates is the set of digits still possible for a cell, one bit per
// digit (bit v set means digit v is possible). A singleton set denotes an
// assigned cell; the empty set denotes a contradiction.
type Candidates uint16

// AllDigits is the full candidate set 1-9.
const AllDigits Candidates = 0x3fe

// Only returns the singleton candidate set {v}.
func Only(v uint8) Candidates { return 1 << v }

// Has reports whether digit v is still possible.
func (c Candidates) Has(v uint8) bool { return c&(1<<v) != 0 }

// Remove returns the set without digit v.
func (c Candidates) Remove(v uint8) Candidates { return c &^ (1 << v) }

// Add returns the set with digit v included.
func (c Candidates) Add(v uint8) Candidates { return c | (1 << v) }

// Count returns the number of digits in the set.
func (c Candidates) Count() int { return bits.OnesCount16(uint16(c)) }

// Single reports whether the set is a singleton, i.e. the cell is assigned.
func (c Candidates) Single() bool { return c.Count() == 1 }

// Value returns the lowest digit in the set, or 0 if the set is empty. For a
// singleton set this is the assigned digit.
func (c Candidates) Value() uint8 {
	if c == 0 {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(c)))
}

// Digits returns the digits in the set in ascending order.
func (c Candidates) Digits() []uint8 {
	out := make([]uint8, 0, c.Count())
	for v := uint8(1); v <= 9; v++ {
		if c.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c Candidates) String() string {
	var sb strings.Builder
	for v := uint8(1); v <= 9; v++ {
		if c.Has(v) {
			sb.WriteByte('0' + v)
		}
	}
	return sb.String()
}

// Cell identifies one of the 81 grid cells by row-major index. The identity
// is immutable; only the candidate set attached to a cell changes.
type Cell uint8

// CellAt returns the cell at row r, column c (both 0-based).
func CellAt(r, c int) Cell { return Cell(r*9 + c) }

func (c Cell) Row() int { return int(c) / 9 }
func (c Cell) Col() int { return int(c) % 9 }

// Box returns the index of the 3x3 box containing the cell, 0-8 in row-major
// box order.
func (c Cell) Box() int { return (c.Row()/3)*3 + c.Col()/3 }

// String names the cell in the conventional A1-I9 form (rows A-I top to
// bottom, columns 1-9 left to right).
func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'A'+c.Row(), c.Col()+1)
}

// Hint describes a deduction suggestion for display.
type Hint struct {
	Message string
	Cells   []Cell
	Digit   uint8
}
