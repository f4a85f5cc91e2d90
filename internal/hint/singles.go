package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-csp/internal/domain"
)

// NakedSingles runs one pass over every group: each assigned cell's digit is
// removed from the candidate sets of the other cells in the group. Mutates b
// in place. A pass may empty a candidate set; contradiction detection is the
// caller's job (the propagation engine reports it). This is a cheap
// pre-filter, not a fixed-point loop.
func NakedSingles(b *domain.Board, groups []domain.Group) {
	for _, g := range groups {
		for _, cell := range g {
			d := b.At(cell)
			if !d.Single() {
				continue
			}
			v := d.Value()
			for _, other := range g {
				if other != cell {
					b.SetCandidates(other, b.At(other).Remove(v))
				}
			}
		}
	}
}

// HiddenSingles runs one pass over every group: if exactly one cell in a
// group still lists a digit, that cell is collapsed to it. Mutates b in
// place. Single pass, same caveats as NakedSingles.
func HiddenSingles(b *domain.Board, groups []domain.Group) {
	for _, g := range groups {
		for v := uint8(1); v <= 9; v++ {
			count := 0
			var last domain.Cell
			for _, cell := range g {
				if b.At(cell).Has(v) {
					count++
					last = cell
				}
			}
			if count == 1 {
				b.Assign(last, v)
			}
		}
	}
}

// Singles implements a minimal Hinter that suggests naked and hidden singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single on the board, falling back to the
// first hidden single. Read-only; works on a scratch copy.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	scratch := *b
	groups := domain.Groups()
	NakedSingles(&scratch, groups)
	for i := 0; i < 81; i++ {
		cell := domain.Cell(i)
		if b.At(cell).Single() || !scratch.At(cell).Single() {
			continue
		}
		v := scratch.At(cell).Value()
		return domain.Hint{
			Message: fmt.Sprintf("Single: only %d fits in %s", v, cell),
			Cells:   []domain.Cell{cell},
			Digit:   v,
		}, true, nil
	}
	for _, g := range groups {
		for v := uint8(1); v <= 9; v++ {
			count := 0
			var last domain.Cell
			for _, cell := range g {
				if scratch.At(cell).Has(v) {
					count++
					last = cell
				}
			}
			if count == 1 && !b.At(last).Single() {
				return domain.Hint{
					Message: fmt.Sprintf("Hidden single: %d can only go in %s", v, last),
					Cells:   []domain.Cell{last},
					Digit:   v,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
