package validator

import (
	"context"

	"svw.info/sudoku-csp/internal/domain"
)

// FastValidator scans every constraint group with a digit bitmask and
// reports cells whose assigned digit repeats an earlier one in the group.
// Unassigned cells are ignored.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.Cell, error) {
	conf := make([]domain.Cell, 0, 8)
	seen := make(map[domain.Cell]bool)
	for _, g := range domain.Groups() {
		m := domain.Candidates(0)
		for _, cell := range g {
			d := b.At(cell)
			if !d.Single() {
				continue
			}
			val := d.Value()
			if m.Has(val) {
				if !seen[cell] {
					seen[cell] = true
					conf = append(conf, cell)
				}
				continue
			}
			m = m.Add(val)
		}
	}
	return len(conf) == 0, conf, nil
}

// Solved reports whether b is a completed, satisfying assignment: every cell
// assigned and every group's digits a permutation of 1-9.
func Solved(b *domain.Board) bool {
	if !b.Solved() {
		return false
	}
	for _, g := range domain.Groups() {
		m := domain.Candidates(0)
		for _, cell := range g {
			m = m.Add(b.At(cell).Value())
		}
		if m != domain.AllDigits {
			return false
		}
	}
	return true
}
