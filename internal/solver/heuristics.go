package solver

import "svw.info/sudoku-csp/internal/domain"

// mrv returns the unassigned cell with the fewest remaining candidates,
// scanning cells in index order so ties break deterministically. ok is false
// when every cell is assigned.
func mrv(b *domain.Board) (domain.Cell, bool) {
	var best domain.Cell
	bestSize := 10
	found := false
	for i := 0; i < 81; i++ {
		cell := domain.Cell(i)
		if n := b.At(cell).Count(); n > 1 && n < bestSize {
			best, bestSize, found = cell, n, true
		}
	}
	return best, found
}

// degree returns the unassigned cell belonging to the most constraint
// groups. On the fixed 9x9 topology every cell is in exactly three groups,
// and the search consults degree only when mrv found no unassigned cell, so
// it never breaks a real tie here; it is a structural fallback for
// topologies where group membership varies.
func degree(b *domain.Board, groups []domain.Group) (domain.Cell, bool) {
	var best domain.Cell
	bestDeg := -1
	found := false
	for i := 0; i < 81; i++ {
		cell := domain.Cell(i)
		if b.At(cell).Count() <= 1 {
			continue
		}
		deg := 0
		for _, g := range groups {
			for _, member := range g {
				if member == cell {
					deg++
					break
				}
			}
		}
		if deg > bestDeg {
			best, bestDeg, found = cell, deg, true
		}
	}
	return best, found
}
