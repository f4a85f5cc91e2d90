package solver

import (
	"context"
	"time"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver with no
// propagation: it branches over a cell's remaining candidates and checks
// only direct peer conflicts. Kept as a cross-check for the CSP engine and
// as the generator's uniqueness oracle.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// conflicts reports whether some peer of cell is already assigned v.
func conflicts(b *domain.Board, cell domain.Cell, v uint8) bool {
	for _, p := range domain.Peers(cell) {
		if d := b.At(p); d.Single() && d.Value() == v {
			return true
		}
	}
	return false
}

// firstUnassigned returns the first cell in index order with more than one
// candidate left.
func firstUnassigned(b *domain.Board) (domain.Cell, bool) {
	for i := 0; i < 81; i++ {
		if !b.At(domain.Cell(i)).Single() {
			return domain.Cell(i), true
		}
	}
	return 0, false
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := *b
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		cell, ok := firstUnassigned(&grid)
		if !ok {
			return true
		}
		old := grid.At(cell)
		for _, v := range old.Digits() {
			nodes++
			if conflicts(&grid, cell, v) {
				continue
			}
			grid.Assign(cell, v)
			if dfs() {
				return true
			}
			grid.SetCandidates(cell, old)
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	out := grid
	return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := *b
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		cell, ok := firstUnassigned(&grid)
		if !ok {
			count++
			return count >= 2
		}
		old := grid.At(cell)
		for _, v := range old.Digits() {
			nodes++
			if conflicts(&grid, cell, v) {
				continue
			}
			grid.Assign(cell, v)
			if dfs() {
				return true
			}
			grid.SetCandidates(cell, old)
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
