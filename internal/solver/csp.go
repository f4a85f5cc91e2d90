package solver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/hint"
	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/propagate"
)

// ErrNoSolution means the search exhausted every branch: the board admits no
// satisfying assignment. It is a normal outcome, not a fault.
var ErrNoSolution = errors.New("no solution")

// CSPSolver finds a satisfying assignment by constraint propagation and
// backtracking: singles pre-filters once up front, then a recursive search
// that picks a branching cell by MRV, copies the board per candidate digit,
// and runs AC-3 on each copy before descending. First solution wins.
type CSPSolver struct {
	// Trace, when set, receives one debug event per committed branch
	// assignment. Diagnostics only; never affects the search.
	Trace *slog.Logger
}

func NewCSPSolver() *CSPSolver { return &CSPSolver{} }

func (s *CSPSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	groups := domain.Groups()

	work := *b
	hint.NakedSingles(&work, groups)
	hint.HiddenSingles(&work, groups)
	nodes := 0
	if !propagate.AC3(&work, groups) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	sol, ok := s.search(ctx, work, groups, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	return &sol, st, nil
}

// search owns b by value: mutating it never touches the caller's copy, so a
// failed branch falls back to untouched state.
func (s *CSPSolver) search(ctx context.Context, b domain.Board, groups []domain.Group, nodes *int) (domain.Board, bool) {
	if ctx.Err() != nil {
		return domain.Board{}, false
	}
	if b.Solved() {
		return b, true
	}
	cell, ok := mrv(&b)
	if !ok {
		cell, ok = degree(&b, groups)
	}
	if !ok {
		return domain.Board{}, false
	}
	for _, v := range b.At(cell).Digits() {
		*nodes++
		next := b
		next.Assign(cell, v)
		if !propagate.AC3(&next, groups) {
			continue
		}
		if s.Trace != nil {
			s.Trace.Debug("assigned", "cell", cell.String(), "digit", v)
		}
		if sol, solved := s.search(ctx, next, groups, nodes); solved {
			return sol, true
		}
	}
	return domain.Board{}, false
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *CSPSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	groups := domain.Groups()
	nodes := 0
	count := 0

	var dfs func(b domain.Board) bool
	dfs = func(b domain.Board) bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		if b.Solved() {
			count++
			return count >= 2
		}
		cell, ok := mrv(&b)
		if !ok {
			return false
		}
		for _, v := range b.At(cell).Digits() {
			nodes++
			next := b
			next.Assign(cell, v)
			if !propagate.AC3(&next, groups) {
				continue
			}
			if dfs(next) {
				return true
			}
		}
		return false
	}

	work := *b
	if propagate.AC3(&work, groups) {
		_ = dfs(work)
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
