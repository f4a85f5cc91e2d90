package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/validator"
)

// A classic, solvable puzzle (0 = empty) and its unique solution.
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// A second complete grid used for forced-completion and uniqueness tests.
var reference = [9][9]uint8{
	{3, 6, 2, 8, 5, 9, 1, 7, 4},
	{4, 8, 9, 1, 3, 7, 6, 5, 2},
	{7, 1, 5, 4, 6, 2, 8, 3, 9},
	{9, 7, 3, 2, 1, 8, 4, 6, 5},
	{5, 4, 6, 7, 9, 3, 2, 1, 8},
	{8, 2, 1, 6, 4, 5, 3, 9, 7},
	{1, 3, 7, 5, 8, 4, 9, 2, 6},
	{2, 9, 8, 3, 7, 6, 5, 4, 1},
	{6, 5, 4, 9, 2, 1, 7, 8, 3},
}

func maskDigits(g [9][9]uint8, digits ...uint8) [9][9]uint8 {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for _, d := range digits {
				if g[r][c] == d {
					g[r][c] = 0
				}
			}
		}
	}
	return g
}

func TestCSPSolveClassic(t *testing.T) {
	in := domain.FromValues(sample)
	out, st, err := NewCSPSolver().Solve(context.Background(), &in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if out.Values() != sampleSolved {
		t.Fatalf("wrong solution:\n%s", out.String())
	}
	if !validator.Solved(out) {
		t.Fatalf("solution does not satisfy every group")
	}
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestCSPSolveForced(t *testing.T) {
	in := domain.FromValues(maskDigits(reference, 3))
	out, _, err := NewCSPSolver().Solve(context.Background(), &in)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out.Values() != reference {
		t.Fatalf("forced completion diverged from the known grid:\n%s", out.String())
	}
}

func TestCSPSolveLeavesInputIntact(t *testing.T) {
	in := domain.FromValues(sample)
	snapshot := in
	if _, _, err := NewCSPSolver().Solve(context.Background(), &in); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for i := 0; i < 81; i++ {
		if in.At(domain.Cell(i)) != snapshot.At(domain.Cell(i)) {
			t.Fatalf("Solve mutated the caller's board at %s", domain.Cell(i))
		}
	}
}

func TestCSPNoSolution(t *testing.T) {
	var g [9][9]uint8
	g[0][0], g[0][7] = 9, 9 // duplicate given in row A
	in := domain.FromValues(g)
	_, _, err := NewCSPSolver().Solve(context.Background(), &in)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("err = %v, want ErrNoSolution", err)
	}
}

func TestCSPCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := domain.FromValues(sample)
	_, _, err := NewCSPSolver().Solve(ctx, &in)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestCSPUnique(t *testing.T) {
	in := domain.FromValues(sample)
	unique, st, err := NewCSPSolver().Unique(context.Background(), &in)
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if !unique {
		t.Fatalf("classic puzzle reported non-unique (nodes=%d)", st.Nodes)
	}

	// removing two whole digit classes always admits at least the swapped
	// placement as a second completion
	in = domain.FromValues(maskDigits(reference, 1, 2))
	unique, _, err = NewCSPSolver().Unique(context.Background(), &in)
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if unique {
		t.Fatalf("two-digit masking reported unique")
	}
}

func TestCSPSolveUnder1s(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	in := domain.FromValues(sample)
	if _, st, err := NewCSPSolver().Solve(ctx, &in); err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
}
