// Package boardfile reads and writes boards as plain text files. The native
// format is 81 lines, one cell per line in row-major order, each line the
// digits still possible for that cell (a single digit marks a given). The
// loader also accepts the common 9-line grid form with '.', '_' or '0' for
// empty cells. Input validation happens here, before any board reaches the
// solving core.
package boardfile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"svw.info/sudoku-csp/internal/domain"
)

type Store struct{}

func New() *Store { return &Store{} }

func (s *Store) Load(ctx context.Context, path string) (*domain.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

func (s *Store) Save(ctx context.Context, path string, b *domain.Board) error {
	var sb strings.Builder
	for i := 0; i < 81; i++ {
		sb.WriteString(b.At(domain.Cell(i)).String())
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// Parse decodes either supported text form. A cell-per-line file must have
// exactly 81 lines; anything else is a validation error.
func Parse(text string) (*domain.Board, error) {
	lines := splitLines(text)
	switch len(lines) {
	case 81:
		return parseCells(lines)
	case 9:
		return parseGrid(lines)
	}
	return nil, fmt.Errorf("board file must contain exactly 81 lines (one per cell), got %d", len(lines))
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	// drop trailing blank lines only; interior blanks are invalid cells
	for len(raw) > 0 && strings.TrimSpace(raw[len(raw)-1]) == "" {
		raw = raw[:len(raw)-1]
	}
	return raw
}

func parseCells(lines []string) (*domain.Board, error) {
	b := domain.NewBoard()
	for i, line := range lines {
		cell := domain.Cell(i)
		var d domain.Candidates
		opts := strings.TrimSpace(line)
		if opts == "" {
			return nil, fmt.Errorf("line %d: empty candidate set for cell %s", i+1, cell)
		}
		for _, r := range opts {
			if r < '1' || r > '9' {
				return nil, fmt.Errorf("line %d: invalid candidate %q for cell %s", i+1, r, cell)
			}
			v := uint8(r - '0')
			if d.Has(v) {
				return nil, fmt.Errorf("line %d: duplicate candidate %d for cell %s", i+1, v, cell)
			}
			d = d.Add(v)
		}
		b.SetCandidates(cell, d)
	}
	return &b, nil
}

func parseGrid(lines []string) (*domain.Board, error) {
	var g [9][9]uint8
	for r, line := range lines {
		row := strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if len(row) != 9 {
			return nil, fmt.Errorf("row %d: want 9 cells, got %d", r+1, len(row))
		}
		for c := 0; c < 9; c++ {
			switch ch := row[c]; {
			case ch == '.' || ch == '_' || ch == '0':
				// empty
			case ch >= '1' && ch <= '9':
				g[r][c] = ch - '0'
			default:
				return nil, fmt.Errorf("row %d: invalid cell %q", r+1, ch)
			}
		}
	}
	b := domain.FromValues(g)
	return &b, nil
}
