package domain

// Group is an ordered set of nine cells that must hold pairwise-distinct
// digits: a row, a column, or a 3x3 box.
type Group [9]Cell

// The 27 groups and the per-cell peer table are fixed by the 9x9 topology.
// They are built once at startup and treated as read-only everywhere.
var (
	groups [27]Group
	peers  [81][]Cell
)

func init() {
	groups = buildGroups()
	peers = buildPeers(groups)
}

// Groups returns the 27 constraint groups: 9 rows, then 9 columns, then the
// 9 non-overlapping 3x3 boxes. Deterministic; every cell appears in exactly
// three groups.
func Groups() []Group { return groups[:] }

// Peers returns the 20 cells sharing at least one group with c, excluding c
// itself. The returned slice is shared and must not be modified.
func Peers(c Cell) []Cell { return peers[c] }

func buildGroups() [27]Group {
	var gs [27]Group
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			gs[r][c] = CellAt(r, c)
		}
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			gs[9+c][r] = CellAt(r, c)
		}
	}
	for box := 0; box < 9; box++ {
		br, bc := (box/3)*3, (box%3)*3
		for i := 0; i < 9; i++ {
			gs[18+box][i] = CellAt(br+i/3, bc+i%3)
		}
	}
	return gs
}

func buildPeers(gs [27]Group) [81][]Cell {
	var seen [81][81]bool
	var out [81][]Cell
	for _, g := range gs {
		for _, a := range g {
			for _, b := range g {
				if a != b && !seen[a][b] {
					seen[a][b] = true
					out[a] = append(out[a], b)
				}
			}
		}
	}
	return out
}
