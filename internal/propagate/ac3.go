// Package propagate enforces arc consistency over the candidate sets of a
// board. It is the authoritative pruning engine the search runs on every
// branch; the singles passes in internal/hint are optional pre-filters.
package propagate

import "svw.info/sudoku-csp/internal/domain"

// arc is the directional check "does every digit in xi's set have a
// supporting different digit in xj's set". Arcs exist only inside the
// worklist.
type arc struct {
	xi, xj domain.Cell
}

// AC3 removes provably-impossible digits from b until no arc can prune
// further, and reports whether the board is still consistent (no candidate
// set emptied). Mutates b in place.
//
// The worklist starts with every ordered pair of distinct cells that share a
// group. When revising an arc (xi, xj) shrinks xi, every arc (xk, xi) for a
// peer xk other than xj is re-enqueued, since xi's smaller set may enable
// further pruning. Termination is guaranteed: sets only shrink, and each
// shrink enqueues a bounded number of arcs.
func AC3(b *domain.Board, groups []domain.Group) bool {
	queue := make([]arc, 0, 27*9*8)
	for _, g := range groups {
		for _, xi := range g {
			for _, xj := range g {
				if xi != xj {
					queue = append(queue, arc{xi, xj})
				}
			}
		}
	}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !revise(b, a.xi, a.xj) {
			continue
		}
		if b.At(a.xi) == 0 {
			return false
		}
		for _, xk := range domain.Peers(a.xi) {
			if xk != a.xj {
				queue = append(queue, arc{xk, a.xi})
			}
		}
	}
	return true
}

// revise removes every digit x from xi's set that has no support in xj's set
// (no digit y != x remains possible for xj) and reports whether anything was
// removed.
func revise(b *domain.Board, xi, xj domain.Cell) bool {
	dj := b.At(xj)
	removed := false
	for _, x := range b.At(xi).Digits() {
		if dj.Remove(x) == 0 {
			b.SetCandidates(xi, b.At(xi).Remove(x))
			removed = true
		}
	}
	return removed
}
