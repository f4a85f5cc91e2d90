package domain

import "testing"

func TestCandidates(t *testing.T) {
	d := AllDigits
	if d.Count() != 9 {
		t.Fatalf("full set count = %d, want 9", d.Count())
	}
	for v := uint8(1); v <= 9; v++ {
		if !d.Has(v) {
			t.Fatalf("full set missing %d", v)
		}
	}
	d = d.Remove(5)
	if d.Has(5) || d.Count() != 8 {
		t.Fatalf("after Remove(5): has=%v count=%d", d.Has(5), d.Count())
	}
	d = d.Add(5)
	if !d.Has(5) || d != AllDigits {
		t.Fatalf("Add(5) did not restore the full set")
	}

	s := Only(7)
	if !s.Single() || s.Value() != 7 {
		t.Fatalf("Only(7): single=%v value=%d", s.Single(), s.Value())
	}
	if Candidates(0).Value() != 0 {
		t.Fatalf("empty set value = %d, want 0", Candidates(0).Value())
	}

	got := (Only(2) | Only(4) | Only(9)).Digits()
	want := []uint8{2, 4, 9}
	if len(got) != len(want) {
		t.Fatalf("Digits() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Digits() = %v, want %v", got, want)
		}
	}
}

func TestCellNaming(t *testing.T) {
	tests := []struct {
		r, c int
		want string
	}{
		{0, 0, "A1"},
		{0, 8, "A9"},
		{4, 4, "E5"},
		{8, 0, "I1"},
		{8, 8, "I9"},
	}
	for _, tt := range tests {
		if got := CellAt(tt.r, tt.c).String(); got != tt.want {
			t.Errorf("CellAt(%d,%d) = %s, want %s", tt.r, tt.c, got, tt.want)
		}
	}
	if b := CellAt(4, 7).Box(); b != 5 {
		t.Errorf("CellAt(4,7).Box() = %d, want 5", b)
	}
}

func TestBoardValuesRoundTrip(t *testing.T) {
	var g [9][9]uint8
	g[0][0] = 5
	g[4][4] = 9
	g[8][8] = 1
	b := FromValues(g)
	if b.Values() != g {
		t.Fatalf("Values() does not round-trip the input grid")
	}
	if !b.At(CellAt(0, 0)).Single() || b.At(CellAt(0, 0)).Value() != 5 {
		t.Fatalf("given not collapsed to a singleton")
	}
	if b.At(CellAt(0, 1)) != AllDigits {
		t.Fatalf("unassigned cell not fully open")
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	a := NewBoard()
	a.Assign(CellAt(3, 3), 4)
	b := a
	b.Assign(CellAt(3, 3), 8)
	b.SetCandidates(CellAt(0, 0), Only(1))
	if a.At(CellAt(3, 3)).Value() != 4 {
		t.Fatalf("mutating a copy changed the original assignment")
	}
	if a.At(CellAt(0, 0)) != AllDigits {
		t.Fatalf("mutating a copy changed the original candidates")
	}
}

func TestBoardString(t *testing.T) {
	var g [9][9]uint8
	g[0][0] = 3
	b := FromValues(g)
	s := b.String()
	if s[:5] != "3 . ." {
		t.Fatalf("String() = %q...", s[:5])
	}
}

func TestSolved(t *testing.T) {
	b := NewBoard()
	if b.Solved() {
		t.Fatalf("open board reported solved")
	}
	for i := 0; i < 81; i++ {
		b.Assign(Cell(i), uint8(i%9)+1)
	}
	if !b.Solved() {
		t.Fatalf("fully assigned board not reported solved")
	}
}
