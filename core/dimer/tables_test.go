package dimer

import "testing"

const (
	bA = 0
	bC = 1
	bG = 2
	bT = 3
)

func TestMatchArray(t *testing.T) {
	tab := DefaultTables()
	want := map[[2]int]bool{{bA, bT}: true, {bT, bA}: true, {bC, bG}: true, {bG, bC}: true}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if got := tab.Match[i][j]; got != want[[2]int{i, j}] {
				t.Errorf("Match[%d][%d]=%v", i, j, got)
			}
			if tab.Match[i][j] != tab.Match[j][i] {
				t.Errorf("Match not symmetric at %d,%d", i, j)
			}
		}
	}
}

func TestNNTableShape(t *testing.T) {
	tab := DefaultTables()
	present := 0
	for w := 0; w < 4; w++ {
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				for z := 0; z < 4; z++ {
					e := tab.NN[w][x][y][z]
					double := !tab.Match[w][y] && !tab.Match[x][z]
					if double && e.OK {
						t.Errorf("double mismatch %d%d/%d%d has an entry", w, x, y, z)
					}
					if !double && !e.OK {
						t.Errorf("stack %d%d/%d%d missing", w, x, y, z)
					}
					if e.OK {
						present++
						if r := tab.NN[z][y][x][w]; !r.OK || r.DG != e.DG {
							t.Errorf("stack %d%d/%d%d differs from its partner-strand reading", w, x, y, z)
						}
					}
				}
			}
		}
	}
	if present != 112 {
		t.Fatalf("present=%d want 112", present)
	}
}

func TestNNValues(t *testing.T) {
	tab := DefaultTables()
	cases := []struct {
		name       string
		w, x, y, z int
		want       float64
	}{
		{"AC/TG", bA, bC, bT, bG, -1.44},
		{"CG/GC", bC, bG, bG, bC, -2.17},
		{"AA/TT", bA, bA, bT, bT, -1.00},
		{"CC/GG", bC, bC, bG, bG, -1.84},
		{"CT/GT mismatch", bC, bT, bG, bT, -0.10},
		{"TC/TG mismatch", bT, bC, bT, bG, 0.41},
	}
	for _, tc := range cases {
		e := tab.NN[tc.w][tc.x][tc.y][tc.z]
		if !e.OK || e.DG != tc.want {
			t.Errorf("%s: got %+v want %v", tc.name, e, tc.want)
		}
	}
}

func TestOverhangTables(t *testing.T) {
	tab := DefaultTables()
	for s1 := 0; s1 < 4; s1++ {
		for s2 := 0; s2 < 4; s2++ {
			for x := 0; x < 4; x++ {
				paired := tab.Match[s1][s2]
				if tab.Seq1Overhang[s1][s2][x].OK != paired || tab.Seq2Overhang[s1][s2][x].OK != paired {
					t.Fatalf("overhang presence at %d,%d,%d should follow pairing", s1, s2, x)
				}
			}
		}
	}
	if e := tab.Seq1Overhang[bG][bC][bT]; e.DG != -0.61 {
		t.Errorf("Seq1Overhang[G][C][T]=%v", e.DG)
	}
	if e := tab.Seq2Overhang[bT][bA][bA]; e.DG != -0.12 {
		t.Errorf("Seq2Overhang[T][A][A]=%v", e.DG)
	}
}

func TestEnergyOr(t *testing.T) {
	if (Energy{}).Or(1.5) != 1.5 {
		t.Fatal("absent energy should fall back")
	}
	if (Energy{DG: -2, OK: true}).Or(1.5) != -2 {
		t.Fatal("present energy should win")
	}
}
