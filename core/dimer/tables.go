// core/dimer/tables.go
// Free-energy lookup tables for the dimer scorer (ΔG°37, kcal/mol).
//
// Sources:
//   - Watson–Crick stacks: SantaLucia & Hicks (2004), Table 1.
//   - Single internal mismatches: Allawi & SantaLucia (1997–1998), Peyret et al. (1999),
//     ΔG°37 derived from the published ΔH/ΔS and rounded to 0.01.
//   - Dangling ends: Bommarito et al. (2000).
//
// Orientation: seq1 is read 5'→3', seq2 is the partner read 3'→5' (already
// reversed by the caller). A key "XY/ZW" means seq1 5'-XY-3' against
// seq2 3'-ZW-5', i.e. NN[X][Y][Z][W].

package dimer

import "primaldimer-core/base"

// Energy is an optional table value; OK=false means "no tabulated entry".
type Energy struct {
	DG float64
	OK bool
}

// Or returns the tabulated value or def when absent.
func (e Energy) Or(def float64) float64 {
	if e.OK {
		return e.DG
	}
	return def
}

// Tables holds every lookup the scorer needs. A Tables value is never
// mutated after construction; share it freely between goroutines.
type Tables struct {
	// NN[s1][s1next][s2][s2next]; absent for double mismatches.
	NN [4][4][4][4]Energy
	// Match[b1][b2] is true for A·T and C·G.
	Match [4][4]bool
	// Seq1Overhang[s1][s2][s1dangle]: unpaired seq1 base next to the pair.
	Seq1Overhang [4][4][4]Energy
	// Seq2Overhang[s1][s2][s2dangle]: unpaired seq2 base next to the pair.
	Seq2Overhang [4][4][4]Energy
}

// Watson–Crick propagation ΔG°37. Each stack is listed once; the table
// builder also fills the same stack read from the other strand.
var stackDG = map[string]float64{
	"AA/TT": -1.00,
	"AT/TA": -0.88,
	"TA/AT": -0.58,
	"CA/GT": -1.45,
	"GT/CA": -1.44,
	"CT/GA": -1.28,
	"GA/CT": -1.30,
	"CG/GC": -2.17,
	"GC/CG": -2.24,
	"GG/CC": -1.84,
}

// Single internal mismatch ΔG°37; the mismatch is always the second pair.
var mismatchDG = map[string]float64{
	// G·T
	"AG/TT": 0.72, "AT/TG": 0.07, "CG/GT": -0.47, "CT/GG": -0.32,
	"GG/CT": 0.07, "GT/CG": -0.59, "TG/AT": 0.43, "TT/AG": 0.34,
	// G·A
	"AA/TG": 0.11, "AG/TA": 0.01, "CA/GG": 0.01, "CG/GA": 0.09,
	"GA/CG": -0.29, "GG/CA": -0.49, "TA/AG": 0.48, "TG/AA": 0.70,
	// C·T
	"AC/TT": 0.64, "AT/TC": 0.72, "CC/GT": 0.60, "CT/GC": 0.39,
	"GC/CT": 0.63, "GT/CC": 1.01, "TC/AT": 0.98, "TT/AC": 0.78,
	// A·C
	"AA/TC": 0.87, "AC/TA": 0.77, "CA/GC": 0.75, "CC/GA": 0.79,
	"GA/CC": 0.80, "GC/CA": 0.48, "TA/AC": 0.92, "TC/AA": 1.33,
	// like-with-like
	"AA/TA": 0.67, "CA/GA": 0.40, "GA/CA": 0.14, "TA/AA": 0.70,
	"AC/TC": 1.36, "CC/GC": 0.73, "GC/CC": 0.84, "TC/AC": 1.01,
	"AG/TG": -0.15, "CG/GG": -0.15, "GG/CG": -1.10, "TG/AG": 0.48,
	"AT/TT": 0.65, "CT/GT": -0.10, "GT/CT": 0.41, "TT/AT": 0.67,
}

// 3'-dangling ends: 5'-PX-3' / 3'-Q-5' with P·Q paired and X unpaired.
// Rows by P, columns by X in A,C,G,T order.
var dangle3DG = map[byte][4]float64{
	'A': {-0.51, -0.42, -0.62, -0.71},
	'C': {-0.96, -0.52, -0.72, -0.58},
	'G': {-0.58, -0.34, -0.56, -0.61},
	'T': {-0.50, -0.02, 0.48, -0.10},
}

// 5'-dangling ends: 5'-XP-3' / 3'-Q-5' with P·Q paired and X unpaired.
var dangle5DG = map[byte][4]float64{
	'A': {-0.12, 0.28, -0.01, 0.13},
	'C': {-0.82, -0.31, -0.01, -0.52},
	'G': {-0.92, -0.23, -0.44, -0.35},
	'T': {-0.48, -0.19, -0.50, -0.29},
}

const letters = "ACGT"

var defaultTables = buildTables()

// DefaultTables returns the shared, read-only tables.
func DefaultTables() *Tables { return defaultTables }

func code(c byte) byte {
	s, err := base.Encode(string(c))
	if err != nil {
		panic("dimer: bad table key " + string(c))
	}
	return s[0]
}

func buildTables() *Tables {
	t := &Tables{}

	for a := byte(0); a < 4; a++ {
		t.Match[a][base.Complement(a)] = true
	}

	fill := func(key string, dg float64) {
		if len(key) != 5 || key[2] != '/' {
			panic("dimer: bad NN key " + key)
		}
		x, y, z, w := code(key[0]), code(key[1]), code(key[3]), code(key[4])
		t.NN[x][y][z][w] = Energy{DG: dg, OK: true}
		// Same stack read from the partner strand.
		t.NN[w][z][y][x] = Energy{DG: dg, OK: true}
	}
	for k, v := range stackDG {
		fill(k, v)
	}
	for k, v := range mismatchDG {
		fill(k, v)
	}

	for s1 := byte(0); s1 < 4; s1++ {
		s2 := base.Complement(s1)
		row3 := dangle3DG[letters[s1]]
		row5 := dangle5DG[letters[s2]]
		for x := byte(0); x < 4; x++ {
			t.Seq1Overhang[s1][s2][x] = Energy{DG: row3[x], OK: true}
			t.Seq2Overhang[s1][s2][x] = Energy{DG: row5[x], OK: true}
		}
	}
	return t
}

// Bonus holds the empirical penalty/bonus coefficients applied on top of
// the nearest-neighbour sum.
type Bonus struct {
	DoubleMismatch        float64
	LeftOverhangMismatch  float64
	RightOverhangMismatch float64
	AllMatch              float64
	Match3pGC             float64
	Match3pAT             float64
	Mismatch3p            float64
	LongestMatchCoef      float64
	MatchPropCoef         float64
	BubbleCoef            float64
}

// DefaultBonus is the fitted coefficient set.
var DefaultBonus = Bonus{
	DoubleMismatch:        1.11217618,
	LeftOverhangMismatch:  0.55187469,
	RightOverhangMismatch: 1.01582516,
	AllMatch:              1.03180592,
	Match3pGC:             -2.76687727,
	Match3pAT:             -0.81903133,
	Mismatch3p:            0.93596145,
	LongestMatchCoef:      2.32758405,
	MatchPropCoef:         3.24507248,
	BubbleCoef:            0.80416919,
}
