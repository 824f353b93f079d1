// core/dimer/score.go
// Offset scoring: one interaction score for seq1 (5'→3') against seq2
// (3'→5') at a fixed integer offset.
//
// Score = dangling ends + 3' extension + run/proportion/bubble bonuses + NN stacks.
// Lower (more negative) means a more stable, more problematic dimer.
//
// Products are wrapped in float64() so the compiler cannot fuse them into
// FMA instructions; results stay bit-identical on every GOARCH.

package dimer

import "primaldimer-core/base"

// Pair is one aligned position: seq2 index facing seq1 index.
type Pair struct {
	Seq2 int
	Seq1 int
}

// Mapping lists the aligned positions for a seq1 of length len1 at offset.
// Only pairs with a non-negative seq2 index are kept.
func Mapping(len1, offset int) []Pair {
	var out []Pair
	for x := 0; x < len1; x++ {
		if j := x + offset; j >= 0 {
			out = append(out, Pair{Seq2: j, Seq1: x})
		}
	}
	return out
}

// Scorer evaluates alignments against a fixed set of tables and
// coefficients. It holds no mutable state.
type Scorer struct {
	tables *Tables
	bonus  Bonus
}

// New returns a Scorer; a nil tables pointer selects DefaultTables.
func New(t *Tables, b Bonus) *Scorer {
	if t == nil {
		t = DefaultTables()
	}
	return &Scorer{tables: t, bonus: b}
}

var defaultScorer = New(DefaultTables(), DefaultBonus)

// Default returns the shared scorer built from the published tables.
func Default() *Scorer { return defaultScorer }

// Tables exposes the scorer's lookup tables (read-only).
func (s *Scorer) Tables() *Tables { return s.tables }

// Bonus returns the scorer's coefficients.
func (s *Scorer) Bonus() Bonus { return s.bonus }

// viable reports whether offset leaves at least two aligned pairs and a
// seq2 base after the last pair (needed for the right-hand dangle).
func viable(len1, len2, offset int) bool {
	lo := 0
	if offset < 0 {
		lo = -offset
	}
	if len1-lo < 2 {
		return false
	}
	last := len1 - 1 + offset
	return last+1 < len2
}

// ScoreAtOffset scores seq1 against seq2 (seq2 already reversed, 3'→5')
// at offset. ok is false when the alignment cannot extend from seq1's 3'
// end, or when the offset leaves nothing scoreable.
func (s *Scorer) ScoreAtOffset(seq1, seq2 base.Seq, offset int) (score float64, ok bool) {
	n1 := len(seq1)
	if !viable(n1, len(seq2), offset) {
		return 0, false
	}
	t := s.tables
	b := &s.bonus

	lo := 0
	if offset < 0 {
		lo = -offset
	}
	nPairs := n1 - lo
	match := func(x int) bool { return t.Match[seq1[x]][seq2[x+offset]] }

	// 3' extension gate: one of the last two pairs must match.
	if !match(n1-1) && !match(n1-2) {
		return 0, false
	}

	// Dangling ends.
	var dg float64
	x := n1 - 1
	j := x + offset
	dg += t.Seq2Overhang[seq1[x]][seq2[j]][seq2[j+1]].Or(b.RightOverhangMismatch)

	x = lo
	j = x + offset
	if x > 0 {
		dg += t.Seq1Overhang[seq1[x]][seq2[j]][seq1[x-1]].Or(b.LeftOverhangMismatch)
	} else if j > 0 {
		dg += t.Seq2Overhang[seq1[x]][seq2[j]][seq2[j-1]].Or(b.LeftOverhangMismatch)
	}

	dg += extension(seq1, nPairs, match)
	dg += s.runBonus(lo, n1, match)

	// Nearest-neighbour stacks over every pair but the last.
	var nn float64
	for x := lo; x < n1-1; x++ {
		j := x + offset
		nn += t.NN[seq1[x]][seq1[x+1]][seq2[j]][seq2[j+1]].Or(b.DoubleMismatch)
	}
	dg += nn

	return dg, true
}

// extension rewards matches in the last four pairs, weighted by distance
// from the 3' end, plus a flat bonus when all of them match. The sign is
// flipped so stronger 3' anchoring lowers the score.
func extension(seq1 base.Seq, nPairs int, match func(int) bool) float64 {
	n1 := len(seq1)
	k := 4
	if nPairs < k {
		k = nPairs
	}
	var score float64
	all := true
	for rank := 0; rank < k; rank++ {
		x := n1 - 1 - rank
		if !match(x) {
			all = false
			continue
		}
		w := 2.0
		if base.IsStrong(seq1[x]) {
			w = 3.0
		}
		score += float64(w * (1.0 / float64(rank+1)))
	}
	if all {
		score += 2.0
	}
	return -score
}

// runBonus applies the match-proportion, longest-run and bubble terms over
// pairs lo..n1-1.
func (s *Scorer) runBonus(lo, n1 int, match func(int) bool) float64 {
	b := &s.bonus
	matches, run, longest := 0, 0, 0
	for x := lo; x < n1; x++ {
		if match(x) {
			matches++
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	var score float64
	prop := float64(matches) / float64(n1-lo)
	score += -float64((0.8 - prop) * b.MatchPropCoef)
	if longest > 0 {
		score += -float64(float64(longest) * b.LongestMatchCoef)
	}

	// Bubbles: mismatch runs longer than two, in alignment order.
	gap := 0
	flush := func() {
		if gap > 2 {
			score += float64(-float64((float64(gap) - 2.0) * b.DoubleMismatch) * b.BubbleCoef)
		}
		gap = 0
	}
	for x := lo; x < n1; x++ {
		if match(x) {
			flush()
		} else {
			gap++
		}
	}
	flush()
	return score
}
