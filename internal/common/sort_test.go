package common

import (
	"testing"

	"primaldimer-core/amplicon"
	"primaldimer-core/kmer"
)

func pair(t *testing.T, fEnd int, fSeq string, rStart int, rSeq string) amplicon.Pair {
	t.Helper()
	f, err := kmer.NewFKmer(fEnd, []string{fSeq})
	if err != nil {
		t.Fatal(err)
	}
	r, err := kmer.NewRKmer(rStart, []string{rSeq})
	if err != nil {
		t.Fatal(err)
	}
	return amplicon.Pair{F: f, R: r}
}

func TestSortPairs(t *testing.T) {
	ps := []amplicon.Pair{
		pair(t, 20, "ACGTA", 300, "GGGG"),  // F start 15
		pair(t, 20, "ACGTAC", 300, "GGGG"), // F start 14
		pair(t, 20, "ACGTA", 200, "GGGG"),
		pair(t, 20, "ACGTA", 200, "CCCC"),
		pair(t, 20, "ACGTA", 200, "CCCCC"),
	}
	SortPairs(ps)
	want := []struct {
		fStart, rStart, rEnd int
		r                    string
	}{
		{14, 300, 304, "GGGG"},
		{15, 200, 204, "CCCC"},
		{15, 200, 204, "GGGG"},
		{15, 200, 205, "CCCCC"},
		{15, 300, 304, "GGGG"},
	}
	for i, w := range want {
		p := ps[i]
		if p.F.Start() != w.fStart || p.R.Start != w.rStart || p.R.End() != w.rEnd || p.R.SeqStrings()[0] != w.r {
			t.Fatalf("pos %d: got F%d R%d-%d %s", i, p.F.Start(), p.R.Start, p.R.End(), p.R.SeqStrings()[0])
		}
	}
}
