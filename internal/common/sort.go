// internal/common/sort.go
package common

import (
	"bytes"
	"sort"

	"primaldimer-core/amplicon"
	"primaldimer-core/base"
)

func lessSeqs(a, b []base.Seq) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := bytes.Compare(a[i], b[i]); c != 0 {
			return c < 0
		}
	}
	return len(a) < len(b)
}

// LessPair defines a stable order for pairs (for --sort): forward span,
// then reverse span, then variants.
func LessPair(a, b amplicon.Pair) bool {
	if as, bs := a.F.Start(), b.F.Start(); as != bs {
		return as < bs
	}
	if a.F.End != b.F.End {
		return a.F.End < b.F.End
	}
	if a.R.Start != b.R.Start {
		return a.R.Start < b.R.Start
	}
	if ae, be := a.R.End(), b.R.End(); ae != be {
		return ae < be
	}
	if lessSeqs(a.F.Seqs, b.F.Seqs) {
		return true
	}
	if lessSeqs(b.F.Seqs, a.F.Seqs) {
		return false
	}
	return lessSeqs(a.R.Seqs, b.R.Seqs)
}

func SortPairs(ps []amplicon.Pair) {
	sort.SliceStable(ps, func(i, j int) bool { return LessPair(ps[i], ps[j]) })
}
