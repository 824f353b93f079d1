// core/amplicon/window.go
package amplicon

import "sort"

// Anchored is anything placed at a single genomic coordinate.
type Anchored interface {
	Anchor() int
}

// FindInWindow returns the run of pool whose anchors lie in [lo, hi].
// pool must be sorted ascending by Anchor; an unsorted pool yields an
// incomplete window. The result aliases pool.
func FindInWindow[K Anchored](pool []K, lo, hi int) []K {
	if len(pool) == 0 || lo > hi {
		return nil
	}
	i := sort.Search(len(pool), func(i int) bool { return pool[i].Anchor() >= lo })
	j := i
	for j < len(pool) && pool[j].Anchor() <= hi {
		j++
	}
	if i == j {
		return nil
	}
	return pool[i:j]
}

// IsSorted reports whether pool is ascending by Anchor.
func IsSorted[K Anchored](pool []K) bool {
	for i := 1; i < len(pool); i++ {
		if pool[i].Anchor() < pool[i-1].Anchor() {
			return false
		}
	}
	return true
}
