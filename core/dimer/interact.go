// core/dimer/interact.go
package dimer

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"primaldimer-core/base"
)

// LegacyNoScore is the value older bindings reported for offsets that
// cannot extend. The core never returns it; presentation layers may.
const LegacyNoScore = 100.0

// offsetRange returns the half-open offset range scanned by CanExtend.
func offsetRange(len1, len2 int) (lo, hi int) {
	return -(len1 - 2), len2 - len1
}

// CanExtend reports whether seq1 (5'→3') can prime off seq2 (5'→3') at any
// offset with a score at or below threshold.
func (s *Scorer) CanExtend(seq1, seq2 base.Seq, threshold float64) bool {
	rev := base.Reverse(seq2)
	lo, hi := offsetRange(len(seq1), len(seq2))
	for off := lo; off < hi; off++ {
		if sc, ok := s.ScoreAtOffset(seq1, rev, off); ok && sc <= threshold {
			return true
		}
	}
	return false
}

// SeqsInteract checks both extension orientations.
func (s *Scorer) SeqsInteract(seq1, seq2 base.Seq, threshold float64) bool {
	return s.CanExtend(seq1, seq2, threshold) || s.CanExtend(seq2, seq1, threshold)
}

// PoolsInteract reports whether any seq of pool1 interacts with any seq of
// pool2. It stops at the first hit.
func (s *Scorer) PoolsInteract(pool1, pool2 []base.Seq, threshold float64) bool {
	for _, a := range pool1 {
		for _, b := range pool2 {
			if s.SeqsInteract(a, b, threshold) {
				return true
			}
		}
	}
	return false
}

// PoolsInteractContext is PoolsInteract spread over workers goroutines
// (0 = all CPUs). The first hit cancels the remaining work. A cancelled
// parent context yields its error unless a hit was already found.
func (s *Scorer) PoolsInteractContext(ctx context.Context, pool1, pool2 []base.Seq, threshold float64, workers int) (bool, error) {
	if len(pool1) == 0 || len(pool2) == 0 {
		return false, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pool1) {
		workers = len(pool1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var found atomic.Bool
	jobs := make(chan base.Seq)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for a := range jobs {
				for _, b := range pool2 {
					if found.Load() || ctx.Err() != nil {
						break
					}
					if s.SeqsInteract(a, b, threshold) {
						found.Store(true)
						cancel()
						break
					}
				}
			}
		}()
	}

feed:
	for _, a := range pool1 {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- a:
		}
	}
	close(jobs)
	wg.Wait()

	if found.Load() {
		return true, nil
	}
	return false, context.Cause(ctx)
}

// Hit is the strongest interaction found between two sequences.
type Hit struct {
	Score float64
	// Offset as passed to ScoreAtOffset with the partner reversed.
	Offset int
	// Swapped is true when the second sequence is the extending strand.
	Swapped bool
}

// Worst returns the lowest score over every viable offset in both
// orientations. ok is false when no offset is scoreable.
func (s *Scorer) Worst(seq1, seq2 base.Seq) (Hit, bool) {
	var best Hit
	found := false
	scan := func(a, b base.Seq, swapped bool) {
		rev := base.Reverse(b)
		lo, hi := offsetRange(len(a), len(b))
		for off := lo; off < hi; off++ {
			sc, ok := s.ScoreAtOffset(a, rev, off)
			if !ok {
				continue
			}
			if !found || sc < best.Score {
				best = Hit{Score: sc, Offset: off, Swapped: swapped}
				found = true
			}
		}
	}
	scan(seq1, seq2, false)
	scan(seq2, seq1, true)
	return best, found
}
