package dimer

import (
	"fmt"

	"primaldimer-core/base"
)

// ScoreStrings scores two 5'→3' sequences at offset. seq2 is reversed
// before scoring, matching how the scan in CanExtend aligns them.
func (s *Scorer) ScoreStrings(seq1, seq2 string, offset int) (float64, bool, error) {
	a, err := base.Encode(seq1)
	if err != nil {
		return 0, false, err
	}
	b, err := base.Encode(seq2)
	if err != nil {
		return 0, false, err
	}
	sc, ok := s.ScoreAtOffset(a, base.Reverse(b), offset)
	return sc, ok, nil
}

// SeqsInteractStrings is SeqsInteract over raw sequences.
func (s *Scorer) SeqsInteractStrings(seq1, seq2 string, threshold float64) (bool, error) {
	a, err := base.Encode(seq1)
	if err != nil {
		return false, err
	}
	b, err := base.Encode(seq2)
	if err != nil {
		return false, err
	}
	return s.SeqsInteract(a, b, threshold), nil
}

// PoolsInteractStrings is PoolsInteract over raw sequences. Every
// sequence is validated before any scoring starts.
func (s *Scorer) PoolsInteractStrings(pool1, pool2 []string, threshold float64) (bool, error) {
	p1, err := base.EncodeAll(pool1)
	if err != nil {
		return false, fmt.Errorf("pool1: %w", err)
	}
	p2, err := base.EncodeAll(pool2)
	if err != nil {
		return false, fmt.Errorf("pool2: %w", err)
	}
	return s.PoolsInteract(p1, p2, threshold), nil
}
