// core/kmer/kmer.go
// Primer candidates anchored at a genomic coordinate.
//
// An FKmer (forward) is anchored on its right edge: every variant ends at
// End and starts at End-len. An RKmer (reverse) is anchored on its left
// edge: every variant starts at Start and ends at Start+len. Coordinates
// are half-open; the binding layer decides 0- vs 1-based presentation.

package kmer

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"sort"

	"primaldimer-core/base"
)

var (
	// ErrNoSeqs is returned when a candidate has no variants.
	ErrNoSeqs = errors.New("kmer has no sequences")
	// ErrNegativeStart is returned when an FKmer variant is longer than its anchor.
	ErrNegativeStart = errors.New("kmer variant starts before coordinate 0")
)

// encodeVariants validates, sorts and deduplicates the variants.
func encodeVariants(seqs []string) ([]base.Seq, error) {
	if len(seqs) == 0 {
		return nil, ErrNoSeqs
	}
	enc, err := base.EncodeAll(seqs)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(enc, func(a, b base.Seq) int { return bytes.Compare(a, b) })
	return slices.CompactFunc(enc, func(a, b base.Seq) bool { return bytes.Equal(a, b) }), nil
}

func decodeAll(seqs []base.Seq) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = base.Decode(s)
	}
	return out
}

func lens(seqs []base.Seq) []int {
	out := make([]int, len(seqs))
	for i, s := range seqs {
		out[i] = len(s)
	}
	return out
}

// FKmer is a forward primer candidate.
type FKmer struct {
	End  int
	Seqs []base.Seq // sorted, unique
}

// NewFKmer builds a forward candidate ending at end.
func NewFKmer(end int, seqs []string) (*FKmer, error) {
	enc, err := encodeVariants(seqs)
	if err != nil {
		return nil, fmt.Errorf("fkmer @%d: %w", end, err)
	}
	f := &FKmer{End: end, Seqs: enc}
	if f.Start() < 0 {
		return nil, fmt.Errorf("fkmer @%d: %w", end, ErrNegativeStart)
	}
	return f, nil
}

// Start is the leftmost start across variants.
func (f *FKmer) Start() int {
	start := f.End
	for _, s := range f.Seqs {
		if st := f.End - len(s); st < start {
			start = st
		}
	}
	return start
}

// Starts lists each variant's start, in variant order.
func (f *FKmer) Starts() []int {
	out := make([]int, len(f.Seqs))
	for i, s := range f.Seqs {
		out[i] = f.End - len(s)
	}
	return out
}

// Anchor is the fixed coordinate (End).
func (f *FKmer) Anchor() int { return f.End }

// SeqStrings returns the decoded variants.
func (f *FKmer) SeqStrings() []string { return decodeAll(f.Seqs) }

// Lens returns each variant's length.
func (f *FKmer) Lens() []int { return lens(f.Seqs) }

// Len is the number of variants.
func (f *FKmer) Len() int { return len(f.Seqs) }

func (f *FKmer) String() string { return fmt.Sprintf("FKmer(%d, %v)", f.End, f.SeqStrings()) }

// RKmer is a reverse primer candidate.
type RKmer struct {
	Start int
	Seqs  []base.Seq // sorted, unique
}

// NewRKmer builds a reverse candidate starting at start.
func NewRKmer(start int, seqs []string) (*RKmer, error) {
	enc, err := encodeVariants(seqs)
	if err != nil {
		return nil, fmt.Errorf("rkmer @%d: %w", start, err)
	}
	if start < 0 {
		return nil, fmt.Errorf("rkmer @%d: %w", start, ErrNegativeStart)
	}
	return &RKmer{Start: start, Seqs: enc}, nil
}

// End is the rightmost end across variants.
func (r *RKmer) End() int {
	end := r.Start
	for _, s := range r.Seqs {
		if e := r.Start + len(s); e > end {
			end = e
		}
	}
	return end
}

// Ends lists each variant's end, in variant order.
func (r *RKmer) Ends() []int {
	out := make([]int, len(r.Seqs))
	for i, s := range r.Seqs {
		out[i] = r.Start + len(s)
	}
	return out
}

// Anchor is the fixed coordinate (Start).
func (r *RKmer) Anchor() int { return r.Start }

// SeqStrings returns the decoded variants.
func (r *RKmer) SeqStrings() []string { return decodeAll(r.Seqs) }

// Lens returns each variant's length.
func (r *RKmer) Lens() []int { return lens(r.Seqs) }

// Len is the number of variants.
func (r *RKmer) Len() int { return len(r.Seqs) }

func (r *RKmer) String() string { return fmt.Sprintf("RKmer(%d, %v)", r.Start, r.SeqStrings()) }

// SortFKmers orders forward candidates by End, then Start.
func SortFKmers(fs []*FKmer) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].End != fs[j].End {
			return fs[i].End < fs[j].End
		}
		return fs[i].Start() < fs[j].Start()
	})
}

// SortRKmers orders reverse candidates by Start, then End.
func SortRKmers(rs []*RKmer) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Start != rs[j].Start {
			return rs[i].Start < rs[j].Start
		}
		return rs[i].End() < rs[j].End()
	})
}
