package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"primaldimer-core/amplicon"
	"primaldimer-core/dimer"
	"primaldimer-core/kmer"
)

func TestWarnfInfof(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "x=%d", 1)
	Warnf(&b, true, "hidden")
	Infof(&b, false, "hidden")
	Infof(&b, true, "y=%s", "z")
	if got, want := b.String(), "WARN: x=1\nINFO: y=z\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRunStream(t *testing.T) {
	f, _ := kmer.NewFKmer(10, []string{"ACGTA"})
	var rs []*kmer.RKmer
	for _, s := range []int{20, 30, 40} {
		r, _ := kmer.NewRKmer(s, []string{"ACGT"})
		rs = append(rs, r)
	}
	cfg := amplicon.Config{AmpSizeMin: 0, AmpSizeMax: 100, DimerThreshold: -1e9, Threads: 2}

	var got []int
	n, err := RunStream(context.Background(), cfg, dimer.Default(), []*kmer.FKmer{f}, rs,
		func(p amplicon.Pair) (bool, int, error) { return p.R.Start != 30, p.AmpliconSize(), nil },
		func(sz int) error { got = append(got, sz); return nil },
	)
	if err != nil || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if got[0] != 15 || got[1] != 35 {
		t.Fatalf("sizes: %v", got)
	}

	boom := errors.New("boom")
	_, err = RunStream(context.Background(), cfg, dimer.Default(), []*kmer.FKmer{f}, rs,
		func(amplicon.Pair) (bool, int, error) { return false, 0, boom },
		func(int) error { return nil },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}
