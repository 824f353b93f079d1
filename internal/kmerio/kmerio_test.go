package kmerio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"primaldimer-core/base"
	"primaldimer-core/kmer"
)

func TestReadKmers(t *testing.T) {
	in := `# dir anchor seqs
R	300	ttaaggcc
F	120	ACGTACGTAC,ACGTACGTACG
F	100	ACGTACGTAC

R	250	GGCCTTAA,GGCCTTAA
`
	p, err := ReadKmers(strings.NewReader(in), "k.tsv")
	if err != nil {
		t.Fatalf("ReadKmers: %v", err)
	}
	if len(p.F) != 2 || len(p.R) != 2 {
		t.Fatalf("got %d F, %d R", len(p.F), len(p.R))
	}
	if p.F[0].End != 100 || p.F[1].End != 120 {
		t.Fatalf("F not sorted: %v", p.F)
	}
	if p.R[0].Start != 250 || p.R[1].Start != 300 {
		t.Fatalf("R not sorted: %v", p.R)
	}
	if p.R[0].Len() != 1 {
		t.Fatalf("duplicate variants kept: %v", p.R[0])
	}
	if got := p.R[1].SeqStrings()[0]; got != "TTAAGGCC" {
		t.Fatalf("lowercase not normalized: %q", got)
	}
	if p.F[1].Start() != 109 {
		t.Fatalf("F start: %d", p.F[1].Start())
	}
}

func TestReadKmersErrors(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"fields", "F 10\n", "k:1 bad field count"},
		{"anchor", "F x ACGT\n", "k:1 bad anchor"},
		{"dir", "\nX 10 ACGT\n", "k:2 bad direction"},
		{"base", "R 10 ACNT\n", "k:1 rkmer @10: non-ACGT base"},
		{"negative", "F 2 ACGT\n", "k:1 fkmer @2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadKmers(strings.NewReader(tc.in), "k")
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want %q, got %v", tc.want, err)
			}
		})
	}

	_, err := ReadKmers(strings.NewReader("F 2 ACGT\n"), "k")
	if !errors.Is(err, kmer.ErrNegativeStart) {
		t.Fatalf("want ErrNegativeStart, got %v", err)
	}
	_, err = ReadKmers(strings.NewReader("R 2 ACZT\n"), "k")
	var ib *base.InvalidBaseError
	if !errors.As(err, &ib) || ib.Pos != 2 {
		t.Fatalf("want InvalidBaseError at 2, got %v", err)
	}
}

func TestLoadSeqPool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.txt")
	if err := os.WriteFile(path, []byte("p1\tACGT\n#skip\nggcc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadSeqPool(path)
	if err != nil {
		t.Fatalf("LoadSeqPool: %v", err)
	}
	if len(p.Seqs) != 2 || p.IDs[0] != "p1" || p.IDs[1] != path+":3" {
		t.Fatalf("unexpected pool: %+v", p)
	}
	if base.Decode(p.Seqs[1]) != "GGCC" {
		t.Fatalf("seq: %s", base.Decode(p.Seqs[1]))
	}

	if _, err := LoadSeqPool(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := ReadSeqPool(strings.NewReader("#only\n"), "e"); err == nil {
		t.Fatal("expected error for empty pool")
	}
	if _, err := ReadSeqPool(strings.NewReader("a b c\n"), "e"); err == nil {
		t.Fatal("expected field count error")
	}
}
