// internal/kmerio/kmerio.go
package kmerio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"primaldimer-core/base"
	"primaldimer-core/kmer"
)

// Pools holds the candidates read from a kmer file, sorted by anchor.
type Pools struct {
	F []*kmer.FKmer
	R []*kmer.RKmer
}

// SeqPool is a named list of encoded sequences.
type SeqPool struct {
	IDs  []string
	Seqs []base.Seq
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// LoadKmers reads a candidate file ("-" = stdin). Rows are
//
//	F|R  anchor  SEQ[,SEQ...]
//
// separated by whitespace. Blank lines and lines starting with '#' are
// skipped. Sequences are upper-cased before encoding.
func LoadKmers(path string) (Pools, error) {
	fh, err := open(path)
	if err != nil {
		return Pools{}, err
	}
	defer func() { _ = fh.Close() }()
	return ReadKmers(fh, path)
}

// ReadKmers is LoadKmers over an io.Reader; name is used in error messages.
func ReadKmers(r io.Reader, name string) (Pools, error) {
	var p Pools
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return Pools{}, fmt.Errorf("%s:%d bad field count", name, ln)
		}
		anchor, err := strconv.Atoi(f[1])
		if err != nil {
			return Pools{}, fmt.Errorf("%s:%d bad anchor: %v", name, ln, err)
		}
		seqs := strings.Split(strings.ToUpper(f[2]), ",")
		switch strings.ToUpper(f[0]) {
		case "F":
			k, err := kmer.NewFKmer(anchor, seqs)
			if err != nil {
				return Pools{}, fmt.Errorf("%s:%d %w", name, ln, err)
			}
			p.F = append(p.F, k)
		case "R":
			k, err := kmer.NewRKmer(anchor, seqs)
			if err != nil {
				return Pools{}, fmt.Errorf("%s:%d %w", name, ln, err)
			}
			p.R = append(p.R, k)
		default:
			return Pools{}, fmt.Errorf("%s:%d bad direction %q (want F or R)", name, ln, f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return Pools{}, err
	}
	kmer.SortFKmers(p.F)
	kmer.SortRKmers(p.R)
	return p, nil
}

// LoadSeqPool reads one sequence per line, optionally preceded by an id
// column. Lines without an id are named "<file>:<line>".
func LoadSeqPool(path string) (SeqPool, error) {
	fh, err := open(path)
	if err != nil {
		return SeqPool{}, err
	}
	defer func() { _ = fh.Close() }()
	return ReadSeqPool(fh, path)
}

// ReadSeqPool is LoadSeqPool over an io.Reader.
func ReadSeqPool(r io.Reader, name string) (SeqPool, error) {
	var p SeqPool
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		var id, raw string
		switch len(f) {
		case 1:
			id, raw = fmt.Sprintf("%s:%d", name, ln), f[0]
		case 2:
			id, raw = f[0], f[1]
		default:
			return SeqPool{}, fmt.Errorf("%s:%d bad field count", name, ln)
		}
		s, err := base.Encode(strings.ToUpper(raw))
		if err != nil {
			return SeqPool{}, fmt.Errorf("%s:%d %w", name, ln, err)
		}
		p.IDs = append(p.IDs, id)
		p.Seqs = append(p.Seqs, s)
	}
	if err := sc.Err(); err != nil {
		return SeqPool{}, err
	}
	if len(p.Seqs) == 0 {
		return SeqPool{}, fmt.Errorf("%s: no sequences", name)
	}
	return p, nil
}
