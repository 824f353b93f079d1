// core/amplicon/pairs.go
package amplicon

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"primaldimer-core/dimer"
	"primaldimer-core/kmer"
)

var (
	// ErrUnsorted is returned when the reverse pool is not sorted by Start.
	ErrUnsorted = errors.New("reverse pool is not sorted by start")
	// ErrAmpliconRange is returned for an empty or negative size range.
	ErrAmpliconRange = errors.New("invalid amplicon size range")
)

// Pair is a forward/reverse candidate pair.
type Pair struct {
	F *kmer.FKmer
	R *kmer.RKmer
}

// AmpliconSize is the distance between the two candidates' starts.
func (p Pair) AmpliconSize() int { return p.R.Start - p.F.Start() }

// Config controls pair generation.
type Config struct {
	AmpSizeMin     int
	AmpSizeMax     int
	DimerThreshold float64
	Threads        int // worker goroutines (0 = all CPUs)
}

func (c Config) validate() error {
	if c.AmpSizeMin < 0 || c.AmpSizeMin > c.AmpSizeMax {
		return fmt.Errorf("%w: [%d, %d]", ErrAmpliconRange, c.AmpSizeMin, c.AmpSizeMax)
	}
	return nil
}

// pairsFor returns every reverse candidate that forms a valid amplicon
// with f and shares no dimer with it.
func pairsFor(sc *dimer.Scorer, f *kmer.FKmer, rkmers []*kmer.RKmer, c Config) []Pair {
	start := f.Start()
	var out []Pair
	for _, r := range FindInWindow(rkmers, start+c.AmpSizeMin, start+c.AmpSizeMax) {
		if sc.PoolsInteract(f.Seqs, r.Seqs, c.DimerThreshold) {
			continue
		}
		out = append(out, Pair{F: f, R: r})
	}
	return out
}

// GeneratePrimerPairs is the single-goroutine pair generator. rkmers must
// be sorted by Start. Output follows fkmers order, then window order.
func GeneratePrimerPairs(sc *dimer.Scorer, fkmers []*kmer.FKmer, rkmers []*kmer.RKmer, c Config) []Pair {
	var out []Pair
	for _, f := range fkmers {
		out = append(out, pairsFor(sc, f, rkmers, c)...)
	}
	return out
}

// Generate is GeneratePrimerPairs over a worker pool, with validation of
// the configuration and of the reverse pool order.
func Generate(ctx context.Context, sc *dimer.Scorer, fkmers []*kmer.FKmer, rkmers []*kmer.RKmer, c Config) ([]Pair, error) {
	var out []Pair
	err := ForEach(ctx, sc, fkmers, rkmers, c, func(p Pair) error {
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach streams pairs to visit in the same order GeneratePrimerPairs
// would return them. visit runs on a single goroutine. The first error
// from visit, or the context, stops the run and is returned.
func ForEach(ctx context.Context, sc *dimer.Scorer, fkmers []*kmer.FKmer, rkmers []*kmer.RKmer, c Config, visit func(Pair) error) error {
	if err := c.validate(); err != nil {
		return err
	}
	if !IsSorted(rkmers) {
		return ErrUnsorted
	}
	if len(fkmers) == 0 || len(rkmers) == 0 {
		return ctx.Err()
	}

	threads := c.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(fkmers) {
		threads = len(fkmers)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		idx   int
		pairs []Pair
	}
	jobs := make(chan int, threads*2)
	results := make(chan result, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					ps := pairsFor(sc, fkmers[i], rkmers, c)
					select {
					case results <- result{idx: i, pairs: ps}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorders partitions back into forward-pool order.
	var (
		verr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int][]Pair)
		next := 0
		for r := range results {
			if verr != nil {
				continue
			}
			pending[r.idx] = r.pairs
			for {
				ps, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				for _, p := range ps {
					if err := visit(p); err != nil {
						verr = err
						cancel()
						break
					}
				}
				if verr != nil {
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i := range fkmers {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if verr != nil {
		return verr
	}
	return ctx.Err()
}
