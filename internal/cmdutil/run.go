package cmdutil

import (
	"context"

	"primaldimer-core/amplicon"
	"primaldimer-core/dimer"
	"primaldimer-core/kmer"
)

// RunStream generates primer pairs, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg amplicon.Config,
	sc *dimer.Scorer,
	fkmers []*kmer.FKmer,
	rkmers []*kmer.RKmer,
	visit func(amplicon.Pair) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := amplicon.ForEach(ctx, sc, fkmers, rkmers, cfg, func(p amplicon.Pair) error {
		keep, out, vErr := visit(p)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
