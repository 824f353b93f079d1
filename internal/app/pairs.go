// internal/app/pairs.go
package app

import (
	"github.com/spf13/cobra"

	"primaldimer-core/amplicon"
	"primaldimer-core/dimer"
	"primaldimer/internal/cmdutil"
	"primaldimer/internal/kmerio"
	"primaldimer/internal/output"
	"primaldimer/internal/pretty"
	"primaldimer/internal/writers"
)

func newPairsCmd(st *state) *cobra.Command {
	var kmerFile string
	cmd := &cobra.Command{
		Use:   "pairs --kmers FILE",
		Short: "Pair forward and reverse candidates into dimer-free amplicons",
		Long: `Pair forward and reverse candidates into amplicons whose size lies in
[--amplicon-min, --amplicon-max] and whose primers share no dimer at or
below --threshold.

The candidate file has one row per candidate:

  F|R  anchor  SEQ[,SEQ...]

Forward candidates are anchored on their 3' end (exclusive), reverse
candidates on their start. Output follows forward-candidate order unless
--sort is given.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			c := st.cfg
			pools, err := kmerio.LoadKmers(kmerFile)
			if err != nil {
				return usageError(err)
			}
			cmdutil.Infof(st.stderr, c.Verbose, "loaded %d forward, %d reverse candidates", len(pools.F), len(pools.R))
			if len(pools.F) == 0 || len(pools.R) == 0 {
				cmdutil.Warnf(st.stderr, c.Quiet, "%s: need both F and R candidates", kmerFile)
			}

			sc := dimer.Default()
			opt := writers.PairOptions{
				Sort:   c.Sort,
				Header: c.Header(),
				BED:    output.BEDOptions{Chrom: c.BED.Chrom, Prefix: c.BED.Prefix, Pool: c.BED.Pool},
			}
			if c.Pretty {
				opt.Render = func(p amplicon.Pair) string { return pretty.RenderPair(sc, p, pretty.DefaultOptions) }
			}
			in, done := writers.StartPairWriter(st.out, c.Output, opt, 64)

			acfg := amplicon.Config{
				AmpSizeMin:     c.Amplicon.Min,
				AmpSizeMax:     c.Amplicon.Max,
				DimerThreshold: c.Threshold,
				Threads:        c.Threads,
			}
			n, runErr := cmdutil.RunStream(st.ctx, acfg, sc, pools.F, pools.R,
				func(p amplicon.Pair) (bool, amplicon.Pair, error) { return true, p, nil },
				func(p amplicon.Pair) error {
					select {
					case in <- p:
						return nil
					case <-st.ctx.Done():
						return st.ctx.Err()
					}
				},
			)
			close(in)
			werr := <-done

			switch {
			case runErr != nil:
				return usageError(runErr)
			case werr != nil:
				return ioError(werr)
			case n == 0:
				cmdutil.Warnf(st.stderr, c.Quiet, "no primer pairs found")
				return noMatch(c.NoMatchExitCode)
			}
			cmdutil.Infof(st.stderr, c.Verbose, "wrote %d pairs", n)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&kmerFile, "kmers", "k", "", "candidate TSV file ('-' = stdin) [*]")
	f.Int("amplicon-min", 200, "minimum amplicon size")
	f.Int("amplicon-max", 1000, "maximum amplicon size")
	f.Bool("sort", false, "sort pairs by forward then reverse span")
	f.Bool("pretty", false, "draw the strongest forward/reverse interaction under each text row")
	f.String("bed-chrom", "chrom", "BED chromosome name")
	f.String("bed-prefix", "primaldimer", "BED primer name prefix")
	f.Int("bed-pool", 1, "BED pool number")
	_ = cmd.MarkFlagRequired("kmers")
	return cmd
}
