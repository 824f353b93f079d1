// internal/app/pools.go
package app

import (
	"errors"

	"github.com/spf13/cobra"

	"primaldimer-core/dimer"
	"primaldimer/internal/cmdutil"
	"primaldimer/internal/kmerio"
	"primaldimer/internal/output"
)

func newPoolsCmd(st *state) *cobra.Command {
	var pool1, pool2 string
	cmd := &cobra.Command{
		Use:   "pools --pool1 FILE --pool2 FILE",
		Short: "Check whether any primer of one pool dimerises with any of another",
		Long: `Check whether any primer of one pool dimerises with any primer of
another. Pool files hold one sequence per line, optionally preceded by an
id column; '-' reads stdin. Prints true or false.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			c := st.cfg
			if pool1 == "-" && pool2 == "-" {
				return usageError(errors.New("only one pool can be read from stdin"))
			}
			p1, err := kmerio.LoadSeqPool(pool1)
			if err != nil {
				return usageError(err)
			}
			p2, err := kmerio.LoadSeqPool(pool2)
			if err != nil {
				return usageError(err)
			}
			cmdutil.Infof(st.stderr, c.Verbose, "pool1=%d pool2=%d threshold=%g", len(p1.Seqs), len(p2.Seqs), c.Threshold)

			hit, err := dimer.Default().PoolsInteractContext(st.ctx, p1.Seqs, p2.Seqs, c.Threshold, c.Threads)
			if err != nil {
				return err
			}
			r := output.PoolsReport{Pool1: len(p1.Seqs), Pool2: len(p2.Seqs), Threshold: c.Threshold, Interact: hit}
			if c.Output != output.FormatText {
				return writeValue(st.out, c.Output, r.ToAPI())
			}
			return ioError(r.WriteText(st.out))
		},
	}
	cmd.Flags().StringVar(&pool1, "pool1", "", "first pool file [*]")
	cmd.Flags().StringVar(&pool2, "pool2", "", "second pool file [*]")
	_ = cmd.MarkFlagRequired("pool1")
	_ = cmd.MarkFlagRequired("pool2")
	return cmd
}
