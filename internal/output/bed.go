// internal/output/bed.go
package output

import (
	"fmt"
	"io"

	"primaldimer-core/amplicon"
)

// BEDOptions names the rows of a primer BED file.
type BEDOptions struct {
	Chrom  string
	Prefix string
	Pool   int
}

// WritePairBED writes one row per primer variant of pair number n
// (1-based): every forward variant as LEFT on "+", then every reverse
// variant as RIGHT on "-".
func WritePairBED(w io.Writer, n int, p amplicon.Pair, opt BEDOptions) error {
	for i, s := range p.F.SeqStrings() {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s_%d_LEFT_%d\t%d\t+\t%s\n",
			opt.Chrom, p.F.End-len(s), p.F.End, opt.Prefix, n, i+1, opt.Pool, s)
		if err != nil {
			return err
		}
	}
	for i, s := range p.R.SeqStrings() {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s_%d_RIGHT_%d\t%d\t-\t%s\n",
			opt.Chrom, p.R.Start, p.R.Start+len(s), opt.Prefix, n, i+1, opt.Pool, s)
		if err != nil {
			return err
		}
	}
	return nil
}

// WritePairsBED numbers pairs from 1 in list order.
func WritePairsBED(w io.Writer, list []amplicon.Pair, opt BEDOptions) error {
	for i, p := range list {
		if err := WritePairBED(w, i+1, p, opt); err != nil {
			return err
		}
	}
	return nil
}

// StreamPairsBED is WritePairsBED over a channel.
func StreamPairsBED(w io.Writer, in <-chan amplicon.Pair, opt BEDOptions) error {
	n := 0
	for p := range in {
		n++
		if err := WritePairBED(w, n, p, opt); err != nil {
			return err
		}
	}
	return nil
}
