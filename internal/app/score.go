// internal/app/score.go
package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"primaldimer-core/dimer"
	"primaldimer/internal/cmdutil"
	"primaldimer/internal/output"
	"primaldimer/internal/pretty"
)

func newScoreCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score SEQ1 SEQ2 OFFSET",
		Short: "Score SEQ1 against SEQ2 at one alignment offset",
		Long: `Score SEQ1 against SEQ2 at one alignment offset. Both sequences are
given 5'→3'; SEQ2 is reversed internally so SEQ1[x] faces reversed
SEQ2[x+OFFSET]. Prints NA when SEQ1 cannot extend from its 3' end.`,
		Example: "  primaldimer score --pretty ACACCTGTGCCTGTTAAACCAT TGGAAATACCCACAAGTTAATGGTTTAAC -12",
		Args:    usageArgs(cobra.ExactArgs(3)),
		RunE: func(_ *cobra.Command, args []string) error {
			c := st.cfg
			seq1, seq2 := strings.ToUpper(args[0]), strings.ToUpper(args[1])
			offset, err := strconv.Atoi(args[2])
			if err != nil {
				return usageError(fmt.Errorf("bad offset %q: %w", args[2], err))
			}
			score, ok, err := dimer.Default().ScoreStrings(seq1, seq2, offset)
			if err != nil {
				return usageError(err)
			}
			if !ok {
				cmdutil.Infof(st.stderr, c.Verbose, "offset %d is not extendable", offset)
			}
			r := output.ScoreReport{
				Seq1: seq1, Seq2: seq2, Offset: offset,
				Score: score, Extendable: ok, Legacy: c.LegacySentinel,
			}
			if c.Output != output.FormatText {
				return writeValue(st.out, c.Output, r.ToAPI())
			}
			if err := r.WriteText(st.out); err != nil {
				return ioError(err)
			}
			if c.Pretty && viable(seq1, seq2, offset) {
				_, err = st.out.WriteString(pretty.RenderAlignment(seq1, seq2, offset, pretty.DefaultOptions))
				return ioError(err)
			}
			return nil
		},
	}
	// Flags go before the sequences so a negative OFFSET is not read as one.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().Bool("pretty", false, "draw the alignment under the score")
	cmd.Flags().Bool("legacy-sentinel", false, fmt.Sprintf("print %g instead of NA for non-extendable offsets", dimer.LegacyNoScore))
	return cmd
}

// viable reports whether offset leaves any overlap worth drawing.
func viable(seq1, seq2 string, offset int) bool {
	for _, p := range dimer.Mapping(len(seq1), offset) {
		if p.Seq2 < len(seq2) {
			return true
		}
	}
	return false
}
