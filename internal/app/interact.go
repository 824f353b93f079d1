// internal/app/interact.go
package app

import (
	"strings"

	"github.com/spf13/cobra"

	"primaldimer-core/base"
	"primaldimer-core/dimer"
	"primaldimer/internal/cmdutil"
	"primaldimer/internal/output"
	"primaldimer/internal/pretty"
)

func newInteractCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interact SEQ1 SEQ2",
		Short: "Check whether two primers form a dimer in either orientation",
		Long: `Check whether two primers (both 5'→3') form a dimer scoring at or below
--threshold in either orientation, and report the strongest interaction.
Exits with --no-match-exit-code when they do not interact.`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			c := st.cfg
			raw1, raw2 := strings.ToUpper(args[0]), strings.ToUpper(args[1])
			s1, err := base.Encode(raw1)
			if err != nil {
				return usageError(err)
			}
			s2, err := base.Encode(raw2)
			if err != nil {
				return usageError(err)
			}

			sc := dimer.Default()
			hit, found := sc.Worst(s1, s2)
			r := output.InteractionReport{
				Seq1: raw1, Seq2: raw2, Threshold: c.Threshold,
				Interact: sc.SeqsInteract(s1, s2, c.Threshold),
				Hit:      hit, Found: found,
			}
			cmdutil.Infof(st.stderr, c.Verbose, "worst=%v found=%t threshold=%g", hit.Score, found, c.Threshold)

			if c.Output != output.FormatText {
				if err := writeValue(st.out, c.Output, r.ToAPI()); err != nil {
					return err
				}
			} else {
				if err := r.WriteText(st.out, c.Header()); err != nil {
					return ioError(err)
				}
				if c.Pretty {
					block := pretty.RenderNone(pretty.DefaultOptions)
					if found {
						block = pretty.RenderHit(raw1, raw2, hit, pretty.DefaultOptions)
					}
					if _, err := st.out.WriteString(block); err != nil {
						return ioError(err)
					}
				}
			}
			if !r.Interact {
				return noMatch(c.NoMatchExitCode)
			}
			return nil
		},
	}
	cmd.Flags().Bool("pretty", false, "draw the strongest interaction")
	return cmd
}
