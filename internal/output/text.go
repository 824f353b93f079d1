// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"primaldimer-core/amplicon"
)

// WritePairsText prints one TSV row per pair, each optionally followed by
// the block returned from render.
func WritePairsText(w io.Writer, list []amplicon.Pair, header bool, render func(amplicon.Pair) string) error {
	if header {
		if _, err := fmt.Fprintln(w, PairTSVHeader); err != nil {
			return err
		}
	}
	for _, p := range list {
		if err := writePairRow(w, p, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamPairsText is WritePairsText over a channel.
func StreamPairsText(w io.Writer, in <-chan amplicon.Pair, header bool, render func(amplicon.Pair) string) error {
	if header {
		if _, err := fmt.Fprintln(w, PairTSVHeader); err != nil {
			return err
		}
	}
	for p := range in {
		if err := writePairRow(w, p, render); err != nil {
			return err
		}
	}
	return nil
}

func writePairRow(w io.Writer, p amplicon.Pair, render func(amplicon.Pair) string) error {
	if _, err := fmt.Fprintln(w, FormatPairRowTSV(p)); err != nil {
		return err
	}
	if render != nil {
		if block := render(p); block != "" {
			if _, err := io.WriteString(w, block); err != nil {
				return err
			}
		}
	}
	return nil
}
