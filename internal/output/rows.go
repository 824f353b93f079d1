// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"primaldimer-core/amplicon"
)

// FormatScore prints a score with the shortest exact representation.
func FormatScore(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// FormatPairRowTSV returns the pair columns (no trailing newline).
func FormatPairRowTSV(p amplicon.Pair) string {
	return fmt.Sprintf("%d\t%d\t%s\t%d\t%d\t%s\t%d",
		p.F.Start(), p.F.End, strings.Join(p.F.SeqStrings(), ","),
		p.R.Start, p.R.End(), strings.Join(p.R.SeqStrings(), ","),
		p.AmpliconSize(),
	)
}
