// internal/output/report.go
package output

import (
	"fmt"
	"io"

	"primaldimer-core/dimer"
	"primaldimer/pkg/api"
)

// ScoreReport is the result of scoring two sequences at one offset.
type ScoreReport struct {
	Seq1, Seq2 string // both 5'→3'
	Offset     int
	Score      float64
	Extendable bool
	// Legacy prints dimer.LegacyNoScore for non-extendable offsets.
	Legacy bool
}

func (r ScoreReport) value() (float64, bool) {
	if r.Extendable {
		return r.Score, true
	}
	if r.Legacy {
		return dimer.LegacyNoScore, true
	}
	return 0, false
}

// ToAPI converts r to the wire schema.
func (r ScoreReport) ToAPI() api.ScoreV1 {
	v := api.ScoreV1{Seq1: r.Seq1, Seq2: r.Seq2, Offset: r.Offset, Extendable: r.Extendable}
	if s, ok := r.value(); ok {
		v.Score = &s
	}
	return v
}

// WriteText prints the score, or NA.
func (r ScoreReport) WriteText(w io.Writer) error {
	s := "NA"
	if v, ok := r.value(); ok {
		s = FormatScore(v)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// InteractionReport pairs the thresholded verdict with the strongest hit.
type InteractionReport struct {
	Seq1, Seq2 string
	Threshold  float64
	Interact   bool
	Hit        dimer.Hit
	Found      bool // Hit is meaningful
}

// Extending names the strand that primes off the other.
func (r InteractionReport) Extending() string {
	if r.Hit.Swapped {
		return "seq2"
	}
	return "seq1"
}

func (r InteractionReport) ToAPI() api.InteractionV1 {
	v := api.InteractionV1{Seq1: r.Seq1, Seq2: r.Seq2, Threshold: r.Threshold, Interact: r.Interact}
	if r.Found {
		score, off := r.Hit.Score, r.Hit.Offset
		v.Worst, v.Offset = &score, &off
		v.Extending = r.Extending()
	}
	return v
}

// WriteText prints a TSV row, with the header when asked.
func (r InteractionReport) WriteText(w io.Writer, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, InteractionTSVHeader); err != nil {
			return err
		}
	}
	score, ext, off := "NA", "NA", "NA"
	if r.Found {
		score, ext, off = FormatScore(r.Hit.Score), r.Extending(), fmt.Sprint(r.Hit.Offset)
	}
	_, err := fmt.Fprintf(w, "%t\t%s\t%s\t%s\n", r.Interact, score, ext, off)
	return err
}

// PoolsReport is the verdict for two sequence pools.
type PoolsReport struct {
	Pool1, Pool2 int
	Threshold    float64
	Interact     bool
}

func (r PoolsReport) ToAPI() api.PoolsV1 {
	return api.PoolsV1{Pool1: r.Pool1, Pool2: r.Pool2, Threshold: r.Threshold, Interact: r.Interact}
}

func (r PoolsReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%t\n", r.Interact)
	return err
}
