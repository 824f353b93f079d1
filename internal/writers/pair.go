// internal/writers/pair.go
package writers

import (
	"io"

	"primaldimer-core/amplicon"
	"primaldimer/internal/common"
	"primaldimer/internal/output"
)

// PairOptions controls presentation of pair outputs.
type PairOptions struct {
	Sort   bool
	Header bool
	// Render, when set, appends a block after each text row.
	Render func(amplicon.Pair) string
	BED    output.BEDOptions
}

type pairArgs struct {
	PairOptions
	In <-chan amplicon.Pair
}

func drainPairs(ch <-chan amplicon.Pair) []amplicon.Pair {
	list := make([]amplicon.Pair, 0, 128)
	for p := range ch {
		list = append(list, p)
	}
	return list
}

func init() {
	// JSON array
	RegisterPair(output.FormatJSON, func(w io.Writer, args pairArgs) error {
		list := drainPairs(args.In)
		if args.Sort {
			common.SortPairs(list)
		}
		return output.WritePairsJSON(w, list)
	})

	// JSONL streaming
	RegisterPair(output.FormatJSONL, func(w io.Writer, args pairArgs) error {
		var src <-chan amplicon.Pair = args.In
		if args.Sort {
			list := drainPairs(args.In)
			common.SortPairs(list)
			ch := make(chan amplicon.Pair, len(list))
			for _, p := range list {
				ch <- p
			}
			close(ch)
			src = ch
		}
		pipe, done := StartPairJSONLWriter(w, 64)
		for p := range src {
			pipe <- p
		}
		close(pipe)
		return <-done
	})

	// BED (stream or buffered+sort)
	RegisterPair(output.FormatBED, func(w io.Writer, args pairArgs) error {
		if args.Sort {
			list := drainPairs(args.In)
			common.SortPairs(list)
			return output.WritePairsBED(w, list, args.BED)
		}
		return output.StreamPairsBED(w, args.In, args.BED)
	})

	// TEXT/TSV (+ optional pretty blocks)
	RegisterPair(output.FormatText, func(w io.Writer, args pairArgs) error {
		if args.Sort {
			list := drainPairs(args.In)
			common.SortPairs(list)
			return output.WritePairsText(w, list, args.Header, args.Render)
		}
		return output.StreamPairsText(w, args.In, args.Header, args.Render)
	})
}

// StartPairWriter spins up a writer goroutine for pairs. Close the
// returned channel, then read the error channel once.
func StartPairWriter(out io.Writer, format string, opt PairOptions, bufSize int) (chan<- amplicon.Pair, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan amplicon.Pair, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WritePairs(format, out, pairArgs{PairOptions: opt, In: in})
		for range in {
			// drain after a failed write so senders never block
		}
		errCh <- err
	}()
	return in, errCh
}
