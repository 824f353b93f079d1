// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"primaldimer-core/amplicon"
	"primaldimer/internal/output"
)

// Pooled 64 KiB buffers shared across JSONL writers.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// startJSONL spins up a JSONL encoder goroutine for values of type T.
// encode converts one value to its wire type and writes it.
func startJSONL[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue // drain so senders never block
			}
			err = encode(enc, v)
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}

// StartPairJSONLWriter streams each pair as one JSON line (v1).
func StartPairJSONLWriter(out io.Writer, bufSize int) (chan<- amplicon.Pair, <-chan error) {
	return startJSONL[amplicon.Pair](out, bufSize,
		func(enc *json.Encoder, p amplicon.Pair) error {
			return enc.Encode(output.ToAPIPair(p))
		},
	)
}
