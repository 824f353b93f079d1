// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// PairWriters maps an output format onto its handler. Handlers register
// in init() blocks.
var PairWriters = map[string]func(w io.Writer, args pairArgs) error{}

// RegisterPair installs fn for format (last wins).
func RegisterPair(format string, fn func(io.Writer, pairArgs) error) { PairWriters[format] = fn }

// WritePairs dispatches to the handler registered for format.
func WritePairs(format string, w io.Writer, args pairArgs) error {
	fn, ok := PairWriters[format]
	if !ok {
		return fmt.Errorf("unknown pair format %q (no writer registered)", format)
	}
	return fn(w, args)
}
