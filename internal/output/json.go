// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"primaldimer-core/amplicon"
	"primaldimer/pkg/api"
)

// ToAPIPair converts a domain Pair to the stable wire schema (v1).
func ToAPIPair(p amplicon.Pair) api.PairV1 {
	return api.PairV1{
		FStart:       p.F.Start(),
		FEnd:         p.F.End,
		FSeqs:        p.F.SeqStrings(),
		RStart:       p.R.Start,
		REnd:         p.R.End(),
		RSeqs:        p.R.SeqStrings(),
		AmpliconSize: p.AmpliconSize(),
	}
}

func toAPIPairs(list []amplicon.Pair) []api.PairV1 {
	out := make([]api.PairV1, 0, len(list))
	for _, p := range list {
		out = append(out, ToAPIPair(p))
	}
	return out
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WritePairsJSON writes a single JSON array of v1 pairs (pretty-indented).
func WritePairsJSON(w io.Writer, list []amplicon.Pair) error {
	return EncodePretty(w, toAPIPairs(list))
}
