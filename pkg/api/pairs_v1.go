// pkg/api/pairs_v1.go
package api

// PairV1 is the stable JSON/JSONL schema for one primer pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Coordinates are 0-based, half-open.
type PairV1 struct {
	FStart       int      `json:"f_start"` // leftmost variant start
	FEnd         int      `json:"f_end"`
	FSeqs        []string `json:"f_seqs"`
	RStart       int      `json:"r_start"`
	REnd         int      `json:"r_end"` // rightmost variant end
	RSeqs        []string `json:"r_seqs"`
	AmpliconSize int      `json:"amplicon_size"`
}
