// pkg/api/score_v1.go
package api

// ScoreV1 is one offset score. Score is null when seq1 cannot extend
// from its 3' end at Offset.
type ScoreV1 struct {
	Seq1       string   `json:"seq1"`
	Seq2       string   `json:"seq2"`
	Offset     int      `json:"offset"`
	Score      *float64 `json:"score"`
	Extendable bool     `json:"extendable"`
}

// InteractionV1 reports whether two sequences form a dimer at or below
// Threshold, with the strongest interaction found in either orientation.
type InteractionV1 struct {
	Seq1      string   `json:"seq1"`
	Seq2      string   `json:"seq2"`
	Threshold float64  `json:"threshold"`
	Interact  bool     `json:"interact"`
	Worst     *float64 `json:"worst_score"`
	Extending string   `json:"extending,omitempty"` // "seq1" | "seq2"
	Offset    *int     `json:"offset,omitempty"`
}

// PoolsV1 reports whether any member of Pool1 interacts with any member of Pool2.
type PoolsV1 struct {
	Pool1     int     `json:"pool1_size"`
	Pool2     int     `json:"pool2_size"`
	Threshold float64 `json:"threshold"`
	Interact  bool    `json:"interact"`
}
