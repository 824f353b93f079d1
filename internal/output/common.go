package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatBED   = "bed"
)

// PairTSVHeader is the canonical header row for text/TSV pair outputs.
// Keep this as the single source of truth; all writers should use it.
const PairTSVHeader = "f_start\tf_end\tf_seqs\tr_start\tr_end\tr_seqs\tamplicon_size"

// InteractionTSVHeader heads the interact report.
const InteractionTSVHeader = "interact\tworst_score\textending\toffset"
