package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"primaldimer-core/amplicon"
	"primaldimer-core/dimer"
	"primaldimer-core/kmer"
	"primaldimer/pkg/api"
)

func fixturePair(t *testing.T) amplicon.Pair {
	t.Helper()
	f, err := kmer.NewFKmer(30, []string{"ACGTACGTACGT", "ACGTACGTAC"})
	if err != nil {
		t.Fatal(err)
	}
	r, err := kmer.NewRKmer(250, []string{"GGCCTTAA"})
	if err != nil {
		t.Fatal(err)
	}
	return amplicon.Pair{F: f, R: r}
}

func TestHeaders_Stable(t *testing.T) {
	const want = "f_start\tf_end\tf_seqs\tr_start\tr_end\tr_seqs\tamplicon_size"
	if PairTSVHeader != want {
		t.Fatalf("PairTSVHeader changed:\n got:  %q\n want: %q", PairTSVHeader, want)
	}
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatBED != "bed" {
		t.Fatalf("output format constants changed")
	}
}

func TestWritePairsText(t *testing.T) {
	p := fixturePair(t)
	var b bytes.Buffer
	if err := WritePairsText(&b, []amplicon.Pair{p}, true, func(amplicon.Pair) string { return "# block\n" }); err != nil {
		t.Fatal(err)
	}
	want := PairTSVHeader + "\n" +
		"18\t30\tACGTACGTAC,ACGTACGTACGT\t250\t258\tGGCCTTAA\t232\n" +
		"# block\n"
	if b.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", b.String(), want)
	}

	ch := make(chan amplicon.Pair, 1)
	ch <- p
	close(ch)
	var s bytes.Buffer
	if err := StreamPairsText(&s, ch, false, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Count(s.String(), "\n") != 1 || strings.HasPrefix(s.String(), "f_start") {
		t.Fatalf("stream: %q", s.String())
	}
}

func TestWritePairsBED(t *testing.T) {
	p := fixturePair(t)
	var b bytes.Buffer
	opt := BEDOptions{Chrom: "MN908947.3", Prefix: "scheme", Pool: 2}
	if err := WritePairsBED(&b, []amplicon.Pair{p, p}, opt); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("want 6 rows, got %d:\n%s", len(lines), b.String())
	}
	want := []string{
		"MN908947.3\t20\t30\tscheme_1_LEFT_1\t2\t+\tACGTACGTAC",
		"MN908947.3\t18\t30\tscheme_1_LEFT_2\t2\t+\tACGTACGTACGT",
		"MN908947.3\t250\t258\tscheme_1_RIGHT_1\t2\t-\tGGCCTTAA",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("row %d:\n got:  %q\n want: %q", i, lines[i], w)
		}
	}
	if !strings.Contains(lines[3], "scheme_2_LEFT_1") {
		t.Fatalf("second pair not numbered: %q", lines[3])
	}
}

func TestWritePairsJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WritePairsJSON(&b, []amplicon.Pair{fixturePair(t)}); err != nil {
		t.Fatal(err)
	}
	var got []api.PairV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil || len(got) != 1 {
		t.Fatalf("json: %v %v", err, got)
	}
	if got[0].FStart != 18 || got[0].REnd != 258 || got[0].AmpliconSize != 232 || len(got[0].FSeqs) != 2 {
		t.Fatalf("unexpected: %+v", got[0])
	}
}

func TestScoreReport(t *testing.T) {
	cases := []struct {
		r        ScoreReport
		text     string
		hasScore bool
	}{
		{ScoreReport{Score: -1.5, Extendable: true}, "-1.5\n", true},
		{ScoreReport{}, "NA\n", false},
		{ScoreReport{Legacy: true}, "100\n", true},
	}
	for _, tc := range cases {
		var b bytes.Buffer
		if err := tc.r.WriteText(&b); err != nil {
			t.Fatal(err)
		}
		if b.String() != tc.text {
			t.Fatalf("text: got %q want %q", b.String(), tc.text)
		}
		if v := tc.r.ToAPI(); (v.Score != nil) != tc.hasScore {
			t.Fatalf("api score presence for %+v", tc.r)
		}
	}
	if v := (ScoreReport{Legacy: true}).ToAPI(); *v.Score != dimer.LegacyNoScore || v.Extendable {
		t.Fatalf("legacy api: %+v", v)
	}
}

func TestInteractionReport(t *testing.T) {
	r := InteractionReport{
		Interact: true, Found: true,
		Hit: dimer.Hit{Score: -41.25, Offset: -19, Swapped: true},
	}
	var b bytes.Buffer
	if err := r.WriteText(&b, true); err != nil {
		t.Fatal(err)
	}
	want := InteractionTSVHeader + "\ntrue\t-41.25\tseq2\t-19\n"
	if b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
	v := r.ToAPI()
	if v.Worst == nil || *v.Worst != -41.25 || *v.Offset != -19 || v.Extending != "seq2" {
		t.Fatalf("api: %+v", v)
	}

	b.Reset()
	none := InteractionReport{}
	if err := none.WriteText(&b, false); err != nil {
		t.Fatal(err)
	}
	if b.String() != "false\tNA\tNA\tNA\n" {
		t.Fatalf("none: %q", b.String())
	}
	if v := none.ToAPI(); v.Worst != nil || v.Offset != nil {
		t.Fatalf("none api: %+v", v)
	}
}
