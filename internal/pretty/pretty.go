package pretty

import (
	"fmt"
	"strings"

	"primaldimer-core/amplicon"
	"primaldimer-core/base"
	"primaldimer-core/dimer"
)

// Options control the ASCII rendering.
type Options struct {
	MatchGlyph    string // default "|"
	MismatchGlyph string // default " "
	LinePrefix    string // may be empty
}

// DefaultOptions keeps the look shared with the TSV comment lines.
var DefaultOptions = Options{
	MatchGlyph:    "|",
	MismatchGlyph: " ",
	LinePrefix:    "# ",
}

func (o Options) withDefaults() Options {
	if o.MatchGlyph == "" {
		o.MatchGlyph = DefaultOptions.MatchGlyph
	}
	if o.MismatchGlyph == "" {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	return o
}

const (
	prefixTop    = "5'-"
	suffixTop    = "-3'"
	prefixBottom = "3'-"
	suffixBottom = "-5'"
)

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func pairs(a, b byte) bool {
	switch a {
	case 'A':
		return b == 'T'
	case 'T':
		return b == 'A'
	case 'C':
		return b == 'G'
	case 'G':
		return b == 'C'
	}
	return false
}

// RenderAlignment draws seq1 (5'→3') over seq2 (given 5'→3', drawn
// 3'→5') at offset, with a bar under every complementary position:
//
//	# 5'-ACGT-3'
//	#    ||||
//	# 3'-TGCA-5'
//
// offset has the meaning of dimer.ScoreAtOffset: seq1[x] faces the
// reversed seq2 at x+offset.
func RenderAlignment(seq1, seq2 string, offset int, opt Options) string {
	opt = opt.withDefaults()
	rev := reverseString(seq2)

	pad1, pad2 := 0, 0
	if offset >= 0 {
		pad1 = offset
	} else {
		pad2 = -offset
	}

	var bars strings.Builder
	bars.WriteString(strings.Repeat(" ", pad1+len(prefixTop)))
	for x := 0; x < len(seq1); x++ {
		j := x + offset
		switch {
		case j < 0 || j >= len(rev):
			bars.WriteString(" ")
		case pairs(seq1[x], rev[j]):
			bars.WriteString(opt.MatchGlyph)
		default:
			bars.WriteString(opt.MismatchGlyph)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s%s%s\n", opt.LinePrefix, strings.Repeat(" ", pad1), prefixTop, seq1, suffixTop)
	fmt.Fprintf(&b, "%s\n", strings.TrimRight(opt.LinePrefix+bars.String(), " "))
	fmt.Fprintf(&b, "%s%s%s%s%s\n", opt.LinePrefix, strings.Repeat(" ", pad2), prefixBottom, rev, suffixBottom)
	return b.String()
}

// RenderHit draws the strongest interaction between seq1 and seq2, with
// the extending strand on top, followed by a summary line.
func RenderHit(seq1, seq2 string, h dimer.Hit, opt Options) string {
	opt = opt.withDefaults()
	top, bottom, ext := seq1, seq2, "seq1"
	if h.Swapped {
		top, bottom, ext = seq2, seq1, "seq2"
	}
	var b strings.Builder
	b.WriteString(RenderAlignment(top, bottom, h.Offset, opt))
	fmt.Fprintf(&b, "%sscore=%g offset=%d extending=%s\n", opt.LinePrefix, h.Score, h.Offset, ext)
	b.WriteString(strings.TrimRight(opt.LinePrefix, " ") + "\n")
	return b.String()
}

// RenderNone is printed when no offset can extend.
func RenderNone(opt Options) string {
	opt = opt.withDefaults()
	return opt.LinePrefix + "(no extendable offset)\n" + strings.TrimRight(opt.LinePrefix, " ") + "\n"
}

// RenderPair draws the strongest interaction over every forward/reverse
// variant combination of p.
func RenderPair(sc *dimer.Scorer, p amplicon.Pair, opt Options) string {
	var (
		best   dimer.Hit
		fs, rs base.Seq
		found  bool
	)
	for _, f := range p.F.Seqs {
		for _, r := range p.R.Seqs {
			h, ok := sc.Worst(f, r)
			if ok && (!found || h.Score < best.Score) {
				best, fs, rs, found = h, f, r, true
			}
		}
	}
	if !found {
		return RenderNone(opt)
	}
	return RenderHit(base.Decode(fs), base.Decode(rs), best, opt)
}
