// core/base/base.go
// Dense 2-bit nucleotide codec used by the dimer scorer.
//
// Encoding: A=0, C=1, G=2, T=3. Only the four canonical bases are accepted;
// ambiguity codes must be expanded by the caller before encoding.

package base

import (
	"errors"
	"fmt"
)

// Canonical base codes.
const (
	A byte = 0
	C byte = 1
	G byte = 2
	T byte = 3
)

// Seq is an encoded sequence, 5'→3'. Values are always in 0..3.
type Seq []byte

// ErrEmpty is returned when encoding an empty sequence.
var ErrEmpty = errors.New("empty sequence")

// InvalidBaseError reports a character outside A/C/G/T.
type InvalidBaseError struct {
	Seq  string // offending raw sequence
	Pos  int    // 0-based index of the first bad character
	Char byte
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("non-ACGT base %q at %d in %s", e.Char, e.Pos+1, e.Seq)
}

var encodeTable = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	t['A'], t['C'], t['G'], t['T'] = int8(A), int8(C), int8(G), int8(T)
	return t
}()

const decodeTable = "ACGT"

// Encode maps s onto base codes. Lowercase is rejected like any other
// non-canonical character.
func Encode(s string) (Seq, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	out := make(Seq, len(s))
	for i := 0; i < len(s); i++ {
		v := encodeTable[s[i]]
		if v < 0 {
			return nil, &InvalidBaseError{Seq: s, Pos: i, Char: s[i]}
		}
		out[i] = byte(v)
	}
	return out, nil
}

// EncodeAll encodes every sequence, stopping at the first failure.
func EncodeAll(seqs []string) ([]Seq, error) {
	out := make([]Seq, 0, len(seqs))
	for _, s := range seqs {
		e, err := Encode(s)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Decode is the inverse of Encode.
func Decode(s Seq) string {
	b := make([]byte, len(s))
	for i, v := range s {
		b[i] = decodeTable[v&3]
	}
	return string(b)
}

func (s Seq) String() string { return Decode(s) }

// Complement returns the Watson–Crick partner of a base code.
func Complement(b byte) byte { return 3 - b }

// Reverse returns a reversed copy of s.
func Reverse(s Seq) Seq {
	n := len(s)
	out := make(Seq, n)
	for i := 0; i < n; i++ {
		out[i] = s[n-1-i]
	}
	return out
}

// RevComp returns the reverse complement of s.
func RevComp(s Seq) Seq {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make(Seq, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(s[n-1-i])
	}
	return out
}

// IsStrong reports whether b is C or G.
func IsStrong(b byte) bool { return b == C || b == G }
