// Package seq defines residue codes, immutable sequences and translation
// frames consumed by the DP engine.
//
// Residues are stored as small integer codes (Letter) indexing the amino acid
// alphabet. The engine treats a Sequence as read-only for its whole lifetime;
// callers own the backing array.
package seq

import (
	"errors"
	"fmt"
	"strings"
)

// Letter is one encoded residue.
type Letter = byte

// Alphabet lists the residue characters in code order.
const Alphabet = "ARNDCQEGHILKMFPSTWYVBJZX*"

// AlphabetSize is the number of distinct residue codes.
const AlphabetSize = len(Alphabet)

// Unknown is the code for 'X'.
const Unknown Letter = 23

// MaxLength bounds the length of sequences accepted by the engine. It keeps
// the widest score tier free of overflow: MaxLength * 254 < 2^31.
const MaxLength = 1 << 22

// ErrInvalidResidue is returned when a character is not part of Alphabet.
var ErrInvalidResidue = errors.New("seq: invalid residue")

var codeOf = func() [256]int16 {
	var tbl [256]int16
	for i := range tbl {
		tbl[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		tbl[c] = int16(i)
		if c >= 'A' && c <= 'Z' {
			tbl[c+'a'-'A'] = int16(i)
		}
	}
	// U (selenocysteine) and O (pyrrolysine) are scored as X.
	for _, c := range []byte("UuOo") {
		tbl[c] = int16(Unknown)
	}
	return tbl
}()

// Sequence is an encoded residue string.
type Sequence []Letter

// Encode converts text into a Sequence. Whitespace is not permitted.
func Encode(s string) (Sequence, error) {
	if len(s) > MaxLength {
		return nil, fmt.Errorf("seq: length %d exceeds maximum %d", len(s), MaxLength)
	}
	out := make(Sequence, len(s))
	for i := 0; i < len(s); i++ {
		code := codeOf[s[i]]
		if code < 0 {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidResidue, s[i], i)
		}
		out[i] = Letter(code)
	}
	return out, nil
}

// MustEncode is like Encode but panics on error. Intended for tests and
// literals.
func MustEncode(s string) Sequence {
	out, err := Encode(s)
	if err != nil {
		panic(err)
	}
	return out
}

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s) }

// String decodes the sequence back to text.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, l := range s {
		if int(l) < AlphabetSize {
			b.WriteByte(Alphabet[l])
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
