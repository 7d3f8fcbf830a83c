package swipe

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-swipe/seq"
)

// Interval is a half-open coordinate range [Begin, End).
type Interval struct {
	Begin, End int
}

// Len returns End - Begin.
func (iv Interval) Len() int { return iv.End - iv.Begin }

// EditOp is one alignment column type.
type EditOp uint8

const (
	OpMatch      EditOp = iota // query and subject residues are identical
	OpSubstitute               // residues differ
	OpInsertion                // subject residue aligned to a gap in the query
	OpDeletion                 // query residue aligned to a gap in the subject
)

var opChars = [...]byte{OpMatch: 'M', OpSubstitute: 'S', OpInsertion: 'I', OpDeletion: 'D'}

// EditRun is a run of identical edit operations.
type EditRun struct {
	Op    EditOp
	Count int
}

// Transcript is a run-length encoded alignment path from begin to end.
type Transcript []EditRun

func (tr Transcript) push(op EditOp) Transcript {
	if n := len(tr); n > 0 && tr[n-1].Op == op {
		tr[n-1].Count++
		return tr
	}
	return append(tr, EditRun{Op: op, Count: 1})
}

// String formats the transcript as a CIGAR-like string, e.g. "12M1S3M2I".
func (tr Transcript) String() string {
	var b strings.Builder
	for _, r := range tr {
		b.WriteString(strconv.Itoa(r.Count))
		b.WriteByte(opChars[r.Op])
	}
	return b.String()
}

// Hsp is one local alignment reported by the engine.
//
// Score, TargetID, Frame, QueryEnd and SubjectEnd are always set. The ranges,
// the transcript and the column statistics are only filled when traceback was
// requested.
type Hsp struct {
	Score    int
	TargetID int
	Frame    seq.Frame

	// Exclusive end coordinates of the best-scoring cell.
	QueryEnd   int
	SubjectEnd int

	QueryRange   Interval
	SubjectRange Interval
	Transcript   Transcript

	Length      int
	Identities  int
	Mismatches  int
	Gaps        int
	GapOpenings int
}

// HasTraceback reports whether the Hsp carries a transcript.
func (h *Hsp) HasTraceback() bool { return h.Transcript != nil }
