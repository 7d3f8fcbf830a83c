package swipe

import "slices"

// traceback walks the direction matrix of lane l back from the best cell
// (bi, bk) to the start of the local alignment and fills the coordinate
// ranges, transcript and column statistics of h.
func traceback(p *params, tg *DpTarget, dirs []byte, width, lanes, l, bi, bk int, h *Hsp) {
	h.Transcript = Transcript{}
	if bi < 0 {
		return
	}

	const (
		inH = iota
		inE
		inF
	)

	i, k := bi, bk
	qBegin := bi + 1
	sBegin := bi + tg.DBegin + bk + 1

	// Operations are collected end to start and reversed at the end.
	var rev []EditOp
	state := inH
	for i >= 0 && k >= 0 && k < width {
		d := dirs[(i*width+k)*lanes+l]
		j := i + tg.DBegin + k
		switch state {
		case inH:
			switch d & srcMask {
			case srcZero:
				i = -1
				continue
			case srcDiag:
				if p.query[i] == tg.Subject[j] {
					rev = append(rev, OpMatch)
				} else {
					rev = append(rev, OpSubstitute)
				}
				qBegin, sBegin = i, j
				i--
			case srcE:
				state = inE
			case srcF:
				state = inF
			}
		case inE:
			rev = append(rev, OpInsertion)
			sBegin = j
			if d&eExtended == 0 {
				state = inH
			}
			k--
		case inF:
			rev = append(rev, OpDeletion)
			qBegin = i
			if d&fExtended == 0 {
				state = inH
			}
			i--
			k++
		}
	}

	slices.Reverse(rev)
	prev := OpMatch
	for _, op := range rev {
		h.Transcript = h.Transcript.push(op)
		h.Length++
		switch op {
		case OpMatch:
			h.Identities++
		case OpSubstitute:
			h.Mismatches++
		case OpInsertion, OpDeletion:
			h.Gaps++
			if op != prev {
				h.GapOpenings++
			}
		}
		prev = op
	}

	h.QueryRange = Interval{Begin: qBegin, End: bi + 1}
	h.SubjectRange = Interval{Begin: sBegin, End: bi + tg.DBegin + bk + 1}
}
