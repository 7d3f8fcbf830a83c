package swipe

import (
	"github.com/cwbudde/algo-swipe/dp/scorevec"
	"github.com/cwbudde/algo-swipe/dp/stats"
	"github.com/cwbudde/algo-swipe/score"
	"github.com/cwbudde/algo-swipe/seq"
)

// params is the read-only state shared by every batch of one run.
type params struct {
	query     seq.Sequence
	frame     seq.Frame
	bias      []int8
	scheme    score.Scheme
	cutoff    int
	traceback bool
}

// output collects the results of one or more batches. It is owned by a
// single goroutine until merged.
type output struct {
	hsps     []Hsp
	overflow []DpTarget
	stat     stats.Statistics
}

// Direction bits recorded per cell and lane when traceback is requested.
const (
	srcZero byte = iota
	srcDiag
	srcE
	srcF

	srcMask   byte = 3
	eExtended byte = 1 << 2
	fExtended byte = 1 << 3
)

// batchKernel returns the per-batch function of tier t, with T its lane type.
func batchKernel[T scorevec.Lane](p *params, t Tier) func([]DpTarget, *output) {
	return func(batch []DpTarget, out *output) {
		runBatch[T](p, t, batch, out)
	}
}

// runBatch performs one banded Smith-Waterman sweep over up to Lanes[T]()
// targets in lockstep.
//
// The band is walked in (i, k) coordinates with j = i + DBegin + k, so the
// diagonal predecessor of (i, k) is (i-1, k), the cell above is (i-1, k+1)
// and the cell to the left is (i, k-1). Lanes whose band is narrower than
// the widest band, or whose j falls outside the subject, are masked.
func runBatch[T scorevec.Lane](p *params, t Tier, batch []DpTarget, out *output) {
	lanes := scorevec.Lanes[T]()
	if len(batch) > lanes {
		panic("swipe: batch larger than lane count")
	}
	n := len(batch)
	qlen := len(p.query)

	width := 0
	for _, tg := range batch {
		width = max(width, tg.BandWidth())
	}

	gapOpen := scorevec.FromInt[T](p.scheme.GapOpen() + p.scheme.GapExtend())
	gapExt := scorevec.FromInt[T](p.scheme.GapExtend())
	negInf := scorevec.Sub[T](0, gapOpen)
	maskedSubst := scorevec.Min[T]()

	// Rows carry one extra column holding the out-of-band cell above the
	// last band column.
	cols := width + 1
	hPrev := make([]T, cols*lanes)
	hCur := make([]T, cols*lanes)
	fPrev := make([]T, cols*lanes)
	fCur := make([]T, cols*lanes)
	for i := range fPrev {
		fPrev[i] = negInf
		fCur[i] = negInf
	}

	e := scorevec.New[T]()
	eExt := scorevec.New[T]()
	hLeft := scorevec.New[T]()
	subst := scorevec.New[T]()
	diag := scorevec.New[T]()
	eOpen := scorevec.New[T]()
	fOpen := scorevec.New[T]()
	f := scorevec.New[T]()
	h := scorevec.New[T]()

	best := scorevec.New[T]()
	bestI := make([]int, lanes)
	bestK := make([]int, lanes)
	for l := range bestI {
		bestI[l] = -1
	}

	var dirs []byte
	if p.traceback {
		dirs = make([]byte, qlen*width*lanes)
	}

	var profile [seq.AlphabetSize]T
	var cells uint64
	valid := make([]bool, lanes)

	for i := 0; i < qlen; i++ {
		var b int
		if p.bias != nil {
			b = int(p.bias[i])
		}
		qi := p.query[i]
		for a := range profile {
			profile[a] = scorevec.FromInt[T](p.scheme.Score(qi, seq.Letter(a)) + b)
		}

		e.Fill(negInf)
		hLeft.Fill(0)
		for k := 0; k < width; k++ {
			for l := 0; l < lanes; l++ {
				valid[l] = false
				subst[l] = maskedSubst
				if l >= n {
					continue
				}
				tg := &batch[l]
				j := i + tg.DBegin + k
				if k >= tg.BandWidth() || j < 0 || j >= len(tg.Subject) {
					continue
				}
				valid[l] = true
				subst[l] = profile[tg.Subject[j]]
				cells++
			}

			cur := scorevec.Vector[T](hPrev[k*lanes : (k+1)*lanes])
			up := scorevec.Vector[T](hPrev[(k+1)*lanes : (k+2)*lanes])
			upF := scorevec.Vector[T](fPrev[(k+1)*lanes : (k+2)*lanes])

			// E: gap in the query, entered from the left.
			eOpen.SubScalar(hLeft, gapOpen)
			eExt.SubScalar(e, gapExt)
			// F: gap in the subject, entered from above.
			fOpen.SubScalar(up, gapOpen)
			f.SubScalar(upF, gapExt)

			var dirRow []byte
			if dirs != nil {
				dirRow = dirs[(i*width+k)*lanes : (i*width+k+1)*lanes]
				for l := range dirRow {
					var d byte
					if eExt[l] > eOpen[l] {
						d |= eExtended
					}
					if f[l] > fOpen[l] {
						d |= fExtended
					}
					dirRow[l] = d
				}
			}

			e.Max(eOpen, eExt)
			f.Max(fOpen, f)
			diag.Adds(cur, subst)

			h.Max(diag, e)
			h.Max(h, f)

			for l := 0; l < lanes; l++ {
				if !valid[l] {
					h[l] = 0
					e[l] = negInf
					f[l] = negInf
					if dirRow != nil {
						dirRow[l] = srcZero
					}
					continue
				}
				if h[l] <= 0 {
					h[l] = 0
				}
				if dirRow != nil {
					var src byte
					switch {
					case h[l] == 0:
						src = srcZero
					case h[l] == diag[l]:
						src = srcDiag
					case h[l] == e[l]:
						src = srcE
					default:
						src = srcF
					}
					dirRow[l] |= src
				}
				if h[l] > best[l] {
					best[l] = h[l]
					bestI[l] = i
					bestK[l] = k
				}
			}

			copy(hCur[k*lanes:(k+1)*lanes], h)
			copy(fCur[k*lanes:(k+1)*lanes], f)
			copy(hLeft, h)
		}

		hPrev, hCur = hCur, hPrev
		fPrev, fCur = fCur, fPrev
	}

	out.stat.Inc(stats.Cells, cells)

	saturated := best.Saturated()
	for l := 0; l < n; l++ {
		tg := batch[l]
		if saturated.Has(l) {
			out.overflow = append(out.overflow, tg)
			if c, ok := t.Escalated(); ok {
				out.stat.Inc(c, 1)
			}
			continue
		}
		out.stat.Inc(t.Resolved(), 1)
		s := int(best[l])
		if s < p.cutoff {
			continue
		}

		hsp := Hsp{
			Score:    s,
			TargetID: tg.ID,
			Frame:    p.frame,
		}
		if bestI[l] >= 0 {
			hsp.QueryEnd = bestI[l] + 1
			hsp.SubjectEnd = bestI[l] + tg.DBegin + bestK[l] + 1
		}
		if p.traceback {
			traceback(p, &tg, dirs, width, lanes, l, bestI[l], bestK[l], &hsp)
		}
		out.hsps = append(out.hsps, hsp)
		out.stat.Inc(stats.Hsps, 1)
	}
}
