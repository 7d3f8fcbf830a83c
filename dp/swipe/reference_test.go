package swipe

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/cwbudde/algo-swipe/internal/cpu"
	"github.com/cwbudde/algo-swipe/internal/testutil"
	"github.com/cwbudde/algo-swipe/score"
	"github.com/cwbudde/algo-swipe/seq"
)

// allTiers enables every tier regardless of the host CPU.
var allTiers = cpu.Features{HasSSE2: true, HasSSE41: true, Architecture: "test"}

// refResult is the outcome of the scalar reference for one target.
type refResult struct {
	score      int
	endI, endJ int // exclusive; 0 when score is 0
}

// refBanded is a plain int banded Smith-Waterman with the same recurrence
// and tie-breaking as the kernel, used as ground truth.
func refBanded(q seq.Sequence, tg DpTarget, s score.Scheme, bias []int8) refResult {
	const negInf = -1 << 40
	open := s.GapOpen() + s.GapExtend()
	ext := s.GapExtend()
	qlen, slen := len(q), len(tg.Subject)

	grid := func() [][]int {
		g := make([][]int, qlen)
		for i := range g {
			g[i] = make([]int, slen)
		}
		return g
	}
	H, E, F := grid(), grid(), grid()
	inBand := make([][]bool, qlen)
	for i := range inBand {
		inBand[i] = make([]bool, slen)
	}
	at := func(g [][]int, i, j, def int) int {
		if i < 0 || j < 0 || i >= qlen || j >= slen || !inBand[i][j] {
			return def
		}
		return g[i][j]
	}

	var res refResult
	for i := 0; i < qlen; i++ {
		for k := 0; k < tg.BandWidth(); k++ {
			j := i + tg.DBegin + k
			if j < 0 || j >= slen {
				continue
			}
			inBand[i][j] = true
			e := max(at(H, i, j-1, 0)-open, at(E, i, j-1, negInf)-ext)
			f := max(at(H, i-1, j, 0)-open, at(F, i-1, j, negInf)-ext)
			sub := s.Score(q[i], tg.Subject[j])
			if bias != nil {
				sub += int(bias[i])
			}
			h := max(0, at(H, i-1, j-1, 0)+sub, e, f)
			H[i][j], E[i][j], F[i][j] = h, e, f
			if h > res.score {
				res = refResult{score: h, endI: i + 1, endJ: j + 1}
			}
		}
	}
	return res
}

// replay recomputes an Hsp's score from its transcript.
func replay(t *testing.T, q seq.Sequence, tg DpTarget, s score.Scheme, bias []int8, h Hsp) int {
	t.Helper()
	i, j := h.QueryRange.Begin, h.SubjectRange.Begin
	total := 0
	for _, run := range h.Transcript {
		switch run.Op {
		case OpMatch, OpSubstitute:
			for n := 0; n < run.Count; n++ {
				if (q[i] == tg.Subject[j]) != (run.Op == OpMatch) {
					t.Fatalf("transcript op %c disagrees with residues at q%d/s%d", opChars[run.Op], i, j)
				}
				total += s.Score(q[i], tg.Subject[j])
				if bias != nil {
					total += int(bias[i])
				}
				i++
				j++
			}
		case OpInsertion:
			total -= s.GapOpen() + run.Count*s.GapExtend()
			j += run.Count
		case OpDeletion:
			total -= s.GapOpen() + run.Count*s.GapExtend()
			i += run.Count
		}
	}
	if i != h.QueryRange.End || j != h.SubjectRange.End {
		t.Fatalf("transcript ends at q%d/s%d, ranges end at q%d/s%d", i, j, h.QueryRange.End, h.SubjectRange.End)
	}
	return total
}

func mustEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func sortHsps(hs []Hsp) []Hsp {
	out := slices.Clone(hs)
	slices.SortFunc(out, func(a, b Hsp) int {
		return cmp.Or(
			cmp.Compare(a.TargetID, b.TargetID),
			cmp.Compare(a.Score, b.Score),
			cmp.Compare(a.QueryEnd, b.QueryEnd),
			cmp.Compare(a.SubjectEnd, b.SubjectEnd),
		)
	})
	return out
}

// randomTargets builds k targets against q: a mix of mutated copies, near
// identical copies that overflow the 8-bit tier, and unrelated sequences.
// IDs equal the target's index.
func randomTargets(rng *rand.Rand, q seq.Sequence, k int) []DpTarget {
	out := make([]DpTarget, k)
	for i := range out {
		var subject seq.Sequence
		switch rng.IntN(4) {
		case 0:
			subject = testutil.RandomSequence(rng, 20+rng.IntN(60))
		case 1:
			subject = testutil.Mutate(rng, q, 0.02)
		default:
			subject = testutil.Mutate(rng, q, 0.3)
		}
		dBegin := -rng.IntN(8)
		out[i] = DpTarget{
			Subject: subject,
			ID:      i,
			DBegin:  dBegin,
			DEnd:    dBegin + 1 + rng.IntN(16),
		}
	}
	return out
}

// splitBuckets distributes targets over the three buckets at random.
func splitBuckets(rng *rand.Rand, ts []DpTarget) *Buckets {
	var b Buckets
	for _, tg := range ts {
		tier := Tier8
		switch r := rng.IntN(10); {
		case r == 0:
			tier = Tier32
		case r < 3:
			tier = Tier16
		}
		b[tier] = append(b[tier], tg)
	}
	return &b
}
