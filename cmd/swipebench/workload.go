package main

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-swipe/dp/swipe"
	"github.com/cwbudde/algo-swipe/internal/testutil"
	"github.com/cwbudde/algo-swipe/seq"
)

type workload struct {
	query   seq.Sequence
	buckets swipe.Buckets
}

// generateWorkload builds a query and n targets around it. Homologous targets
// are mutated copies of a query window embedded after a random prefix, with a
// band centred on the true diagonal. Targets are bucketed by the best score
// they could reach, which is an optimistic guess: some of them still escalate.
func generateWorkload(seed uint64, queryLen, n, match int) workload {
	rng := rand.New(rand.NewPCG(seed, 1))
	wl := workload{query: testutil.DeterministicSequence(seed, queryLen)}

	for id := 0; id < n; id++ {
		var subject seq.Sequence
		diag, span := 0, 0
		switch r := rng.IntN(10); {
		case r < 3:
			subject = testutil.RandomSequence(rng, 50+rng.IntN(2*queryLen))
		default:
			a := rng.IntN(queryLen)
			b := a + 1 + rng.IntN(queryLen-a)
			rate := 0.35
			if r == 9 {
				rate = 0.03
			}
			prefix := testutil.RandomSequence(rng, rng.IntN(40))
			subject = testutil.Splice(testutil.Mutate(rng, wl.query[a:b], rate), 0, prefix)
			diag = len(prefix) - a
			span = b - a
		}

		width := 8 + rng.IntN(25)
		tg := swipe.DpTarget{
			Subject: subject,
			ID:      id,
			DBegin:  diag - width/2,
			DEnd:    diag - width/2 + width,
		}
		tier := tierFor(span * match)
		wl.buckets[tier] = append(wl.buckets[tier], tg)
	}
	return wl
}

func tierFor(bound int) swipe.Tier {
	switch {
	case bound < math.MaxInt8:
		return swipe.Tier8
	case bound < math.MaxInt16:
		return swipe.Tier16
	default:
		return swipe.Tier32
	}
}
