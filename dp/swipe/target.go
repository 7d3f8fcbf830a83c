package swipe

import (
	"cmp"
	"slices"

	"github.com/cwbudde/algo-swipe/seq"
)

// DpTarget is one candidate region for gapped extension: a subject sequence
// and the diagonal band [DBegin, DEnd) to search, where diagonal d = j - i
// for subject position j and query position i.
//
// Bands come from the upstream ungapped stage and are trusted: the engine
// does not check them against the sequence lengths.
type DpTarget struct {
	Subject seq.Sequence
	ID      int
	DBegin  int
	DEnd    int
}

// BandWidth returns the number of diagonals in the band.
func (t DpTarget) BandWidth() int {
	return t.DEnd - t.DBegin
}

// Compare orders targets by band start.
func Compare(a, b DpTarget) int {
	return cmp.Compare(a.DBegin, b.DBegin)
}

// sortTargets orders targets by band start. Ties keep their relative order.
func sortTargets(ts []DpTarget) {
	slices.SortStableFunc(ts, Compare)
}

// Buckets holds the caller's pre-classified targets, indexed by Tier.
type Buckets [NumTiers][]DpTarget

// Len returns the number of targets across all buckets.
func (b *Buckets) Len() int {
	n := 0
	for _, ts := range b {
		n += len(ts)
	}
	return n
}
