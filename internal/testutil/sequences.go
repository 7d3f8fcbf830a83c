// Package testutil provides deterministic sequence generators for tests.
package testutil

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-swipe/seq"
)

// standardResidues is the number of leading alphabet codes that are real
// amino acids (A..V).
const standardResidues = 20

// DeterministicSequence generates a random sequence of standard residues with
// a fixed seed for reproducibility.
func DeterministicSequence(seed uint64, length int) seq.Sequence {
	rng := rand.New(rand.NewPCG(seed, 0))
	return RandomSequence(rng, length)
}

// RandomSequence draws length standard residues from rng.
func RandomSequence(rng *rand.Rand, length int) seq.Sequence {
	out := make(seq.Sequence, length)
	for i := range out {
		out[i] = seq.Letter(rng.IntN(standardResidues))
	}
	return out
}

// Homopolymer returns a sequence of length copies of letter.
func Homopolymer(letter seq.Letter, length int) seq.Sequence {
	out := make(seq.Sequence, length)
	for i := range out {
		out[i] = letter
	}
	return out
}

// Mutate returns a copy of s in which each position is substituted with
// probability rate. Substitutions always change the residue.
func Mutate(rng *rand.Rand, s seq.Sequence, rate float64) seq.Sequence {
	out := make(seq.Sequence, len(s))
	copy(out, s)
	for i := range out {
		if rng.Float64() < rate {
			out[i] = seq.Letter((int(out[i]) + 1 + rng.IntN(standardResidues-1)) % standardResidues)
		}
	}
	return out
}

// Splice returns a copy of s with ins inserted before position pos.
func Splice(s seq.Sequence, pos int, ins seq.Sequence) seq.Sequence {
	out := make(seq.Sequence, 0, len(s)+len(ins))
	out = append(out, s[:pos]...)
	out = append(out, ins...)
	return append(out, s[pos:]...)
}

// Delete returns a copy of s without the residues in [pos, pos+n).
func Delete(s seq.Sequence, pos, n int) seq.Sequence {
	out := make(seq.Sequence, 0, len(s)-n)
	out = append(out, s[:pos]...)
	return append(out, s[pos+n:]...)
}
