package bias

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/cwbudde/algo-swipe/internal/testutil"
	"github.com/cwbudde/algo-swipe/score"
	"github.com/cwbudde/algo-swipe/seq"
)

func uniform(t *testing.T) score.Uniform {
	t.Helper()
	u, err := score.NewUniform(5, -1, 11, 1)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestComputeHomopolymerIsNeutral(t *testing.T) {
	q := seq.MustEncode(strings.Repeat("L", 60))
	got, err := Compute(q, uniform(t), DefaultWindow)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(q) {
		t.Fatalf("len = %d, want %d", len(got), len(q))
	}
	for i, v := range got {
		if v != 0 {
			t.Fatalf("position %d: correction %d, want 0", i, v)
		}
	}
}

func TestComputePenalizesRepeat(t *testing.T) {
	diverse := "ARNDCQEGHIKMFPSTWYV"
	q := seq.MustEncode(diverse + diverse + strings.Repeat("L", 30) + diverse + diverse)
	got, err := Compute(q, uniform(t), 20)
	if err != nil {
		t.Fatal(err)
	}

	mid := len(diverse)*2 + 15
	if got[mid] >= 0 {
		t.Errorf("repeat centre correction = %d, want negative", got[mid])
	}
	if got[0] < got[mid] {
		t.Errorf("diverse prefix (%d) should be corrected less than the repeat (%d)", got[0], got[mid])
	}
}

func TestComputeEmptyAndErrors(t *testing.T) {
	got, err := Compute(nil, uniform(t), 10)
	if err != nil || len(got) != 0 {
		t.Errorf("empty query: %v, %v", got, err)
	}
	if _, err := Compute(seq.MustEncode("AAA"), uniform(t), 0); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow, got %v", err)
	}
	if _, err := Compute(seq.MustEncode("AAA"), nil, 10); !errors.Is(err, ErrNilScheme) {
		t.Errorf("expected ErrNilScheme, got %v", err)
	}
}

func TestToInt8Clamps(t *testing.T) {
	if toInt8(1000) != 127 || toInt8(-1000) != -127 || toInt8(2.5) != 3 || toInt8(-2.4) != -2 {
		t.Error("toInt8 rounding or clamping wrong")
	}
}

// naiveCompute recounts the window for every position.
func naiveCompute(q seq.Sequence, s score.Scheme, window int) []int8 {
	n := len(q)
	global := make([]float64, seq.AlphabetSize)
	for _, l := range q {
		global[l] += 1 / float64(n)
	}
	out := make([]int8, n)
	for i := range q {
		lo, hi := max(0, i-window/2), min(n, i+window/2+1)
		local := make([]float64, seq.AlphabetSize)
		for _, l := range q[lo:hi] {
			local[l] += 1 / float64(hi-lo)
		}
		var corr float64
		for b := range local {
			corr += (global[b] - local[b]) * float64(s.Score(q[i], seq.Letter(b)))
		}
		out[i] = toInt8(corr)
	}
	return out
}

func TestComputeMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 0))
	q := testutil.Splice(testutil.RandomSequence(rng, 80), 40, testutil.Homopolymer(4, 25))
	for _, window := range []int{1, 7, 20, DefaultWindow, 500} {
		got, err := Compute(q, uniform(t), window)
		if err != nil {
			t.Fatal(err)
		}
		// Summation order differs, so values on a rounding edge may differ by one.
		testutil.RequireWithin(t, got, naiveCompute(q, uniform(t), window), 1)
	}
}
