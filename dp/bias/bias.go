// Package bias computes per-position composition-bias corrections for a
// query.
//
// Regions of a query that are compositionally skewed (repeats, low
// complexity) attract inflated alignment scores. The correction for position
// i is the difference between the expected score of q[i] against the whole
// query's composition and against the composition of a window centred on i.
// Positions whose neighbourhood is enriched in residues that score well
// against q[i] receive a negative correction.
//
// The result is an int8 slice with one entry per query position, which the
// DP kernel adds to every substitution score in that query row.
package bias

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-swipe/score"
	"github.com/cwbudde/algo-swipe/seq"
)

// DefaultWindow is the window length used when none is configured.
const DefaultWindow = 40

// Errors returned by Compute.
var (
	ErrInvalidWindow = errors.New("bias: window must be >= 1")
	ErrNilScheme     = errors.New("bias: nil scoring scheme")
)

// Compute returns the composition-bias correction for every position of q.
func Compute(q seq.Sequence, scheme score.Scheme, window int) ([]int8, error) {
	if window < 1 {
		return nil, ErrInvalidWindow
	}
	if scheme == nil {
		return nil, ErrNilScheme
	}
	n := len(q)
	out := make([]int8, n)
	if n == 0 {
		return out, nil
	}

	rows := scoreRows(scheme)

	global := make([]float64, seq.AlphabetSize)
	counts := make([]float64, seq.AlphabetSize)
	for _, l := range q {
		counts[l]++
	}
	vecmath.ScaleBlock(global, counts, 1/float64(n))

	local := make([]float64, seq.AlphabetSize)
	diff := make([]float64, seq.AlphabetSize)
	tmp := make([]float64, seq.AlphabetSize)

	half := window / 2
	// Sliding window [lo, hi) around each position.
	clear(counts)
	lo, hi := 0, 0
	for i := 0; i < n; i++ {
		wantLo := max(0, i-half)
		wantHi := min(n, i+half+1)
		for hi < wantHi {
			counts[q[hi]]++
			hi++
		}
		for lo < wantLo {
			counts[q[lo]]--
			lo++
		}

		vecmath.ScaleBlock(local, counts, 1/float64(hi-lo))
		vecmath.ScaleBlock(diff, local, -1)
		vecmath.AddBlockInPlace(diff, global)
		vecmath.MulBlock(tmp, diff, rows[q[i]])

		var corr float64
		for _, v := range tmp {
			corr += v
		}
		out[i] = toInt8(corr)
	}
	return out, nil
}

func scoreRows(scheme score.Scheme) [][]float64 {
	rows := make([][]float64, seq.AlphabetSize)
	for a := range rows {
		rows[a] = make([]float64, seq.AlphabetSize)
		for b := range rows[a] {
			rows[a][b] = float64(scheme.Score(seq.Letter(a), seq.Letter(b)))
		}
	}
	return rows
}

func toInt8(x float64) int8 {
	r := math.Round(x)
	if r > math.MaxInt8 {
		return math.MaxInt8
	}
	if r < -math.MaxInt8 {
		return -math.MaxInt8
	}
	return int8(r)
}
