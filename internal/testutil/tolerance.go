package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Number covers the element types compared by the tolerance helpers.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int | ~float64
}

// RequireWithin fails t if got and want differ in length or if any element
// pair differs by more than tol.
func RequireWithin[T Number](t testing.TB, got, want []T, tol T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
		return
	}
	for i := range got {
		if d := absDiff(got[i], want[i]); d > float64(tol) {
			t.Fatalf("index %d: got %v, want %v (diff %v > tol %v)", i, got[i], want[i], d, tol)
			return
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T Number](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = max(maxDiff, absDiff(a[i], b[i]))
	}
	return maxDiff, nil
}

// absDiff works in float64 so narrow integer lanes cannot wrap.
func absDiff[T Number](a, b T) float64 {
	return math.Abs(float64(a) - float64(b))
}
