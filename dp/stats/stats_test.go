package stats

import (
	"math/rand/v2"
	"testing"
)

func TestIncGetTotal(t *testing.T) {
	var s Statistics
	s.Inc(Ext8, 3)
	s.Inc(Ext16, 4)
	s.Inc(Ext8, 2)

	if s.Get(Ext8) != 5 || s.Get(Ext16) != 4 || s.Get(Ext32) != 0 {
		t.Fatalf("unexpected values %d/%d/%d", s.Get(Ext8), s.Get(Ext16), s.Get(Ext32))
	}
	if got := s.Total(Ext8, Ext16, Ext32); got != 9 {
		t.Errorf("Total = %d, want 9", got)
	}

	s.Reset()
	if s.Total(Counters()...) != 0 {
		t.Error("Reset left non-zero counters")
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	parts := make([]Statistics, 8)
	for i := range parts {
		for _, c := range Counters() {
			parts[i].Inc(c, rng.Uint64N(1000))
		}
	}

	var forward, backward Statistics
	for i := range parts {
		forward.Merge(&parts[i])
	}
	for i := len(parts) - 1; i >= 0; i-- {
		backward.Merge(&parts[i])
	}

	// Merge pairs first, then fold.
	var tree Statistics
	for i := 0; i < len(parts); i += 2 {
		pair := parts[i]
		pair.Merge(&parts[i+1])
		tree.Merge(&pair)
	}

	if forward != backward || forward != tree {
		t.Errorf("merge order changed totals:\n%+v\n%+v\n%+v", forward, backward, tree)
	}
}

func TestNames(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Counters() {
		name := c.String()
		if name == "" || seen[name] {
			t.Fatalf("counter %d has empty or duplicate name %q", int(c), name)
		}
		seen[name] = true

		back, ok := Lookup(name)
		if !ok || back != c {
			t.Errorf("Lookup(%q) = %v, %v", name, back, ok)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup of unknown name succeeded")
	}
	if got := Counter(99).String(); got != "Counter(99)" {
		t.Errorf("out of range name %q", got)
	}
}

func TestEach(t *testing.T) {
	var s Statistics
	s.Inc(Hsps, 7)
	var sum uint64
	calls := 0
	s.Each(func(c Counter, v uint64) {
		calls++
		sum += v
	})
	if calls != len(Counters()) || sum != 7 {
		t.Errorf("Each visited %d counters summing %d", calls, sum)
	}
}
