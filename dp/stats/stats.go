// Package stats provides the named counters accumulated by a DP run.
//
// A Statistics value is owned by one goroutine while counting. Workers keep
// their own copy and the dispatcher merges them by addition after the join,
// so the DP loop never touches shared counters.
//
// ExtN counts the targets a tier resolved; escalations are kept apart in
// OverflowN. The number of targets that entered tier N is therefore
// ExtN + OverflowN (just Ext32 for the wide tier), and the Ext counters sum
// to the number of targets supplied.
package stats

import "fmt"

// Counter identifies one statistic.
type Counter int

const (
	// Ext8 counts targets resolved (reported or filtered) by the 8-bit tier.
	Ext8 Counter = iota
	// Ext16 counts targets resolved by the 16-bit tier.
	Ext16
	// Ext32 counts targets resolved by the 32-bit tier.
	Ext32
	// Overflow8 counts targets escalated out of the 8-bit tier.
	Overflow8
	// Overflow16 counts targets escalated out of the 16-bit tier.
	Overflow16
	// Cells counts DP cells evaluated, summed over lanes.
	Cells
	// Hsps counts alignments reported.
	Hsps

	numCounters
)

var counterNames = [numCounters]string{
	Ext8:       "ext8",
	Ext16:      "ext16",
	Ext32:      "ext32",
	Overflow8:  "overflow8",
	Overflow16: "overflow16",
	Cells:      "cells",
	Hsps:       "hsps",
}

// String returns the counter's stable name.
func (c Counter) String() string {
	if c < 0 || c >= numCounters {
		return fmt.Sprintf("Counter(%d)", int(c))
	}
	return counterNames[c]
}

// Counters returns every defined counter in declaration order.
func Counters() []Counter {
	out := make([]Counter, numCounters)
	for i := range out {
		out[i] = Counter(i)
	}
	return out
}

// Lookup returns the counter with the given name.
func Lookup(name string) (Counter, bool) {
	for i, n := range counterNames {
		if n == name {
			return Counter(i), true
		}
	}
	return 0, false
}

// Statistics is a fixed set of 64-bit running totals. The zero value is ready
// to use. It is not safe for concurrent mutation.
type Statistics struct {
	data [numCounters]uint64
}

// Inc adds n to counter c.
func (s *Statistics) Inc(c Counter, n uint64) {
	s.data[c] += n
}

// Get returns the current value of counter c.
func (s *Statistics) Get(c Counter) uint64 {
	return s.data[c]
}

// Total returns the sum of the given counters.
func (s *Statistics) Total(cs ...Counter) uint64 {
	var sum uint64
	for _, c := range cs {
		sum += s.data[c]
	}
	return sum
}

// Merge adds every counter of other into s.
func (s *Statistics) Merge(other *Statistics) {
	for i := range s.data {
		s.data[i] += other.data[i]
	}
}

// Reset sets every counter to zero.
func (s *Statistics) Reset() {
	s.data = [numCounters]uint64{}
}

// Each calls fn for every counter in declaration order.
func (s *Statistics) Each(fn func(c Counter, v uint64)) {
	for i, v := range s.data {
		fn(Counter(i), v)
	}
}
