// Package swipe implements banded Smith-Waterman extension of many targets
// against one query, in SIMD-width batches with adaptive score precision.
//
// # Precision ladder
//
// Targets are scored in three tiers of increasing lane width:
//
//   - Tier8:  16 lanes of saturating int8
//   - Tier16: 8 lanes of saturating int16
//   - Tier32: 4 lanes of int32
//
// A target whose best score reaches a tier's maximum overflows and is
// rescored by the next tier. The int32 tier cannot overflow for sequences up
// to seq.MaxLength; if it does, Run panics.
//
// # Work distribution
//
// With the Parallel flag, each tier starts a fresh set of worker goroutines
// sharing one atomic cursor. Workers claim the next batch of targets with a
// single fetch-and-add and keep their Hsps, overflow and statistics private
// until the join, where they are concatenated and summed.
//
// # Usage
//
//	eng, err := swipe.New(swipe.WithThreads(8), swipe.WithScheme(scheme))
//	var st stats.Statistics
//	hsps, err := eng.Run(query, 0, &buckets, nil, 40, swipe.Parallel|swipe.Traceback, &st)
package swipe
