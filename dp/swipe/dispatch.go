package swipe

import (
	"sync"
	"sync/atomic"
)

// batchFunc processes one contiguous batch of at most lanes targets and
// appends its results to out.
type batchFunc func(batch []DpTarget, out *output)

// dispatch runs fn over targets in batches of lanes.
//
// Serially the batches are processed in order into one output. In parallel,
// workers goroutines share one atomic cursor: each claims the next batch by
// adding lanes to it and stops once the claimed start is past the end, so
// every offset range is processed exactly once. Worker outputs are merged
// after the join; the order of Hsps and overflow across workers is
// unspecified.
func dispatch(targets []DpTarget, lanes int, parallel bool, workers int, fn batchFunc) output {
	n := len(targets)
	if !parallel {
		var out output
		for i := 0; i < n; i += lanes {
			fn(targets[i:min(i+lanes, n)], &out)
		}
		return out
	}

	workers = max(workers, 1)
	outs := make([]output, workers)
	var next atomic.Int64
	var wg sync.WaitGroup
	for w := range outs {
		local := &outs[w]
		wg.Go(func() {
			for {
				start := int(next.Add(int64(lanes))) - lanes
				if start >= n {
					return
				}
				fn(targets[start:min(start+lanes, n)], local)
			}
		})
	}
	wg.Wait()

	return mergeOutputs(outs)
}

// mergeOutputs concatenates worker results into one caller-owned output.
func mergeOutputs(outs []output) output {
	var nh, no int
	for i := range outs {
		nh += len(outs[i].hsps)
		no += len(outs[i].overflow)
	}

	merged := output{
		hsps:     make([]Hsp, 0, nh),
		overflow: make([]DpTarget, 0, no),
	}
	for i := range outs {
		merged.hsps = append(merged.hsps, outs[i].hsps...)
		merged.overflow = append(merged.overflow, outs[i].overflow...)
		merged.stat.Merge(&outs[i].stat)
		outs[i] = output{}
	}
	return merged
}
