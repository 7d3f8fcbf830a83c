package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-swipe/dp/stats"
	"github.com/cwbudde/algo-swipe/dp/swipe"
	"github.com/cwbudde/algo-swipe/internal/cpu"
)

func printStats(w io.Writer, b *swipe.Buckets, st *stats.Statistics, elapsed time.Duration) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Tier\tLanes\tBucketed\tResolved\tEscalated\n")
	fmt.Fprintf(tw, "----\t-----\t--------\t--------\t---------\n")
	for t := swipe.Tier8; t < swipe.NumTiers; t++ {
		escalated := "-"
		if c, ok := t.Escalated(); ok {
			escalated = fmt.Sprint(st.Get(c))
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", t, t.Lanes(), len(b[t]), st.Get(t.Resolved()), escalated)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	cells := st.Get(stats.Cells)
	gcups := 0.0
	if s := elapsed.Seconds(); s > 0 {
		gcups = float64(cells) / s / 1e9
	}
	_, err := fmt.Fprintf(w, "\nhsps %d  cells %d  elapsed %s  %.3f GCUPS\n",
		st.Get(stats.Hsps), cells, elapsed.Round(time.Microsecond), gcups)
	return err
}

func printFeatures(w io.Writer, f cpu.Features) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "SSE2\t%v\n", f.HasSSE2)
	fmt.Fprintf(tw, "SSE4.1\t%v\n", f.HasSSE41)
	fmt.Fprintf(tw, "AVX2\t%v\n", f.HasAVX2)
	fmt.Fprintf(tw, "NEON\t%v\n", f.HasNEON)
	fmt.Fprintf(tw, "\t\n")
	for t := swipe.Tier8; t < swipe.NumTiers; t++ {
		fmt.Fprintf(tw, "%s tier\t%v\n", t, t.Supported(f))
	}
	return tw.Flush()
}
