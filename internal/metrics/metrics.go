// Package metrics exports engine statistics as Prometheus metrics.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/cwbudde/algo-swipe/dp/stats"
)

// Recorder accumulates per-run statistics into Prometheus collectors.
// It is safe for concurrent use.
type Recorder struct {
	counters *prometheus.CounterVec
	runs     prometheus.Counter
	duration prometheus.Histogram
}

// NewRecorder creates the collectors under the given namespace. Every
// statistics counter is pre-initialised so it is exported as zero before the
// first run.
func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		counters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "swipe",
				Name:      "events_total",
				Help:      "Banded extension counters by kind",
			},
			[]string{"counter"},
		),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "swipe",
			Name:      "runs_total",
			Help:      "Total number of engine runs",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "swipe",
			Name:      "run_duration_seconds",
			Help:      "Duration of engine runs in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	for _, c := range stats.Counters() {
		r.counters.WithLabelValues(c.String())
	}
	return r
}

// Register adds the recorder's collectors to reg.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{r.counters, r.runs, r.duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe records one run's statistics and wall time.
func (r *Recorder) Observe(st *stats.Statistics, elapsed time.Duration) {
	st.Each(func(c stats.Counter, v uint64) {
		if v != 0 {
			r.counters.WithLabelValues(c.String()).Add(float64(v))
		}
	})
	r.runs.Inc()
	r.duration.Observe(elapsed.Seconds())
}

// Dump writes every metric family gathered from g in the Prometheus text
// exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
