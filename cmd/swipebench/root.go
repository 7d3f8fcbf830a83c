package main

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-swipe/dp/bias"
	"github.com/cwbudde/algo-swipe/dp/stats"
	"github.com/cwbudde/algo-swipe/dp/swipe"
	"github.com/cwbudde/algo-swipe/internal/config"
	"github.com/cwbudde/algo-swipe/internal/cpu"
	"github.com/cwbudde/algo-swipe/internal/metrics"
	"github.com/cwbudde/algo-swipe/seq"
)

type runOptions struct {
	configPath string
	targets    int
	queryLen   int
	seed       uint64
	frame      int
	threads    int
	cutoff     int
	traceback  bool
	generic    bool
	metrics    bool
}

func newRootCmd() *cobra.Command {
	var logLevel string
	logger := zerolog.Nop()

	root := &cobra.Command{
		Use:           "swipebench",
		Short:         "Benchmark the banded SIMD-batched extension engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
				Level(lvl).
				With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	root.AddCommand(newRunCmd(&logger), newCPUCmd())
	return root
}

func newRunCmd(logger *zerolog.Logger) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Extend a synthetic target set against a random query",
		Example: "  swipebench run -n 20000 --threads 8\n  swipebench run --config engine.yaml --metrics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, o, *logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "Engine configuration file (.yaml, .json or .toml)")
	f.IntVarP(&o.targets, "targets", "n", 10000, "Number of targets to generate")
	f.IntVar(&o.queryLen, "query-len", 300, "Query length in residues")
	f.Uint64Var(&o.seed, "seed", 1, "Workload random seed")
	f.IntVar(&o.frame, "frame", 0, "Frame tag copied onto every Hsp (0..5)")
	f.IntVarP(&o.threads, "threads", "t", 0, "Worker goroutines (overrides config)")
	f.IntVar(&o.cutoff, "cutoff", 0, "Minimum reported score (overrides config)")
	f.BoolVar(&o.traceback, "traceback", false, "Compute alignment transcripts")
	f.BoolVar(&o.generic, "generic", false, "Ignore detected SIMD features; run every target in the int32 tier")
	f.BoolVar(&o.metrics, "metrics", false, "Print Prometheus metrics after the run")
	return cmd
}

func runBench(cmd *cobra.Command, o *runOptions, logger zerolog.Logger) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("threads") {
		cfg.Threads = o.threads
	}
	if flags.Changed("cutoff") {
		cfg.ScoreCutoff = o.cutoff
	}
	if flags.Changed("traceback") {
		cfg.Traceback = o.traceback
	}
	if o.frame < 0 || o.frame >= seq.NumFrames {
		return fmt.Errorf("frame %d out of range [0,%d)", o.frame, seq.NumFrames)
	}
	if o.targets < 0 || o.queryLen < 1 {
		return fmt.Errorf("need a positive query length and a non-negative target count")
	}

	scheme, err := cfg.Scheme()
	if err != nil {
		return err
	}
	extra := []swipe.Option{swipe.WithLogger(logger)}
	if o.generic {
		extra = append(extra, swipe.WithFeatures(cpu.Features{ForceGeneric: true}))
	}
	opts, err := cfg.Options(extra...)
	if err != nil {
		return err
	}
	engine, err := swipe.New(opts...)
	if err != nil {
		return err
	}

	wl := generateWorkload(o.seed, o.queryLen, o.targets, scheme.Match)
	var composition []int8
	if cfg.BiasWindow > 0 {
		if composition, err = bias.Compute(wl.query, scheme, cfg.BiasWindow); err != nil {
			return err
		}
	}
	logger.Info().
		Int("query", len(wl.query)).
		Int("targets", wl.buckets.Len()).
		Int("threads", engine.Threads()).
		Int("cutoff", cfg.ScoreCutoff).
		Msg("starting run")

	var st stats.Statistics
	start := time.Now()
	hsps, err := engine.Run(wl.query, seq.Frame(o.frame), &wl.buckets, composition, cfg.ScoreCutoff, cfg.Flags(), &st)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Info().Int("hsps", len(hsps)).Dur("elapsed", elapsed).Msg("run finished")

	out := cmd.OutOrStdout()
	if err := printStats(out, &wl.buckets, &st, elapsed); err != nil {
		return err
	}
	if o.metrics {
		return dumpMetrics(out, &st, elapsed)
	}
	return nil
}

func dumpMetrics(w io.Writer, st *stats.Statistics, elapsed time.Duration) error {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder("swipebench")
	if err := rec.Register(reg); err != nil {
		return err
	}
	rec.Observe(st, elapsed)
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return metrics.Dump(w, reg)
}

func newCPUCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show detected SIMD features and the tiers they enable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFeatures(cmd.OutOrStdout(), cpu.DetectFeatures())
		},
	}
}
