package swipe

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-swipe/dp/stats"
	"github.com/cwbudde/algo-swipe/seq"
)

// Flags select optional engine behaviour.
type Flags uint8

const (
	// Parallel distributes batches across the engine's worker goroutines.
	Parallel Flags = 1 << iota
	// Traceback records the alignment path and fills Hsp ranges and transcripts.
	Traceback
)

// Engine runs the precision ladder. It is immutable after New and safe for
// concurrent use.
type Engine struct {
	cfg config
}

// New creates an Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Engine{cfg: cfg}, nil
}

// Threads returns the worker count used for parallel runs.
func (e *Engine) Threads() int { return e.cfg.threads }

// Run extends every target in buckets against query and returns the Hsps
// scoring at least cutoff, narrow tier first. Order within a tier is
// unspecified when Parallel is set.
//
// Each bucket holds the targets the caller expects to fit the corresponding
// tier. Targets whose score saturates a tier are recomputed by the next one;
// a tier the CPU cannot run forwards its whole input. Per-tier counters are
// added to stat, which may be nil.
//
// composition, when non-nil, must hold one correction per query position.
// The buckets are not modified.
func (e *Engine) Run(
	query seq.Sequence,
	frame seq.Frame,
	buckets *Buckets,
	composition []int8,
	cutoff int,
	flags Flags,
	stat *stats.Statistics,
) ([]Hsp, error) {
	if len(query) > seq.MaxLength {
		return nil, fmt.Errorf("%w: %d", ErrQueryTooLong, len(query))
	}
	if composition != nil && len(composition) != len(query) {
		return nil, fmt.Errorf("%w: %d != %d", ErrBiasLength, len(composition), len(query))
	}
	if stat == nil {
		stat = new(stats.Statistics)
	}
	if buckets == nil {
		buckets = &Buckets{}
	}

	p := &params{
		query:     query,
		frame:     frame,
		bias:      composition,
		scheme:    e.cfg.scheme,
		cutoff:    cutoff,
		traceback: flags&Traceback != 0,
	}
	parallel := flags&Parallel != 0
	threads := e.cfg.threads
	log := e.cfg.logger

	var out []Hsp
	var carry []DpTarget
	for tier := Tier8; tier < NumTiers; tier++ {
		input := make([]DpTarget, 0, len(buckets[tier])+len(carry))
		input = append(input, buckets[tier]...)
		input = append(input, carry...)
		carry = nil
		if len(input) == 0 {
			continue
		}

		if !tier.Supported(e.cfg.features) {
			log.Debug().
				Stringer("tier", tier).
				Int("targets", len(input)).
				Msg("tier unsupported by cpu, forwarding")
			carry = input
			continue
		}

		start := time.Now()
		sortTargets(input)
		res := dispatch(input, tier.Lanes(), parallel, threads, kernelFor(p, tier))

		out = append(out, res.hsps...)
		carry = res.overflow
		stat.Merge(&res.stat)

		log.Debug().
			Stringer("tier", tier).
			Int("targets", len(input)).
			Int("hsps", len(res.hsps)).
			Int("overflow", len(res.overflow)).
			Bool("parallel", parallel).
			Dur("elapsed", time.Since(start)).
			Msg("banded swipe")
	}

	if len(carry) != 0 {
		panic(fmt.Sprintf("swipe: %d targets overflowed the %s tier", len(carry), Tier32))
	}

	return out, nil
}

func kernelFor(p *params, t Tier) batchFunc {
	switch t {
	case Tier8:
		return batchKernel[int8](p, t)
	case Tier16:
		return batchKernel[int16](p, t)
	default:
		return batchKernel[int32](p, t)
	}
}
