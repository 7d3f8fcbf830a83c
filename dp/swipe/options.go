package swipe

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-swipe/internal/cpu"
	"github.com/cwbudde/algo-swipe/score"
)

// Errors returned by New and Engine.Run.
var (
	ErrInvalidThreads = errors.New("swipe: thread count must be >= 1")
	ErrNilScheme      = errors.New("swipe: nil scoring scheme")
	ErrBiasLength     = errors.New("swipe: composition bias length does not match query")
	ErrQueryTooLong   = errors.New("swipe: query exceeds maximum sequence length")
)

// DefaultScheme is used when no scheme is configured.
var DefaultScheme = score.Uniform{Match: 5, Mismatch: -4, Open: 11, Extend: 1}

type config struct {
	threads  int
	features cpu.Features
	scheme   score.Scheme
	logger   zerolog.Logger
}

func defaultConfig() config {
	return config{
		threads:  runtime.GOMAXPROCS(0),
		features: cpu.DetectFeatures(),
		scheme:   DefaultScheme,
		logger:   zerolog.Nop(),
	}
}

// Option configures an [Engine].
type Option func(*config) error

// WithThreads sets the number of worker goroutines used for parallel runs
// (default GOMAXPROCS).
func WithThreads(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidThreads, n)
		}

		cfg.threads = n

		return nil
	}
}

// WithFeatures overrides the detected CPU features. Tiers whose vector
// instructions are missing from f are skipped and their targets handed to
// the next wider tier.
func WithFeatures(f cpu.Features) Option {
	return func(cfg *config) error {
		cfg.features = f

		return nil
	}
}

// WithScheme sets the substitution scores and gap penalties (default
// [DefaultScheme]). Every score and penalty must lie within
// ±[score.MaxAbsScore] so the 32-bit tier cannot overflow.
func WithScheme(s score.Scheme) Option {
	return func(cfg *config) error {
		if s == nil {
			return ErrNilScheme
		}
		if err := score.Validate(s); err != nil {
			return fmt.Errorf("swipe: %w", err)
		}

		cfg.scheme = s

		return nil
	}
}

// WithLogger installs a logger for per-tier debug events (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = l

		return nil
	}
}
