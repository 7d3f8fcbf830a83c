// Package config loads engine settings from YAML, JSON or TOML files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-swipe/dp/bias"
	"github.com/cwbudde/algo-swipe/dp/swipe"
	"github.com/cwbudde/algo-swipe/score"
)

var (
	ErrEmptyPath            = errors.New("config: empty path")
	ErrUnsupportedExtension = errors.New("config: unsupported extension")
	ErrNegativeWindow       = errors.New("config: bias window must not be negative")
)

// Config holds the engine parameters of one run.
// Keys absent from a loaded file keep their Default values.
type Config struct {
	Threads     int  `json:"threads" yaml:"threads" toml:"threads"`
	ScoreCutoff int  `json:"score_cutoff" yaml:"score_cutoff" toml:"score_cutoff"`
	Traceback   bool `json:"traceback" yaml:"traceback" toml:"traceback"`
	// BiasWindow is the composition window; 0 disables the correction.
	BiasWindow int `json:"bias_window" yaml:"bias_window" toml:"bias_window"`

	Match     int `json:"match" yaml:"match" toml:"match"`
	Mismatch  int `json:"mismatch" yaml:"mismatch" toml:"mismatch"`
	GapOpen   int `json:"gap_open" yaml:"gap_open" toml:"gap_open"`
	GapExtend int `json:"gap_extend" yaml:"gap_extend" toml:"gap_extend"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Threads:     runtime.GOMAXPROCS(0),
		ScoreCutoff: 30,
		BiasWindow:  bias.DefaultWindow,
		Match:       swipe.DefaultScheme.Match,
		Mismatch:    swipe.DefaultScheme.Mismatch,
		GapOpen:     swipe.DefaultScheme.Open,
		GapExtend:   swipe.DefaultScheme.Extend,
	}
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, ErrEmptyPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Scheme builds the uniform scoring scheme described by c.
func (c Config) Scheme() (score.Uniform, error) {
	return score.NewUniform(c.Match, c.Mismatch, c.GapOpen, c.GapExtend)
}

// Options converts c into engine options. Additional options are appended
// after the derived ones and therefore take precedence.
func (c Config) Options(extra ...swipe.Option) ([]swipe.Option, error) {
	s, err := c.Scheme()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.BiasWindow < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWindow, c.BiasWindow)
	}
	opts := []swipe.Option{swipe.WithThreads(c.Threads), swipe.WithScheme(s)}
	return append(opts, extra...), nil
}

// Flags returns the run flags implied by c.
func (c Config) Flags() swipe.Flags {
	var f swipe.Flags
	if c.Threads > 1 {
		f |= swipe.Parallel
	}
	if c.Traceback {
		f |= swipe.Traceback
	}
	return f
}
