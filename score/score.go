// Package score defines the scoring boundary of the DP engine.
//
// The engine only needs substitution scores and affine gap penalties; how
// they are derived is up to the caller. Two concrete schemes are provided:
// Uniform (match/mismatch) and Matrix (caller-supplied table).
package score

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-swipe/seq"
)

// MaxAbsScore bounds the magnitude of any substitution score or gap penalty.
const MaxAbsScore = 127

// Errors returned by scheme constructors.
var (
	ErrScoreRange      = errors.New("score: value outside [-127, 127]")
	ErrMatrixShape     = errors.New("score: matrix must be square over the alphabet")
	ErrNegativePenalty = errors.New("score: gap penalties must be >= 0")
)

// Scheme scores a pair of residues and defines affine gap costs. A gap of
// length l costs GapOpen() + l*GapExtend().
type Scheme interface {
	Score(a, b seq.Letter) int
	GapOpen() int
	GapExtend() int
}

// Uniform scores identical residues with Match and all others with Mismatch.
type Uniform struct {
	Match, Mismatch int
	Open, Extend    int
}

// NewUniform validates and returns a Uniform scheme.
func NewUniform(match, mismatch, open, extend int) (Uniform, error) {
	if err := checkRange(match, mismatch, open, extend); err != nil {
		return Uniform{}, err
	}
	if open < 0 || extend < 0 {
		return Uniform{}, ErrNegativePenalty
	}
	return Uniform{Match: match, Mismatch: mismatch, Open: open, Extend: extend}, nil
}

func (u Uniform) Score(a, b seq.Letter) int {
	if a == b {
		return u.Match
	}
	return u.Mismatch
}

func (u Uniform) GapOpen() int   { return u.Open }
func (u Uniform) GapExtend() int { return u.Extend }

// Matrix is a square substitution table over seq.Alphabet.
type Matrix struct {
	table        [seq.AlphabetSize][seq.AlphabetSize]int8
	open, extend int
}

// NewMatrix builds a Matrix from rows indexed by residue code.
func NewMatrix(rows [][]int, open, extend int) (*Matrix, error) {
	if len(rows) != seq.AlphabetSize {
		return nil, fmt.Errorf("%w: %d rows", ErrMatrixShape, len(rows))
	}
	if open < 0 || extend < 0 {
		return nil, ErrNegativePenalty
	}
	if err := checkRange(open, extend); err != nil {
		return nil, err
	}
	m := &Matrix{open: open, extend: extend}
	for i, row := range rows {
		if len(row) != seq.AlphabetSize {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrMatrixShape, i, len(row))
		}
		if err := checkRange(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		for j, v := range row {
			m.table[i][j] = int8(v)
		}
	}
	return m, nil
}

func (m *Matrix) Score(a, b seq.Letter) int { return int(m.table[a][b]) }
func (m *Matrix) GapOpen() int              { return m.open }
func (m *Matrix) GapExtend() int            { return m.extend }

// Validate checks every substitution score of s over the alphabet and its
// gap penalties against MaxAbsScore. Schemes built as struct literals bypass
// the constructors, so the engine validates them again.
func Validate(s Scheme) error {
	if err := checkRange(s.GapOpen(), s.GapExtend()); err != nil {
		return err
	}
	if s.GapOpen() < 0 || s.GapExtend() < 0 {
		return ErrNegativePenalty
	}
	for a := range seq.AlphabetSize {
		for b := range seq.AlphabetSize {
			if err := checkRange(s.Score(seq.Letter(a), seq.Letter(b))); err != nil {
				return fmt.Errorf("%w (%c/%c)", err, seq.Alphabet[a], seq.Alphabet[b])
			}
		}
	}
	return nil
}

func checkRange(vals ...int) error {
	for _, v := range vals {
		if v < -MaxAbsScore || v > MaxAbsScore {
			return fmt.Errorf("%w: %d", ErrScoreRange, v)
		}
	}
	return nil
}
