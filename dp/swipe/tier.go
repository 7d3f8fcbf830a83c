package swipe

import (
	"fmt"

	"github.com/cwbudde/algo-swipe/dp/scorevec"
	"github.com/cwbudde/algo-swipe/dp/stats"
	"github.com/cwbudde/algo-swipe/internal/cpu"
)

// Tier is one level of the precision ladder.
type Tier int

const (
	Tier8  Tier = iota // 8-bit saturating lanes
	Tier16             // 16-bit saturating lanes
	Tier32             // 32-bit lanes; terminal, never overflows

	// NumTiers is the number of tiers in the ladder.
	NumTiers = 3
)

func (t Tier) String() string {
	switch t {
	case Tier8:
		return "int8"
	case Tier16:
		return "int16"
	case Tier32:
		return "int32"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Lanes returns the number of targets processed together by the tier's kernel.
func (t Tier) Lanes() int {
	switch t {
	case Tier8:
		return scorevec.Lanes[int8]()
	case Tier16:
		return scorevec.Lanes[int16]()
	default:
		return scorevec.Lanes[int32]()
	}
}

// Resolved returns the counter incremented for every target the tier reports
// or filters.
func (t Tier) Resolved() stats.Counter {
	switch t {
	case Tier8:
		return stats.Ext8
	case Tier16:
		return stats.Ext16
	default:
		return stats.Ext32
	}
}

// Escalated returns the counter incremented for targets promoted out of the
// tier. The terminal tier has none.
func (t Tier) Escalated() (stats.Counter, bool) {
	switch t {
	case Tier8:
		return stats.Overflow8, true
	case Tier16:
		return stats.Overflow16, true
	default:
		return 0, false
	}
}

// levels lists the SIMD levels any one of which enables the tier.
func (t Tier) levels() []cpu.SIMDLevel {
	switch t {
	case Tier8:
		return []cpu.SIMDLevel{cpu.SIMDSSE41, cpu.SIMDNEON}
	case Tier16:
		return []cpu.SIMDLevel{cpu.SIMDSSE2, cpu.SIMDNEON}
	default:
		return []cpu.SIMDLevel{cpu.SIMDNone}
	}
}

// Supported reports whether the tier's kernel may run on a CPU with features f.
func (t Tier) Supported(f cpu.Features) bool {
	return cpu.SupportsAny(f, t.levels()...)
}
