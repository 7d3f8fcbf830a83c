// Package cpu provides CPU feature detection for DP tier selection.
//
// The precision ladder only runs a tier's kernel when the processor offers the
// vector instructions that tier was built around (SSE4.1 for the 8-bit tier,
// SSE2 for the 16-bit tier, NEON for both on arm64). Everything else falls
// through to the next wider tier.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Levels are not strictly comparable across architectures (e.g., SSE4.1 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD requirement (pure Go scalar lanes).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64, 16-bit saturating arithmetic).
	SIMDSSE2

	// SIMDSSE41 indicates x86-64 SSE4.1 (signed 8-bit max/min).
	SIMDSSE41

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit integer operations). No tier
	// requires it; it is detected for reporting only.
	SIMDAVX2

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDSSE41:
		return "SSE4.1"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to tier selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2  bool
	HasSSE41 bool
	HasAVX2  bool // informational; tiers are sized for 128-bit registers

	// ARM SIMD features
	HasNEON bool

	// ForceGeneric disables every vector tier; only SIMDNone is supported.
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g., "amd64", "arm64").
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasSSE41 returns true if the CPU supports SSE4.1 instructions.
func HasSSE41() bool {
	return DetectFeatures().HasSSE41
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDSSE41:
		return features.HasSSE41
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// SupportsAny reports whether at least one of levels is supported.
func SupportsAny(features Features, levels ...SIMDLevel) bool {
	for _, level := range levels {
		if Supports(features, level) {
			return true
		}
	}

	return false
}
