// Package scorevec provides the fixed-width score lanes used by the banded
// DP kernel.
//
// A tier is identified by its lane element type:
//
//   - int8:  narrow, saturating, 16 lanes per 128-bit register
//   - int16: medium, saturating, 8 lanes per 128-bit register
//   - int32: wide, non-saturating, 4 lanes per 128-bit register
//
// Saturating tiers clamp every addition and subtraction to the type's range,
// so a score that would exceed the range sticks at Max and is detected as
// overflow after the sweep. The wide tier is sized so that it cannot overflow
// for any sequence accepted by the engine.
package scorevec

import "unsafe"

// RegisterBits is the emulated vector register width.
const RegisterBits = 128

// Lane is the set of element types a score vector can hold.
type Lane interface {
	~int8 | ~int16 | ~int32
}

// Bits returns the width of T in bits.
func Bits[T Lane]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// Lanes returns the number of T lanes that fit in one register.
func Lanes[T Lane]() int {
	return RegisterBits / Bits[T]()
}

// Max returns the largest representable T.
func Max[T Lane]() T {
	return T(int64(1)<<(Bits[T]()-1) - 1)
}

// Min returns the smallest representable T.
func Min[T Lane]() T {
	return T(-(int64(1) << (Bits[T]() - 1)))
}

// Saturating reports whether arithmetic on T clamps instead of wrapping.
func Saturating[T Lane]() bool {
	return Bits[T]() < 32
}

// Overflows reports whether x has reached the representable maximum. A score
// sitting exactly at Max is indistinguishable from a clamped larger score and
// therefore counts as overflow.
func Overflows[T Lane](x T) bool {
	return x >= Max[T]()
}

// Add returns a+b, saturated for narrow tiers.
func Add[T Lane](a, b T) T {
	return clamp[T](int64(a) + int64(b))
}

// Sub returns a-b, saturated for narrow tiers.
func Sub[T Lane](a, b T) T {
	return clamp[T](int64(a) - int64(b))
}

// FromInt converts x to T, saturating for narrow tiers.
func FromInt[T Lane](x int) T {
	return clamp[T](int64(x))
}

func clamp[T Lane](r int64) T {
	if Saturating[T]() {
		if hi := int64(Max[T]()); r > hi {
			return T(hi)
		}
		if lo := int64(Min[T]()); r < lo {
			return T(lo)
		}
	}
	return T(r)
}
