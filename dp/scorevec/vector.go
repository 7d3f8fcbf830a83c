package scorevec

// Vector holds one score per lane. All binary operations require operands of
// equal length and panic otherwise.
type Vector[T Lane] []T

// Mask has bit i set when lane i satisfies a predicate.
type Mask uint64

// Has reports whether lane i is set.
func (m Mask) Has(i int) bool { return m&(1<<uint(i)) != 0 }

// New returns a zeroed vector with the tier's full lane count.
func New[T Lane]() Vector[T] {
	return make(Vector[T], Lanes[T]())
}

// Fill sets every lane to x.
func (v Vector[T]) Fill(x T) {
	for i := range v {
		v[i] = x
	}
}

// Adds sets v = a + b lane-wise (saturating for narrow tiers).
func (v Vector[T]) Adds(a, b Vector[T]) {
	if len(a) != len(v) || len(b) != len(v) {
		panic("scorevec: lane count mismatch")
	}
	for i := range v {
		v[i] = Add(a[i], b[i])
	}
}

// SubScalar sets v = a - s lane-wise (saturating for narrow tiers).
func (v Vector[T]) SubScalar(a Vector[T], s T) {
	if len(a) != len(v) {
		panic("scorevec: lane count mismatch")
	}
	for i := range v {
		v[i] = Sub(a[i], s)
	}
}

// Max sets v = max(a, b) lane-wise.
func (v Vector[T]) Max(a, b Vector[T]) {
	if len(a) != len(v) || len(b) != len(v) {
		panic("scorevec: lane count mismatch")
	}
	for i := range v {
		if a[i] >= b[i] {
			v[i] = a[i]
		} else {
			v[i] = b[i]
		}
	}
}

// Saturated returns the lanes whose value has reached Max.
func (v Vector[T]) Saturated() Mask {
	var m Mask
	for i, x := range v {
		if Overflows(x) {
			m |= 1 << uint(i)
		}
	}
	return m
}
