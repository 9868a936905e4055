// Package mathx provides the small numeric helpers emitted by generated
// arithmetic expressions.
package mathx

import "cmp"

// Number covers the types generated arithmetic operates on.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T cmp.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T cmp.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Clamp limits x to the range [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
