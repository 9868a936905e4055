package seq

import (
	"math"

	"github.com/HomunMage/homun-std/errors"
)

// Unbounded is the sentinel for an unspecified slice end. Under a negative
// step it means "through the natural end of the sequence", i.e. iterate down
// to and including index 0.
const Unbounded = math.MaxInt

// At returns the element at index i, with negative indices counting back
// from the end of the sequence. An index outside [0, len) after
// normalization yields a typed out-of-bounds error carrying the normalized
// index and the sequence length.
func At[T any](s []T, i int) (T, error) {
	n := len(s)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		var zero T
		return zero, errors.OutOfBounds(errors.OpIndex, j, n)
	}
	return s[j], nil
}

// Slice extracts the sub-sequence selected by start, end, and step.
//
// Finite offsets are normalized by adding the length when negative, then
// clamping into [0, len]. A positive step walks start, start+step, ... while
// below end. A negative step walks downward from the higher bound to the
// lower bound in strides of |step|, where end == Unbounded means "down to
// and including index 0" and start == 0 means "from the last index". The
// two defaults differ by direction because forward and backward slicing
// share this one normalization routine.
//
// A zero step yields an empty result; it is not an error.
func Slice[T any](s []T, start, end, step int) []T {
	n := len(s)
	norm := func(i int) int {
		if i < 0 {
			i += n
		}
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}

	switch {
	case step > 0:
		lo, hi := norm(start), norm(end)
		out := make([]T, 0, rangeLen(lo, hi, step))
		for i := lo; i < hi; i += step {
			out = append(out, s[i])
		}
		return out

	case step < 0:
		lo := 0
		if end != Unbounded {
			lo = norm(end)
		}
		hi := n
		if start != 0 {
			hi = norm(start)
		}
		out := make([]T, 0, rangeLen(lo, hi, -step))
		for i := hi - 1; i >= lo; i += step {
			out = append(out, s[i])
		}
		return out

	default:
		return []T{}
	}
}

// rangeLen is the number of indices visited walking [lo, hi) in strides of
// a positive step.
func rangeLen(lo, hi, step int) int {
	if hi <= lo {
		return 0
	}
	return (hi - lo + step - 1) / step
}

// Concat returns a followed by b. Order and duplicates are preserved;
// neither input is modified.
func Concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Contains reports whether any element of s compares equal to item.
// This is the sequence arm of the membership predicate; sets, mappings, and
// text resolve membership through their own packages at the call site.
func Contains[T comparable](s []T, item T) bool {
	for _, v := range s {
		if v == item {
			return true
		}
	}
	return false
}
