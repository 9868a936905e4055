package seq

import (
	"cmp"
	"sort"

	"github.com/HomunMage/homun-std/errors"
)

// Indexed pairs an element with its position, as produced by Enumerate.
type Indexed[T any] struct {
	Index int
	Value T
}

// Pair holds one element from each of two zipped sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Sorted returns a sorted copy of s. The input is not modified.
func Sorted[T cmp.Ordered](s []T) []T {
	out := append([]T(nil), s...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Reversed returns a reversed copy of s.
func Reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Enumerate returns the elements of s paired with their indices.
func Enumerate[T any](s []T) []Indexed[T] {
	out := make([]Indexed[T], len(s))
	for i, v := range s {
		out[i] = Indexed[T]{Index: i, Value: v}
	}
	return out
}

// Zip pairs elements of a and b positionally. Excess elements from the
// longer sequence are ignored.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Flatten concatenates the inner sequences in order.
func Flatten[T any](s [][]T) []T {
	total := 0
	for _, inner := range s {
		total += len(inner)
	}
	out := make([]T, 0, total)
	for _, inner := range s {
		out = append(out, inner...)
	}
	return out
}

// Filter returns the elements of s for which keep is true.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map applies fn to every element of s.
func Map[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Reduce folds s left to right with fn. The second result is false when s
// is empty.
func Reduce[T any](s []T, fn func(T, T) T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	acc := s[0]
	for _, v := range s[1:] {
		acc = fn(acc, v)
	}
	return acc, true
}

// Any reports whether pred holds for at least one element.
func Any[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every element.
func All[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Count returns the number of elements for which pred holds.
func Count[T any](s []T, pred func(T) bool) int {
	n := 0
	for _, v := range s {
		if pred(v) {
			n++
		}
	}
	return n
}

// Unique returns the elements of s with later duplicates removed,
// preserving first-occurrence order.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// IndexOf returns the position of the first element equal to item, or -1.
func IndexOf[T comparable](s []T, item T) int {
	for i, v := range s {
		if v == item {
			return i
		}
	}
	return -1
}

// Push appends item in place, the stack-discipline forwarder.
func Push[T any](s *[]T, item T) {
	*s = append(*s, item)
}

// Pop removes and returns the last element. The second result is false when
// the sequence is empty.
func Pop[T any](s *[]T) (T, bool) {
	old := *s
	if len(old) == 0 {
		var zero T
		return zero, false
	}
	v := old[len(old)-1]
	*s = old[:len(old)-1]
	return v, true
}

// Peek returns the last element without removing it.
func Peek[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// RemoveAt removes and returns the element at index i, shifting later
// elements down. Negative indices count back from the end.
func RemoveAt[T any](s *[]T, i int) (T, error) {
	old := *s
	n := len(old)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		var zero T
		return zero, errors.OutOfBounds(errors.OpIndex, j, n)
	}
	v := old[j]
	*s = append(old[:j], old[j+1:]...)
	return v, nil
}
