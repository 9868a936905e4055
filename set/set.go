// Package set provides the hash-set container behind generated set
// literals and the set arm of the membership predicate.
package set

// Set is an unordered collection of unique values.
type Set[T comparable] map[T]struct{}

// New creates an empty set.
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// Of creates a set holding the given items.
func Of[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, v := range items {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts item.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Remove deletes item if present.
func (s Set[T]) Remove(item T) {
	delete(s, item)
}

// Contains reports whether item is a member.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Items returns the members in unspecified order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}
