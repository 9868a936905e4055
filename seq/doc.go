// Package seq provides element access, slicing, and collection helpers over
// ordered sequences, with the wrap-around and step-direction rules that
// generated code expects from its source language.
//
// # Indexing
//
// At normalizes negative indices against the sequence length:
//
//	v, err := seq.At(s, -1) // last element
//
// An index that is still out of range after normalization is a typed
// errors.OutOfBounds carrying the normalized index and the length.
//
// # Slicing
//
//	seq.Slice(s, 1, 4, 1)                     // s[1:4]
//	seq.Slice(s, 0, len(s), -1)               // reversed
//	seq.Slice(s, 0, seq.Unbounded, -1)        // also reversed (default bounds)
//	seq.Slice(s, 0, len(s), 2)                // every other element
//
// Negative offsets count from the end, offsets are clamped into [0, len],
// and a zero step is an empty result by policy, not an error. Under a
// negative step the defaults invert: end == Unbounded walks down to index 0
// and start == 0 begins at the last index.
//
// # Membership
//
// Contains is the sequence arm of the polymorphic membership predicate.
// Which arm applies is resolved by the static type of the collection at the
// generated call site: seq.Contains for sequences, set.Contains for sets,
// dict.ContainsKey for mappings, text.Contains for text.
package seq
