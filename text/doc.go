// Package text provides the string surface consumed by generated code:
// substring membership, negative-offset substring extraction, padding and
// centering for canvas layout, and character classification.
//
// Contains is the text arm of the polymorphic membership predicate; the
// other arms live in seq, set, and dict, selected by the static type of
// the collection at the generated call site.
//
// Substr and CharAt follow the source language's conventions: negative
// offsets count from the end, out-of-range offsets clamp rather than fail,
// and an inverted or empty range is simply the empty string. Byte offsets
// for Substr and Find, rune offsets for CharAt and the padding helpers.
package text
