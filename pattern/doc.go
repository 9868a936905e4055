// Package pattern provides cached pattern compilation with anchored-match
// and unanchored-search semantics.
//
// A Cache is a context-local object: generated code running in one worker
// owns one cache, compiles each distinct pattern string once, and reuses
// the compiled form on every later call. The cache never evicts; unbounded
// growth is an accepted tradeoff because generated programs use a fixed
// set of pattern literals.
//
//	cache := pattern.NewCache()
//
//	m, err := cache.MatchAt(`[0-9]+`, "abc 123 def", 4)
//	// m.Matched == true, m.Text == "123", m.End == 7
//
//	ok, err := cache.Search(`[0-9]+`, "hello 42 world")
//	// ok == true
//
// MatchAt succeeds only when a match begins exactly at the given byte
// offset; the match may end anywhere the pattern permits. A failed match is
// a regular result with Matched false and End left at the attempted
// offset, so "match until end of input" loops are simple control flow. Only
// a pattern that fails to compile is an error.
//
// Compilation is delegated to the regexp package; compiled patterns are
// immutable and safe to share.
package pattern
