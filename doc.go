// Package homunstd is the compatibility runtime for Homun programs
// compiled to Go. Generated code calls into it for the semantics that Go's
// native containers do not provide out of the box: wrap-around indexing,
// step-aware slicing, membership tests across container kinds, cached
// anchored pattern matching, and a priority queue that keeps reference
// identity under a calling convention that copies every value.
//
// # Architecture Overview
//
// The library is organized into leaf packages, one per concern:
//
//	homun-std/
//	├── seq/       Indexing, slicing, concat, and collection helpers
//	├── set/       Hash sets and set membership
//	├── dict/      Mapping builders and key membership
//	├── text/      String helpers, padding, classification, substring membership
//	├── pattern/   Cached pattern compilation, anchored match, search
//	├── pqueue/    Shared min-priority queue and handle registry
//	├── deque/     Double-ended queue
//	├── mathx/     Numeric helpers
//	├── hostio/    Host file and process surface
//	├── runtime/   Per-worker execution context owning cache and registry
//	└── errors/    Structured error types
//
// The packages are mutually independent; generated call sites compose them
// directly. Membership testing is dispatched by the static type of the
// collection at the call site: seq.Contains for sequences, set.Contains
// for sets, dict.ContainsKey for mappings, text.Contains for text.
//
// # Quick Start
//
//	ctx := runtime.New()
//	defer ctx.Close()
//
//	last, err := seq.At(nodes, -1)
//	rev := seq.Slice(nodes, 0, seq.Unbounded, -1)
//
//	m, err := ctx.Patterns().MatchAt(`[a-zA-Z_][a-zA-Z0-9_]*`, src, pos)
//
//	h, err := ctx.Queues().New()
//	ctx.Queues().Push(h, 3, "node_D")
//
// # Error Handling
//
// Boundary violations (an index still out of range after normalization, a
// pattern that fails to compile, a queue handle used after release) are
// typed, recoverable errors from the errors package. Negative outcomes
// that are part of normal control flow (no match at an offset, popping an
// empty queue, an empty slice) are plain return values, never errors.
package homunstd
