// Package pqueue provides a min-priority queue with shared-mutable
// aliasing semantics.
//
// The surrounding calling convention copies values on every use. For "the
// same logical queue" to be passed around and mutated from multiple call
// sites, the queue must live behind an indirection that survives copying.
// Two layers provide that:
//
//   - Queue is the instance itself: a mutex-guarded min-heap. A *Queue is
//     the simplest alias; every copy of the pointer is the same queue.
//   - Registry is an arena of queue instances addressed by stable slot
//     index plus a generation tag. Handles are plain integers, so they
//     survive any amount of copying, and a handle kept after Release is
//     caught as a typed error rather than reaching a recycled slot.
//
// Popping an empty queue is a regular absent result, so draining loops are
// plain control flow:
//
//	for {
//	    e, ok := q.Pop()
//	    if !ok {
//	        break
//	    }
//	    visit(e)
//	}
//
// Entries pop in ascending priority order. Equal priorities pop in
// ascending lexicographic order of the item; the order is stable and
// documented but callers should not depend on insertion order.
package pqueue
