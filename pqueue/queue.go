package pqueue

import (
	"container/heap"
	"sync"
)

// Entry is one queued item with its priority.
type Entry struct {
	Item     string
	Priority int
}

// Queue is a min-priority queue of string items keyed by integer priority.
// Equal priorities pop in ascending lexicographic order of the item, a
// stable total order independent of insertion order.
//
// A *Queue is itself a sharable alias: every copy of the pointer observes
// every mutation. A mutex guards the backing heap so handles may be shared
// across goroutines.
type Queue struct {
	mu      sync.Mutex
	entries entryHeap
}

// New allocates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Push inserts item with the given priority. The insertion is visible to
// all aliases of this queue immediately.
func (q *Queue) Push(priority int, item string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	heap.Push(&q.entries, Entry{Item: item, Priority: priority})
}

// Pop removes and returns the entry with the smallest priority. The second
// result is false when the queue is empty; an empty pop is a regular
// outcome, not an error.
func (q *Queue) Pop() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	return heap.Pop(&q.entries).(Entry), true
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// IsEmpty reports whether the queue has no entries.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].Item < h[j].Item
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(Entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
