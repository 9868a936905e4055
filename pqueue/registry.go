package pqueue

import (
	"sync"

	"github.com/HomunMage/homun-std/errors"
)

// Handle is an opaque reference to a queue instance in a Registry.
// Handles are plain values: copying a handle aliases the same instance, so
// a calling convention that copies every value still mutates one queue.
// Handle 0 is reserved and always invalid.
//
// The low 32 bits address a registry slot; the high 32 bits carry the
// slot's generation, so a handle kept across a Release is detected instead
// of silently addressing whatever reused the slot.
type Handle uint64

func makeHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index+1))
}

func (h Handle) split() (index, generation uint32, ok bool) {
	low := uint32(h)
	if low == 0 {
		return 0, 0, false
	}
	return low - 1, uint32(h >> 32), true
}

type slot struct {
	queue      *Queue
	generation uint32
	live       bool
}

// Registry is an arena of queue instances addressed by stable index.
// It owns every queue created through it; handles are indices plus a
// generation tag rather than pointers, which keeps them copyable across a
// copy-by-value calling convention while all copies alias one instance.
type Registry struct {
	mu     sync.Mutex
	slots  []slot
	free   []uint32
	closed bool
}

// NewRegistry creates an empty queue registry.
func NewRegistry() *Registry {
	return &Registry{
		slots: make([]slot, 0, 16),
	}
}

// New allocates an empty queue and returns its first handle.
func (r *Registry) New() (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, errors.Closed(errors.OpQueue, "queue registry")
	}

	q := New()
	if len(r.free) > 0 {
		idx := r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]
		s := &r.slots[idx]
		s.queue = q
		s.live = true
		return makeHandle(idx, s.generation), nil
	}

	r.slots = append(r.slots, slot{queue: q, live: true})
	return makeHandle(uint32(len(r.slots)-1), 0), nil
}

// Get resolves a handle to its queue instance. A zero, unknown, or
// released handle yields a typed InvalidHandle error.
func (r *Registry) Get(h Handle) (*Queue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(h)
}

func (r *Registry) getLocked(h Handle) (*Queue, error) {
	if r.closed {
		return nil, errors.Closed(errors.OpQueue, "queue registry")
	}
	idx, gen, ok := h.split()
	if !ok || int(idx) >= len(r.slots) {
		return nil, errors.InvalidHandle(errors.OpQueue, uint64(h))
	}
	s := &r.slots[idx]
	if !s.live || s.generation != gen {
		return nil, errors.InvalidHandle(errors.OpQueue, uint64(h))
	}
	return s.queue, nil
}

// Release destroys the queue a handle refers to. Every alias of the handle
// becomes invalid; the slot's generation advances so a stale alias cannot
// reach a later occupant.
func (r *Registry) Release(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.Closed(errors.OpQueue, "queue registry")
	}
	idx, gen, ok := h.split()
	if !ok || int(idx) >= len(r.slots) {
		return errors.InvalidHandle(errors.OpQueue, uint64(h))
	}
	s := &r.slots[idx]
	if !s.live || s.generation != gen {
		return errors.InvalidHandle(errors.OpQueue, uint64(h))
	}

	s.queue = nil
	s.live = false
	s.generation++
	r.free = append(r.free, idx)
	return nil
}

// Active returns the number of live queue instances.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for i := range r.slots {
		if r.slots[i].live {
			count++
		}
	}
	return count
}

// Close releases all queues and stops accepting operations.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.slots = nil
	r.free = nil
	return nil
}

// Push inserts item with the given priority into the queue h refers to.
func (r *Registry) Push(h Handle, priority int, item string) error {
	q, err := r.Get(h)
	if err != nil {
		return err
	}
	q.Push(priority, item)
	return nil
}

// Pop removes and returns the minimum entry of the queue h refers to.
// The boolean is false when the queue is empty.
func (r *Registry) Pop(h Handle) (Entry, bool, error) {
	q, err := r.Get(h)
	if err != nil {
		return Entry{}, false, err
	}
	e, ok := q.Pop()
	return e, ok, nil
}

// QueueLen returns the number of entries in the queue h refers to.
func (r *Registry) QueueLen(h Handle) (int, error) {
	q, err := r.Get(h)
	if err != nil {
		return 0, err
	}
	return q.Len(), nil
}

// IsEmpty reports whether the queue h refers to has no entries.
func (r *Registry) IsEmpty(h Handle) (bool, error) {
	q, err := r.Get(h)
	if err != nil {
		return false, err
	}
	return q.IsEmpty(), nil
}
