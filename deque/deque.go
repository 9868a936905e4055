// Package deque provides a double-ended queue for generated code that
// needs O(1) pushes and pops at both ends.
package deque

// Deque is a growable ring buffer. The zero value is ready to use.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushFront inserts item at the front.
func (d *Deque[T]) PushFront(item T) {
	d.grow()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = item
	d.count++
}

// PushBack inserts item at the back.
func (d *Deque[T]) PushBack(item T) {
	d.grow()
	d.buf[d.wrap(d.head+d.count)] = item
	d.count++
}

// PopFront removes and returns the front item. The second result is false
// when the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	v := d.buf[d.head]
	var zero T
	d.buf[d.head] = zero
	d.head = d.wrap(d.head + 1)
	d.count--
	return v, true
}

// PopBack removes and returns the back item. The second result is false
// when the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	idx := d.wrap(d.head + d.count - 1)
	v := d.buf[idx]
	var zero T
	d.buf[idx] = zero
	d.count--
	return v, true
}

// Len returns the number of items.
func (d *Deque[T]) Len() int {
	return d.count
}

// IsEmpty reports whether the deque has no items.
func (d *Deque[T]) IsEmpty() bool {
	return d.count == 0
}

func (d *Deque[T]) wrap(i int) int {
	n := len(d.buf)
	return ((i % n) + n) % n
}

func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	newCap := len(d.buf) * 2
	if newCap == 0 {
		newCap = 8
	}
	buf := make([]T, newCap)
	for i := 0; i < d.count; i++ {
		buf[i] = d.buf[d.wrap(d.head+i)]
	}
	d.buf = buf
	d.head = 0
}
