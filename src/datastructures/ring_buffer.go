package datastructures

import "github.com/reb27/ringqueue/src/queue"

var _ queue.Queue[int] = (*RingBuffer[int])(nil)

// A bounded circular queue over caller-owned storage.
//
// The buffer never allocates: every element lives in the slice passed to
// NewRingBuffer, which must not be touched by anyone else while the buffer is
// in use. One slot is always kept free to tell a full buffer from an empty
// one, so a ring of N slots holds at most N-1 elements.
//
// Removed slots are not cleared. Pointer elements stay reachable from the
// storage until they are overwritten.
type RingBuffer[T any] struct {
	ring []T
	head int
	tail int
}

// Bind a new, empty ring buffer to ring.
//
// Panics if ring has no slots.
func NewRingBuffer[T any](ring []T) RingBuffer[T] {
	if len(ring) == 0 {
		panic("ring buffer storage must have at least one slot")
	}

	return RingBuffer[T]{
		ring: ring,
	}
}

func (q *RingBuffer[T]) next(i int) int {
	return (i + 1) % len(q.ring)
}

func (q *RingBuffer[T]) HasElements() bool {
	return q.head != q.tail
}

func (q *RingBuffer[T]) IsFull() bool {
	return q.head == q.next(q.tail)
}

func (q *RingBuffer[T]) Len() int {
	if q.tail > q.head {
		return q.tail - q.head
	} else if q.tail < q.head {
		// The occupied window wraps past the end of the ring.
		return (len(q.ring) - q.head) + q.tail
	} else {
		return 0
	}
}

// Returns the number of elements the buffer can hold.
func (q *RingBuffer[T]) Cap() int {
	return len(q.ring) - 1
}

func (q *RingBuffer[T]) Enqueue(val T) bool {
	if q.next(q.tail) == q.head {
		// Advancing tail would run into head
		return false
	}

	q.ring[q.tail] = val
	q.tail = q.next(q.tail)

	return true
}

func (q *RingBuffer[T]) Dequeue() (val T, ok bool) {
	if !q.HasElements() {
		ok = false
		return
	}

	val = q.ring[q.head]
	ok = true

	q.head = q.next(q.head)

	return
}

// Return the oldest element without removing it.
func (q *RingBuffer[T]) Peek() (val T, ok bool) {
	if !q.HasElements() {
		ok = false
		return
	}

	return q.ring[q.head], true
}

func (q *RingBuffer[T]) Empty() {
	q.head = 0
	q.tail = 0
}

// Compacts the occupied window in place. Head never moves; survivors are
// shifted towards it and tail is pulled back behind the last one.
func (q *RingBuffer[T]) Retain(keep func(val T) bool) {
	// src walks the window as it was, dst marks where the next survivor goes.
	src := q.head
	dst := q.head

	for src != q.tail {
		if keep(q.ring[src]) {
			if src != dst {
				q.ring[dst] = q.ring[src]
			}
			dst = q.next(dst)
		}
		src = q.next(src)
	}

	q.tail = dst
}
