package datastructures

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

type heapImpl[K constraints.Ordered, T any] []heapItem[K, T]

type heapItem[K constraints.Ordered, T any] struct {
	value    T
	priority K
}

func (q heapImpl[K, T]) Len() int { return len(q) }

func (q heapImpl[K, T]) Less(i, j int) bool {
	return q[i].priority > q[j].priority
}

func (q heapImpl[K, T]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *heapImpl[K, T]) Push(x any) {
	item := x.(heapItem[K, T])
	*q = append(*q, item)
}

func (q *heapImpl[K, T]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = heapItem[K, T]{} // avoid memory leak
	*q = old[0 : n-1]
	return item
}

// A bounded max-priority queue.
//
// The backing array is allocated once by NewPriorityQueue and never grows.
type PriorityQueue[K constraints.Ordered, T any] struct {
	heap heapImpl[K, T]
}

func NewPriorityQueue[K constraints.Ordered, T any](
	capacity int,
) PriorityQueue[K, T] {
	return PriorityQueue[K, T]{
		heap: make(heapImpl[K, T], 0, capacity),
	}
}

func (q *PriorityQueue[K, T]) Enqueue(value T, priority K) bool {
	if q.IsFull() {
		return false
	}

	heap.Push(&q.heap, heapItem[K, T]{
		value:    value,
		priority: priority,
	})
	return true
}

// Remove and return the value with the largest priority.
func (q *PriorityQueue[K, T]) Dequeue() (val T, ok bool) {
	if len(q.heap) == 0 {
		ok = false
		return
	}

	item := heap.Pop(&q.heap).(heapItem[K, T])
	val = item.value
	ok = true
	return
}

func (q *PriorityQueue[K, T]) HasElements() bool {
	return len(q.heap) != 0
}

func (q *PriorityQueue[K, T]) IsFull() bool {
	return len(q.heap) == cap(q.heap)
}

func (q *PriorityQueue[K, T]) Len() int {
	return len(q.heap)
}

func (q *PriorityQueue[K, T]) Cap() int {
	return cap(q.heap)
}

func (q *PriorityQueue[K, T]) Empty() {
	q.Retain(func(T) bool { return false })
}

// Drop every value for which keep returns false.
func (q *PriorityQueue[K, T]) Retain(keep func(val T) bool) {
	n := 0
	for _, item := range q.heap {
		if keep(item.value) {
			q.heap[n] = item
			n++
		}
	}

	for i := n; i < len(q.heap); i++ {
		q.heap[i] = heapItem[K, T]{} // avoid memory leak
	}

	q.heap = q.heap[:n]
	heap.Init(&q.heap)
}
