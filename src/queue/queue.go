package queue

// A bounded FIFO queue for the type T.
//
// Implementations are not thread-safe. Use a mutex if necessary.
type Queue[T any] interface {
	// Returns true if there's at least one element in the queue.
	HasElements() bool

	// Returns true if the next Enqueue would be rejected.
	IsFull() bool

	// Returns the number of elements in the queue.
	Len() int

	// Insert a value as the newest element.
	//
	// Returns false if the queue is full. The queue is left unchanged in
	// that case.
	Enqueue(val T) bool

	// Remove and return the oldest element.
	//
	// Returns ok == false if the queue is empty.
	Dequeue() (val T, ok bool)

	// Discard all elements.
	Empty()

	// Keep only the elements for which keep returns true, in their original
	// order.
	Retain(keep func(val T) bool)
}
