package scheduler

import "github.com/reb27/ringqueue/src/datastructures"

type fifoScheduler[T any] struct {
	queue datastructures.RingBuffer[*fifoEntry[T]]
}

type fifoEntry[T any] struct {
	scheduler *fifoScheduler[T]
	enqueued  bool
	userdata  T
}

// Creates a new FIFO scheduler.
//
// The FIFO scheduler ignores the priority and serves everything in order of
// arrival. Its ring is allocated here once; enqueueing never allocates.
func NewFIFO[T any](capacity int) Scheduler[T] {
	// One extra slot stays free to tell full from empty
	ring := make([]*fifoEntry[T], capacity+1)

	return &fifoScheduler[T]{
		queue: datastructures.NewRingBuffer(ring),
	}
}

func (s *fifoScheduler[T]) CreateEntry(userdata T) SchedulerEntry[T] {
	return &fifoEntry[T]{
		scheduler: s,
		userdata:  userdata,
	}
}

func (s *fifoScheduler[T]) Dequeue() SchedulerEntry[T] {
	val, ok := s.queue.Dequeue()
	if !ok {
		return nil
	}

	val.enqueued = false
	return val
}

func (s *fifoScheduler[T]) Len() int {
	return s.queue.Len()
}

func (e *fifoEntry[T]) Enqueue() bool {
	if !e.enqueued && e.scheduler.queue.Enqueue(e) {
		e.enqueued = true
		return true
	} else {
		return false
	}
}

func (e *fifoEntry[T]) Cancel() bool {
	if !e.enqueued {
		return false
	}

	e.scheduler.queue.Retain(func(other *fifoEntry[T]) bool {
		return other != e
	})
	e.enqueued = false
	return true
}

func (e *fifoEntry[T]) SetPriority(priority float32) {}

func (e *fifoEntry[T]) UserData() T {
	return e.userdata
}
