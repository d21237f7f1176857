package task

import (
	"log"
	"sync"

	"github.com/reb27/ringqueue/src/datastructures"
	"github.com/reb27/ringqueue/src/scheduler"
)

type QueuePolicy string

const (
	FifoQueue           QueuePolicy = "fifo"
	StrictPriorityQueue QueuePolicy = "sp"
	WeightedFairQueue   QueuePolicy = "wfq"
)

// Runs tasks from bounded per-group queues.
//
// Each group's tasks wait in a ring buffer whose storage is allocated when the
// group is first seen; the policy decides which group is served next. All
// queue access happens under mutex, tasks themselves run outside of it.
type TaskScheduler struct {
	groups    map[int]*priorityGroup
	scheduler scheduler.Scheduler[int]

	mutex     *sync.Mutex
	cond      *sync.Cond
	isStopped bool

	rejectedGroups int64
	inService      int64

	capacity int // immutable
}

type priorityGroup struct {
	entry    scheduler.SchedulerEntry[int]
	tasks    datastructures.RingBuffer[func()]
	priority float32
	stats    GroupStats
}

// Creates a task scheduler for up to capacity groups of up to capacity
// pending tasks each.
func NewTaskScheduler(capacity int, policy QueuePolicy) *TaskScheduler {
	var sc scheduler.Scheduler[int]
	switch policy {
	case FifoQueue:
		sc = scheduler.NewFIFO[int](capacity)
	case StrictPriorityQueue:
		sc = scheduler.NewSP[int](capacity)
	case WeightedFairQueue:
		sc = scheduler.NewWFQ[int](capacity)
	default:
		panic("invalid queue policy")
	}

	mutex := &sync.Mutex{}
	cond := sync.NewCond(mutex)

	return &TaskScheduler{
		groups:    make(map[int]*priorityGroup, capacity),
		scheduler: sc,

		mutex:     mutex,
		cond:      cond,
		isStopped: false,

		capacity: capacity,
	}
}

func (ts *TaskScheduler) Stop() {
	ts.mutex.Lock()

	ts.isStopped = true

	ts.mutex.Unlock()
	ts.cond.Broadcast()
}

// Queue a task in the given group.
//
// The priority only takes effect when the group is created. Returns false if
// the group's queue is full or no more groups can be created.
func (ts *TaskScheduler) Enqueue(priorityGroupId int, priority float32, task func()) bool {
	ts.mutex.Lock()

	var group *priorityGroup
	if x, exists := ts.groups[priorityGroupId]; exists {
		group = x
	} else if len(ts.groups) != ts.capacity {
		group = &priorityGroup{
			entry: ts.scheduler.CreateEntry(priorityGroupId),
			tasks: datastructures.NewRingBuffer(
				make([]func(), ts.capacity+1)),
			priority: priority,
		}
		group.entry.SetPriority(priority)
		ts.groups[priorityGroupId] = group
	}

	ok := false
	if group == nil {
		ts.rejectedGroups++
		log.Printf("Task rejected: no room for priority group %d\n", priorityGroupId)
	} else {
		wasEmpty := !group.tasks.HasElements()
		ok = group.tasks.Enqueue(task)
		if !ok {
			group.stats.Rejected++
			log.Printf("Task rejected: priority group %d is full\n", priorityGroupId)
		} else {
			group.stats.Enqueued++
			if wasEmpty {
				group.entry.Enqueue()
			}
		}
	}

	ts.mutex.Unlock()
	ts.cond.Broadcast()

	return ok
}

// Queue a task in the group of a priority level, weighted by Weight.
func (ts *TaskScheduler) EnqueuePriority(priority Priority, task func()) bool {
	if priority < 0 || priority > PriorityLevelCount-1 {
		log.Printf("Invalid priority group %d. Must be between 0 and %d.\n",
			priority, PriorityLevelCount-1)
		return false
	}

	return ts.Enqueue(int(priority), Weight(priority), task)
}

// Returns the number of pending tasks across all groups.
func (ts *TaskScheduler) Len() int {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	n := 0
	for _, group := range ts.groups {
		n += group.tasks.Len()
	}
	return n
}

// Drop every pending task of a group. Returns the number of dropped tasks.
func (ts *TaskScheduler) Clear(priorityGroupId int) int {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	group, exists := ts.groups[priorityGroupId]
	if !exists {
		return 0
	}

	n := group.tasks.Len()
	group.tasks.Empty()
	group.entry.Cancel()
	group.stats.Dropped += int64(n)

	if n > 0 {
		log.Printf("Dropped %d tasks from priority group %d\n", n, priorityGroupId)
	}
	return n
}

// Serve tasks until Stop is called. May be called from several goroutines.
func (ts *TaskScheduler) Run() {
	ts.mutex.Lock()

	for !ts.isStopped {
		entry := ts.scheduler.Dequeue()
		if entry == nil {
			ts.cond.Wait()
			continue
		}

		priorityGroupId := entry.UserData()
		group := ts.groups[priorityGroupId]

		if task, ok := group.tasks.Dequeue(); ok {
			if group.tasks.HasElements() {
				entry.Enqueue()
			}

			group.stats.Started++
			ts.inService++

			// Execute task outside mutex
			ts.mutex.Unlock()
			task()
			ts.mutex.Lock()

			group.stats.Completed++
			ts.inService--
		}
	}

	ts.mutex.Unlock()
}
